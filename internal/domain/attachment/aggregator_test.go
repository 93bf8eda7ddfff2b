package attachment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodboard/internal/pkg/filekind"
)

func ts(day int) time.Time {
	return time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
}

func i64(v int64) *int64 { return &v }

// seededAggregator builds a small but complete fixture:
//
//	client 1 "Acme Studios" -> project 10 "Brand Film" -> task 100 "Edit teaser"
//	client 2 "Northline"    -> project 20 "Launch Promo" -> task 200 "Color grade"
func seededAggregator() *Aggregator {
	agg := NewAggregator()
	agg.SetClientFiles([]Attachment{
		{ID: "c1", OwnerID: 1, FileName: "contract.pdf", MimeType: "application/pdf", UploadedBy: i64(7), CreatedAt: ts(1)},
		{ID: "c2", OwnerID: 2, FileName: "invoice-march.pdf", MimeType: "application/pdf", CreatedAt: ts(4)},
	})
	agg.SetProjectFiles([]Attachment{
		{ID: "p1", OwnerID: 10, FileName: "storyboard.png", MimeType: "image/png", CreatedAt: ts(2)},
		{ID: "p2", OwnerID: 20, FileName: "rough-cut.mp4", MimeType: "video/mp4", CreatedAt: ts(5)},
	})
	agg.SetTaskFiles([]Attachment{
		{ID: "t1", OwnerID: 100, FileName: "notes.txt", MimeType: "text/plain", Tags: []string{"invoice", "draft"}, CreatedAt: ts(3)},
		{ID: "t2", OwnerID: 200, FileName: "grade-ref.jpg", MimeType: "image/jpeg", CreatedAt: ts(6)},
	})
	agg.SetClients(map[int64]string{1: "Acme Studios", 2: "Northline"})
	agg.SetProjects(map[int64]ProjectRef{
		10: {Name: "Brand Film", ClientID: 1},
		20: {Name: "Launch Promo", ClientID: 2},
	})
	agg.SetTasks(map[int64]TaskRef{
		100: {Title: "Edit teaser", ProjectID: 10},
		200: {Title: "Color grade", ProjectID: 20},
	})
	agg.SetUsers(map[int64]string{7: "Dana Reeve"})
	return agg
}

func TestAggregatorNotReadyUntilAllInputs(t *testing.T) {
	agg := NewAggregator()
	assert.False(t, agg.Ready())
	assert.Empty(t, agg.Unified())

	agg.SetClientFiles(nil)
	agg.SetProjectFiles(nil)
	agg.SetTaskFiles(nil)
	agg.SetClients(map[int64]string{})
	agg.SetProjects(map[int64]ProjectRef{})
	agg.SetTasks(map[int64]TaskRef{})
	assert.False(t, agg.Ready(), "six of seven inputs must not be enough")
	assert.Empty(t, agg.Unified())

	agg.SetUsers(map[int64]string{})
	assert.True(t, agg.Ready())
}

func TestAggregatorReadyRegardlessOfArrivalOrder(t *testing.T) {
	agg := NewAggregator()
	agg.SetUsers(map[int64]string{})
	agg.SetTasks(map[int64]TaskRef{})
	agg.SetProjects(map[int64]ProjectRef{})
	agg.SetClients(map[int64]string{})
	agg.SetTaskFiles(nil)
	agg.SetProjectFiles(nil)
	agg.SetClientFiles(nil)
	assert.True(t, agg.Ready())
}

func TestUnifiedMergesAllCollections(t *testing.T) {
	agg := seededAggregator()
	view := agg.Unified()
	require.Len(t, view, 6, "view length equals the sum of the three inputs")

	for i := 1; i < len(view); i++ {
		assert.False(t, view[i-1].UploadedAt.Before(view[i].UploadedAt),
			"view must be sorted by upload time descending")
	}
	assert.Equal(t, "t2", view[0].ID)
	assert.Equal(t, "c1", view[5].ID)
}

func TestUnifiedResolvesOwnerAndUploaderNames(t *testing.T) {
	view := seededAggregator().Unified()

	byID := make(map[string]Unified, len(view))
	for _, u := range view {
		byID[u.ID] = u
	}

	assert.Equal(t, "Acme Studios", byID["c1"].OwnerName)
	assert.Equal(t, "Brand Film", byID["p1"].OwnerName)
	assert.Equal(t, "Edit teaser", byID["t1"].OwnerName)
	assert.Equal(t, "Dana Reeve", byID["c1"].Uploader)
	assert.Equal(t, "file-pdf", byID["c1"].Icon)
}

func TestUnifiedFallsBackOnLookupMiss(t *testing.T) {
	agg := seededAggregator()
	agg.SetProjectFiles([]Attachment{
		{ID: "orphan", OwnerID: 99, FileName: "deck.pdf", MimeType: "application/pdf", CreatedAt: ts(1)},
	})

	view := agg.Unified()
	require.Len(t, view, 5)
	for _, u := range view {
		if u.ID == "orphan" {
			assert.Equal(t, "Project 99", u.OwnerName, "missing lookup row yields a synthetic name, not an error")
			return
		}
	}
	t.Fatal("orphan row missing from view")
}

func TestUploadedAtFallbackChain(t *testing.T) {
	fixed := ts(20)
	agg := seededAggregator()
	agg.now = func() time.Time { return fixed }

	upload := ts(9)
	agg.SetClientFiles([]Attachment{
		{ID: "created", OwnerID: 1, CreatedAt: ts(8)},
		{ID: "upload-date", OwnerID: 1, UploadDate: &upload},
		{ID: "bare", OwnerID: 1},
	})
	agg.SetProjectFiles(nil)
	agg.SetTaskFiles(nil)

	byID := map[string]time.Time{}
	for _, u := range agg.Unified() {
		byID[u.ID] = u.UploadedAt
	}
	assert.Equal(t, ts(8), byID["created"])
	assert.Equal(t, upload, byID["upload-date"])
	assert.Equal(t, fixed, byID["bare"])
}

func TestApplyEmptySearchIsIdentity(t *testing.T) {
	agg := seededAggregator()
	assert.Equal(t, agg.Unified(), agg.Apply(Criteria{Search: "   "}))
}

func TestApplySearchMatchesNameOwnerAndTags(t *testing.T) {
	agg := seededAggregator()

	view := agg.Apply(Criteria{Search: "invoice"})
	require.Len(t, view, 2)
	ids := []string{view[0].ID, view[1].ID}
	assert.ElementsMatch(t, []string{"c2", "t1"}, ids, "matches in file name and in tags")

	view = agg.Apply(Criteria{Search: "ACME"})
	require.Len(t, view, 1)
	assert.Equal(t, "c1", view[0].ID, "owner name search is case-insensitive")
}

func TestApplyOwnerTypeFilter(t *testing.T) {
	agg := seededAggregator()

	assert.Equal(t, agg.Unified(), agg.Apply(Criteria{OwnerType: "all"}))

	view := agg.Apply(Criteria{OwnerType: "project"})
	require.Len(t, view, 2)
	for _, u := range view {
		assert.Equal(t, OwnerProject, u.OwnerType)
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	agg := seededAggregator()

	images := agg.Apply(Criteria{Category: filekind.CategoryImages})
	require.Len(t, images, 2)
	media := agg.Apply(Criteria{Category: filekind.CategoryMedia})
	require.Len(t, media, 1)
	assert.Equal(t, "p2", media[0].ID)
}

func TestApplyClientScopeFollowsOwnershipChain(t *testing.T) {
	agg := seededAggregator()

	view := agg.Apply(Criteria{ClientID: i64(1)})
	ids := make([]string, 0, len(view))
	for _, u := range view {
		ids = append(ids, u.ID)
	}
	assert.ElementsMatch(t, []string{"c1", "p1", "t1"}, ids,
		"client scope covers direct files, project files and task files")

	for _, u := range view {
		assert.NotEqual(t, "t2", u.ID, "task under another client is excluded")
	}
}

func TestApplyProjectScopeNarrowsClientScope(t *testing.T) {
	agg := seededAggregator()

	clientView := agg.Apply(Criteria{ClientID: i64(2)})
	projectView := agg.Apply(Criteria{ClientID: i64(2), ProjectID: i64(20)})

	inClient := make(map[string]bool, len(clientView))
	for _, u := range clientView {
		inClient[u.ID] = true
	}
	require.NotEmpty(t, projectView)
	for _, u := range projectView {
		assert.True(t, inClient[u.ID], "project scope is a subset of the client scope")
		assert.NotEqual(t, OwnerClient, u.OwnerType, "client files never match a project scope")
	}
}

func TestApplyProjectScopeIgnoredWithoutClient(t *testing.T) {
	agg := seededAggregator()
	view := agg.Apply(Criteria{ProjectID: i64(20)})
	assert.Len(t, view, 6, "project filter only applies inside a client scope")
}

func TestApplyCombinedFilters(t *testing.T) {
	agg := seededAggregator()
	view := agg.Apply(Criteria{
		Search:   "grade",
		Category: filekind.CategoryImages,
		ClientID: i64(2),
	})
	require.Len(t, view, 1)
	assert.Equal(t, "t2", view[0].ID)
}
