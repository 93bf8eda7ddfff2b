package attachment

import (
	"sort"
	"strings"
	"time"

	"prodboard/internal/pkg/filekind"
)

// Unified is the normalized view record produced by merging the three
// owner-scoped collections into one list.
type Unified struct {
	ID          string    `json:"id"`
	OwnerType   OwnerType `json:"owner_type"`
	OwnerID     int64     `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	MimeType    string    `json:"mime_type"`
	Icon        string    `json:"icon"`
	StorageURL  string    `json:"storage_url"`
	Uploader    string    `json:"uploader,omitempty"`
	UploadedBy  *int64    `json:"uploaded_by,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// ProjectRef is the slice of the projects table the aggregator needs:
// the display name and the owning client for scope resolution.
type ProjectRef struct {
	Name     string
	ClientID int64
}

// TaskRef carries the task title and its parent project. Client scoping
// of task files resolves through the project table in a second hop.
type TaskRef struct {
	Title     string
	ProjectID int64
}

// Criteria is the ephemeral filter state of the attachments page. The
// zero value passes everything.
type Criteria struct {
	Search    string
	OwnerType string // "", "all", or a specific owner type
	Category  filekind.Category
	ClientID  *int64
	ProjectID *int64
}

// Aggregator merges the three attachment collections with the four
// lookup tables into a single filterable view. Inputs arrive
// independently and in any order; the view stays empty until all seven
// are present. Filtering never mutates the stored inputs.
type Aggregator struct {
	clientFiles  []Attachment
	projectFiles []Attachment
	taskFiles    []Attachment

	clients  map[int64]string
	projects map[int64]ProjectRef
	tasks    map[int64]TaskRef
	users    map[int64]string

	have map[string]bool

	now func() time.Time
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		have: make(map[string]bool),
		now:  time.Now,
	}
}

func (a *Aggregator) SetClientFiles(files []Attachment) {
	a.clientFiles = files
	a.have["client_files"] = true
}

func (a *Aggregator) SetProjectFiles(files []Attachment) {
	a.projectFiles = files
	a.have["project_files"] = true
}

func (a *Aggregator) SetTaskFiles(files []Attachment) {
	a.taskFiles = files
	a.have["task_files"] = true
}

func (a *Aggregator) SetClients(clients map[int64]string) {
	a.clients = clients
	a.have["clients"] = true
}

func (a *Aggregator) SetProjects(projects map[int64]ProjectRef) {
	a.projects = projects
	a.have["projects"] = true
}

func (a *Aggregator) SetTasks(tasks map[int64]TaskRef) {
	a.tasks = tasks
	a.have["tasks"] = true
}

func (a *Aggregator) SetUsers(users map[int64]string) {
	a.users = users
	a.have["users"] = true
}

var requiredInputs = []string{
	"client_files", "project_files", "task_files",
	"clients", "projects", "tasks", "users",
}

// Ready reports whether all seven inputs have arrived. The check is a
// plain conjunction over presence, arrival order is irrelevant.
func (a *Aggregator) Ready() bool {
	for _, input := range requiredInputs {
		if !a.have[input] {
			return false
		}
	}
	return true
}

// Unified normalizes and merges the three collections, sorted by upload
// time descending. Until Ready it returns an empty view rather than a
// partial one.
func (a *Aggregator) Unified() []Unified {
	if !a.Ready() {
		return []Unified{}
	}

	merged := make([]Unified, 0, len(a.clientFiles)+len(a.projectFiles)+len(a.taskFiles))
	for i := range a.clientFiles {
		merged = append(merged, a.normalize(&a.clientFiles[i], OwnerClient))
	}
	for i := range a.projectFiles {
		merged = append(merged, a.normalize(&a.projectFiles[i], OwnerProject))
	}
	for i := range a.taskFiles {
		merged = append(merged, a.normalize(&a.taskFiles[i], OwnerTask))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].UploadedAt.After(merged[j].UploadedAt)
	})
	return merged
}

func (a *Aggregator) normalize(src *Attachment, owner OwnerType) Unified {
	u := Unified{
		ID:          src.ID,
		OwnerType:   owner,
		OwnerID:     src.OwnerID,
		OwnerName:   a.ownerName(owner, src.OwnerID),
		FileName:    src.FileName,
		FileSize:    src.FileSize,
		MimeType:    src.MimeType,
		Icon:        filekind.Icon(src.MimeType),
		StorageURL:  src.StorageURL,
		UploadedBy:  src.UploadedBy,
		UploadedAt:  a.uploadedAt(src),
		Description: src.Description,
		Tags:        src.Tags,
	}
	if src.UploadedBy != nil {
		u.Uploader = a.users[*src.UploadedBy]
	}
	return u
}

func (a *Aggregator) ownerName(owner OwnerType, ownerID int64) string {
	switch owner {
	case OwnerClient:
		if name, ok := a.clients[ownerID]; ok {
			return name
		}
	case OwnerProject:
		if ref, ok := a.projects[ownerID]; ok {
			return ref.Name
		}
	case OwnerTask:
		if ref, ok := a.tasks[ownerID]; ok {
			return ref.Title
		}
	}
	return owner.FallbackName(ownerID)
}

// uploadedAt picks the display timestamp: creation time, then the
// explicit upload date, then the current time so the row still renders.
func (a *Aggregator) uploadedAt(src *Attachment) time.Time {
	if !src.CreatedAt.IsZero() {
		return src.CreatedAt
	}
	if src.UploadDate != nil && !src.UploadDate.IsZero() {
		return *src.UploadDate
	}
	return a.now()
}

// Apply runs the filter pipeline over the unified view. Stages run in a
// fixed order and each one only narrows the previous result.
func (a *Aggregator) Apply(criteria Criteria) []Unified {
	view := a.Unified()
	view = filterSearch(view, criteria.Search)
	view = filterOwnerType(view, criteria.OwnerType)
	view = filterCategory(view, criteria.Category)
	view = a.filterClientScope(view, criteria.ClientID)
	if criteria.ClientID != nil {
		view = a.filterProjectScope(view, criteria.ProjectID)
	}
	return view
}

func filterSearch(view []Unified, term string) []Unified {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return view
	}
	out := make([]Unified, 0, len(view))
	for _, u := range view {
		if matchesSearch(&u, term) {
			out = append(out, u)
		}
	}
	return out
}

func matchesSearch(u *Unified, term string) bool {
	if strings.Contains(strings.ToLower(u.FileName), term) ||
		strings.Contains(strings.ToLower(u.OwnerName), term) ||
		strings.Contains(strings.ToLower(u.Description), term) {
		return true
	}
	for _, tag := range u.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func filterOwnerType(view []Unified, ownerType string) []Unified {
	if ownerType == "" || ownerType == "all" {
		return view
	}
	out := make([]Unified, 0, len(view))
	for _, u := range view {
		if string(u.OwnerType) == ownerType {
			out = append(out, u)
		}
	}
	return out
}

func filterCategory(view []Unified, cat filekind.Category) []Unified {
	if cat == "" || cat == filekind.CategoryAll {
		return view
	}
	out := make([]Unified, 0, len(view))
	for _, u := range view {
		if cat.Matches(u.MimeType) {
			out = append(out, u)
		}
	}
	return out
}

// filterClientScope keeps attachments whose ownership chain reaches the
// selected client: client files directly, project files through the
// project's client, task files through the task's project's client.
func (a *Aggregator) filterClientScope(view []Unified, clientID *int64) []Unified {
	if clientID == nil {
		return view
	}
	if a.projects == nil || a.tasks == nil {
		return []Unified{}
	}
	out := make([]Unified, 0, len(view))
	for _, u := range view {
		switch u.OwnerType {
		case OwnerClient:
			if u.OwnerID == *clientID {
				out = append(out, u)
			}
		case OwnerProject:
			if ref, ok := a.projects[u.OwnerID]; ok && ref.ClientID == *clientID {
				out = append(out, u)
			}
		case OwnerTask:
			if taskRef, ok := a.tasks[u.OwnerID]; ok {
				if projectRef, ok := a.projects[taskRef.ProjectID]; ok && projectRef.ClientID == *clientID {
					out = append(out, u)
				}
			}
		}
	}
	return out
}

// filterProjectScope keeps project files for the selected project and
// task files whose task belongs to it. Client files never match a
// project scope.
func (a *Aggregator) filterProjectScope(view []Unified, projectID *int64) []Unified {
	if projectID == nil {
		return view
	}
	if a.tasks == nil {
		return []Unified{}
	}
	out := make([]Unified, 0, len(view))
	for _, u := range view {
		switch u.OwnerType {
		case OwnerProject:
			if u.OwnerID == *projectID {
				out = append(out, u)
			}
		case OwnerTask:
			if taskRef, ok := a.tasks[u.OwnerID]; ok && taskRef.ProjectID == *projectID {
				out = append(out, u)
			}
		}
	}
	return out
}
