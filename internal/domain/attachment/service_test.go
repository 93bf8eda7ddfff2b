package attachment

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prodboard/internal/domain/client"
	"prodboard/internal/domain/project"
	"prodboard/internal/domain/task"
	"prodboard/internal/domain/team"
	"prodboard/internal/pkg/logx"
	"prodboard/internal/pkg/mutation"
)

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Create(ctx context.Context, a *Attachment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Get(ctx context.Context, ownerType OwnerType, ownerID int64, id string) (*Attachment, error) {
	args := m.Called(ctx, ownerType, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListGrouped(ctx context.Context) (*Grouped, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Grouped), args.Error(1)
}

func (m *MockAttachmentRepository) ListByOwner(ctx context.Context, ownerType OwnerType, ownerID int64) ([]Attachment, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, ownerType OwnerType, ownerID int64, id string) error {
	args := m.Called(ctx, ownerType, ownerID, id)
	return args.Error(0)
}

// recordingCache is an in-memory cache that remembers which resource
// paths were invalidated.
type recordingCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{data: make(map[string][]byte)}
}

func (c *recordingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *recordingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *recordingCache) Invalidate(ctx context.Context, resourcePath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, resourcePath)
	for key := range c.data {
		if key == resourcePath {
			delete(c.data, key)
		}
	}
	return nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) Notify(ctx context.Context, userID int64, typ, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, typ)
}

// Lookup stubs. Only the methods the attachment service touches are
// implemented; the embedded interface covers the rest.

type stubClients struct {
	client.Repository
	rows []*client.Client
	err  error
}

func (s *stubClients) List(ctx context.Context, status *client.Status) ([]*client.Client, error) {
	return s.rows, s.err
}

func (s *stubClients) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, client.ErrClientNotFound
}

type stubProjects struct {
	project.Repository
	rows []*project.Project
	err  error
}

func (s *stubProjects) List(ctx context.Context, clientID *int64, status *project.Status) ([]*project.Project, error) {
	return s.rows, s.err
}

func (s *stubProjects) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

type stubTasks struct {
	task.Repository
	rows []*task.Task
	err  error
}

func (s *stubTasks) List(ctx context.Context, filter task.ListFilter) ([]*task.Task, error) {
	return s.rows, s.err
}

func (s *stubTasks) GetByID(ctx context.Context, id int64) (*task.Task, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, task.ErrTaskNotFound
}

type stubMembers struct {
	team.Repository
	rows []*team.Member
	err  error
}

func (s *stubMembers) List(ctx context.Context) ([]*team.Member, error) {
	return s.rows, s.err
}

type serviceFixture struct {
	service  *Service
	repo     *MockAttachmentRepository
	cache    *recordingCache
	notifier *recordingNotifier
	clients  *stubClients
	projects *stubProjects
	tasks    *stubTasks
	members  *stubMembers
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		repo:     new(MockAttachmentRepository),
		cache:    newRecordingCache(),
		notifier: &recordingNotifier{},
		clients:  &stubClients{rows: []*client.Client{{ID: 1, Name: "Acme Studios"}}},
		projects: &stubProjects{rows: []*project.Project{{ID: 10, ClientID: 1, Title: "Brand Film"}}},
		tasks:    &stubTasks{rows: []*task.Task{{ID: 100, ProjectID: 10, Title: "Edit teaser"}}},
		members:  &stubMembers{rows: []*team.Member{{ID: 7, Name: "Dana Reeve"}}},
	}
	f.service = NewService(ServiceDeps{
		Repo:          f.repo,
		Storage:       NewStorage(t.TempDir(), "/static"),
		Cache:         f.cache,
		Logger:        logx.Nop(),
		Clients:       f.clients,
		Projects:      f.projects,
		Tasks:         f.tasks,
		Members:       f.members,
		Notifier:      f.notifier,
		CacheTTL:      time.Minute,
		MaxUploadSize: 1 << 20,
	})
	return f
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	f := newServiceFixture(t)

	err := f.service.Delete(context.Background(), 7, OwnerClient, 1, "a1", false)

	assert.ErrorIs(t, err, ErrConfirmRequired)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.cache.invalidated)
}

func TestDeleteInvalidatesCacheAndNotifies(t *testing.T) {
	f := newServiceFixture(t)
	stored := &Attachment{ID: "a1", OwnerType: OwnerClient, OwnerID: 1, FileName: "contract.pdf", FilePath: "client/2026/03/a1_contract.pdf"}
	f.repo.On("Get", mock.Anything, OwnerClient, int64(1), "a1").Return(stored, nil)
	f.repo.On("Delete", mock.Anything, OwnerClient, int64(1), "a1").Return(nil)

	err := f.service.Delete(context.Background(), 7, OwnerClient, 1, "a1", true)

	require.NoError(t, err)
	assert.Equal(t, []string{"attachments"}, f.cache.invalidated,
		"only the attachment collection is invalidated")
	assert.Equal(t, []string{"attachment_deleted"}, f.notifier.calls)
	assert.Equal(t, mutation.StateSuccess, f.service.DeleteState(OwnerClient, 1, "a1"))
	f.repo.AssertExpectations(t)
}

func TestDeleteFailureSurfacesErrorUnchanged(t *testing.T) {
	f := newServiceFixture(t)
	stored := &Attachment{ID: "a1", OwnerType: OwnerClient, OwnerID: 1}
	f.repo.On("Get", mock.Anything, OwnerClient, int64(1), "a1").Return(stored, nil)
	f.repo.On("Delete", mock.Anything, OwnerClient, int64(1), "a1").Return(errors.New("disk quota exceeded"))

	err := f.service.Delete(context.Background(), 7, OwnerClient, 1, "a1", true)

	require.Error(t, err)
	assert.Equal(t, "disk quota exceeded", err.Error(), "failure message reaches the caller intact")
	assert.Empty(t, f.cache.invalidated, "nothing is invalidated on failure")
	assert.Empty(t, f.notifier.calls)
	assert.Equal(t, mutation.StateError, f.service.DeleteState(OwnerClient, 1, "a1"))
}

func TestDeleteRefusedWhileInFlight(t *testing.T) {
	f := newServiceFixture(t)
	require.NoError(t, f.service.trackerFor(OwnerClient, 1, "a1").Begin())

	err := f.service.Delete(context.Background(), 7, OwnerClient, 1, "a1", true)

	assert.ErrorIs(t, err, ErrDeleteInFlight)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadValidation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Upload(ctx, 7, OwnerType("room"), 1, &multipart.FileHeader{Filename: "x.pdf", Size: 10}, "", nil)
	assert.ErrorIs(t, err, ErrInvalidOwnerType)

	_, err = f.service.Upload(ctx, 7, OwnerClient, 99, &multipart.FileHeader{Filename: "x.pdf", Size: 10}, "", nil)
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	_, err = f.service.Upload(ctx, 7, OwnerClient, 1, &multipart.FileHeader{Filename: "x.pdf", Size: 0}, "", nil)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = f.service.Upload(ctx, 7, OwnerClient, 1, &multipart.FileHeader{Filename: "x.pdf", Size: 2 << 20}, "", nil)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestGroupedServesFromCacheAfterFirstLoad(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.On("ListGrouped", mock.Anything).Return(&Grouped{
		Clients: []Attachment{{ID: "c1", OwnerType: OwnerClient, OwnerID: 1}},
	}, nil).Once()

	first, err := f.service.Grouped(context.Background())
	require.NoError(t, err)
	second, err := f.service.Grouped(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Clients[0].ID, second.Clients[0].ID)
	f.repo.AssertNumberOfCalls(t, "ListGrouped", 1)
}

func TestViewFailsWhenAnyInputFetchFails(t *testing.T) {
	f := newServiceFixture(t)
	f.repo.On("ListGrouped", mock.Anything).Return(&Grouped{}, nil)
	f.clients.err = errors.New("connection refused")

	_, err := f.service.View(context.Background(), Criteria{})

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "clients", fe.Resource, "the error names the input that failed")
}

func TestViewAssemblesUnifiedList(t *testing.T) {
	f := newServiceFixture(t)
	uploader := int64(7)
	f.repo.On("ListGrouped", mock.Anything).Return(&Grouped{
		Clients:  []Attachment{{ID: "c1", OwnerType: OwnerClient, OwnerID: 1, FileName: "contract.pdf", MimeType: "application/pdf", UploadedBy: &uploader, CreatedAt: time.Now()}},
		Projects: []Attachment{{ID: "p1", OwnerType: OwnerProject, OwnerID: 10, FileName: "storyboard.png", MimeType: "image/png", CreatedAt: time.Now()}},
		Tasks:    []Attachment{{ID: "t1", OwnerType: OwnerTask, OwnerID: 100, FileName: "notes.txt", MimeType: "text/plain", CreatedAt: time.Now()}},
	}, nil)

	view, err := f.service.View(context.Background(), Criteria{})

	require.NoError(t, err)
	require.Len(t, view, 3)
	names := map[string]string{}
	for _, u := range view {
		names[u.ID] = u.OwnerName
	}
	assert.Equal(t, "Acme Studios", names["c1"])
	assert.Equal(t, "Brand Film", names["p1"])
	assert.Equal(t, "Edit teaser", names["t1"])
}
