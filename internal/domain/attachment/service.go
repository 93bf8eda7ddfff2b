package attachment

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prodboard/internal/cache"
	"prodboard/internal/domain/client"
	"prodboard/internal/domain/project"
	"prodboard/internal/domain/task"
	"prodboard/internal/domain/team"
	"prodboard/internal/pkg/logx"
	"prodboard/internal/pkg/mutation"
)

const cacheResource = "attachments"

// Notifier decouples the service from the notification package.
type Notifier interface {
	Notify(ctx context.Context, userID int64, typ, title, message string)
}

type Service struct {
	repo    Repository
	storage *Storage
	cache   cache.Cache
	log     logx.Logger

	clients  client.Repository
	projects project.Repository
	tasks    task.Repository
	members  team.Repository

	notifier Notifier

	cacheTTL      time.Duration
	maxUploadSize int64

	deletesMu sync.Mutex
	deletes   map[string]*mutation.Tracker
}

type ServiceDeps struct {
	Repo     Repository
	Storage  *Storage
	Cache    cache.Cache
	Logger   logx.Logger
	Clients  client.Repository
	Projects project.Repository
	Tasks    task.Repository
	Members  team.Repository
	Notifier Notifier

	CacheTTL      time.Duration
	MaxUploadSize int64
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:          deps.Repo,
		storage:       deps.Storage,
		cache:         deps.Cache,
		log:           deps.Logger,
		clients:       deps.Clients,
		projects:      deps.Projects,
		tasks:         deps.Tasks,
		members:       deps.Members,
		notifier:      deps.Notifier,
		cacheTTL:      deps.CacheTTL,
		maxUploadSize: deps.MaxUploadSize,
		deletes:       make(map[string]*mutation.Tracker),
	}
}

// Grouped returns all attachments partitioned by owner type, served
// from the cache when possible.
func (s *Service) Grouped(ctx context.Context) (*Grouped, error) {
	key := cache.Key(cacheResource, nil)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var grouped Grouped
		if json.Unmarshal(raw, &grouped) == nil {
			return &grouped, nil
		}
	}

	grouped, err := s.repo.ListGrouped(ctx)
	if err != nil {
		return nil, &FetchError{Resource: "attachments", Err: err}
	}

	if raw, err := json.Marshal(grouped); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.log.Warn("attachment cache write failed", zap.Error(err))
		}
	}
	return grouped, nil
}

// View assembles the unified filtered list. The seven inputs load
// concurrently and in no particular order; the first failure wins and
// names the resource that could not be fetched.
func (s *Service) View(ctx context.Context, criteria Criteria) ([]Unified, error) {
	if criteria.Category != "" && !criteria.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if criteria.OwnerType != "" && criteria.OwnerType != "all" && !OwnerType(criteria.OwnerType).Valid() {
		return nil, ErrInvalidOwnerType
	}

	agg := NewAggregator()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(resource string, err error) {
		mu.Lock()
		errs = append(errs, &FetchError{Resource: resource, Err: err})
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		grouped, err := s.Grouped(ctx)
		if err != nil {
			// Grouped already wraps its failure as a FetchError
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			return
		}
		mu.Lock()
		agg.SetClientFiles(grouped.Clients)
		agg.SetProjectFiles(grouped.Projects)
		agg.SetTaskFiles(grouped.Tasks)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		rows, err := s.clients.List(ctx, nil)
		if err != nil {
			fail("clients", err)
			return
		}
		table := make(map[int64]string, len(rows))
		for _, row := range rows {
			table[row.ID] = row.Name
		}
		mu.Lock()
		agg.SetClients(table)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		rows, err := s.projects.List(ctx, nil, nil)
		if err != nil {
			fail("projects", err)
			return
		}
		table := make(map[int64]ProjectRef, len(rows))
		for _, row := range rows {
			table[row.ID] = ProjectRef{Name: row.Title, ClientID: row.ClientID}
		}
		mu.Lock()
		agg.SetProjects(table)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		rows, err := s.tasks.List(ctx, task.ListFilter{})
		if err != nil {
			fail("tasks", err)
			return
		}
		table := make(map[int64]TaskRef, len(rows))
		for _, row := range rows {
			table[row.ID] = TaskRef{Title: row.Title, ProjectID: row.ProjectID}
		}
		mu.Lock()
		agg.SetTasks(table)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		rows, err := s.members.List(ctx)
		if err != nil {
			fail("users", err)
			return
		}
		table := make(map[int64]string, len(rows))
		for _, row := range rows {
			table[row.ID] = row.Name
		}
		mu.Lock()
		agg.SetUsers(table)
		mu.Unlock()
	}()
	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return agg.Apply(criteria), nil
}

// Upload stores a file against an owner and invalidates the collection.
func (s *Service) Upload(ctx context.Context, userID int64, owner OwnerType, ownerID int64, fileHeader *multipart.FileHeader, description string, tags []string) (*Attachment, error) {
	if !owner.Valid() {
		return nil, ErrInvalidOwnerType
	}
	if err := s.ownerExists(ctx, owner, ownerID); err != nil {
		return nil, err
	}
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > s.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	id := uuid.New().String()
	stored, err := s.storage.Save(id, owner, fileHeader)
	if err != nil {
		return nil, err
	}

	a := &Attachment{
		ID:          id,
		OwnerType:   owner,
		OwnerID:     ownerID,
		FileName:    fileHeader.Filename,
		FileSize:    fileHeader.Size,
		MimeType:    stored.MimeType,
		FilePath:    stored.RelPath,
		StorageURL:  stored.URL,
		UploadedBy:  &userID,
		Description: description,
		Tags:        tags,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.storage.Remove(stored.RelPath)
		return nil, fmt.Errorf("failed to save attachment record: %w", err)
	}

	s.invalidate(ctx)
	return a, nil
}

// Delete removes one attachment addressed by its full owner-scoped key.
// It refuses to run without explicit confirmation, runs through a
// per-attachment mutation tracker, and on success invalidates only the
// attachment collection. A failed delete changes nothing locally.
func (s *Service) Delete(ctx context.Context, userID int64, owner OwnerType, ownerID int64, id string, confirmed bool) error {
	if !owner.Valid() {
		return ErrInvalidOwnerType
	}
	if !confirmed {
		return ErrConfirmRequired
	}

	tracker := s.trackerFor(owner, ownerID, id)
	if err := tracker.Begin(); err != nil {
		return ErrDeleteInFlight
	}

	a, err := s.repo.Get(ctx, owner, ownerID, id)
	if err != nil {
		_ = tracker.Fail(err.Error())
		return err
	}

	if err := s.repo.Delete(ctx, owner, ownerID, id); err != nil {
		_ = tracker.Fail(err.Error())
		return err
	}

	s.storage.Remove(a.FilePath)
	s.invalidate(ctx)

	if s.notifier != nil {
		s.notifier.Notify(ctx, userID, "attachment_deleted",
			"Attachment deleted",
			fmt.Sprintf("%q was removed from %s", a.FileName, owner.FallbackName(ownerID)),
		)
	}

	_ = tracker.Succeed()
	return nil
}

// DeleteState reports the mutation state of a pending/finished delete.
func (s *Service) DeleteState(owner OwnerType, ownerID int64, id string) mutation.State {
	s.deletesMu.Lock()
	defer s.deletesMu.Unlock()
	tracker, ok := s.deletes[deleteKey(owner, ownerID, id)]
	if !ok {
		return mutation.StateIdle
	}
	return tracker.State()
}

// Download resolves the attachment and the absolute file path to stream.
func (s *Service) Download(ctx context.Context, owner OwnerType, ownerID int64, id string) (*Attachment, string, error) {
	if !owner.Valid() {
		return nil, "", ErrInvalidOwnerType
	}
	a, err := s.repo.Get(ctx, owner, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	return a, s.storage.AbsPath(a.FilePath), nil
}

// ListByOwner serves the per-entity attachment panel.
func (s *Service) ListByOwner(ctx context.Context, owner OwnerType, ownerID int64) ([]Attachment, error) {
	if !owner.Valid() {
		return nil, ErrInvalidOwnerType
	}
	return s.repo.ListByOwner(ctx, owner, ownerID)
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheResource); err != nil {
		s.log.Warn("attachment cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) ownerExists(ctx context.Context, owner OwnerType, ownerID int64) error {
	var err error
	switch owner {
	case OwnerClient:
		_, err = s.clients.GetByID(ctx, ownerID)
	case OwnerProject:
		_, err = s.projects.GetByID(ctx, ownerID)
	case OwnerTask:
		_, err = s.tasks.GetByID(ctx, ownerID)
	}
	if err != nil {
		return ErrOwnerNotFound
	}
	return nil
}

func (s *Service) trackerFor(owner OwnerType, ownerID int64, id string) *mutation.Tracker {
	s.deletesMu.Lock()
	defer s.deletesMu.Unlock()
	key := deleteKey(owner, ownerID, id)
	tracker, ok := s.deletes[key]
	if !ok {
		tracker = mutation.NewTracker()
		s.deletes[key] = tracker
	}
	return tracker
}

func deleteKey(owner OwnerType, ownerID int64, id string) string {
	return fmt.Sprintf("%s/%d/%s", owner, ownerID, id)
}
