package task

import (
	"context"
	"sync"
	"time"

	"prodboard/internal/domain/project"
	"prodboard/internal/pkg/mutation"
)

type Service struct {
	repo     Repository
	projects project.Repository

	// one completion-toggle tracker per task id
	togglesMu sync.Mutex
	toggles   map[int64]*mutation.Tracker
}

func NewService(repo Repository, projects project.Repository) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		toggles:  make(map[int64]*mutation.Tracker),
	}
}

func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	if _, err := s.projects.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	priority := PriorityMedium
	if req.Priority != "" {
		priority = Priority(req.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
	}

	now := time.Now()
	t := &Task{
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusTodo,
		Priority:    priority,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateTaskRequest) (*Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AssigneeID != nil {
		t.AssigneeID = req.AssigneeID
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = status
		if status == StatusDone && t.CompletedAt == nil {
			now := time.Now()
			t.CompletedAt = &now
		}
		if status != StatusDone {
			t.CompletedAt = nil
		}
	}
	if req.Priority != nil {
		priority := Priority(*req.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
		t.Priority = priority
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ToggleComplete flips a task between done and todo. The flip runs
// through an explicit mutation tracker: a second toggle for the same
// task while one is in flight is refused, and a failed persist leaves
// the returned task in its original state.
func (s *Service) ToggleComplete(ctx context.Context, id int64) (*Task, error) {
	tracker := s.trackerFor(id)
	if err := tracker.Begin(); err != nil {
		return nil, ErrToggleInFlight
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		_ = tracker.Fail(err.Error())
		tracker.Reset()
		return nil, err
	}

	prevStatus := t.Status
	prevCompleted := t.CompletedAt

	if t.Completed() {
		t.Status = StatusTodo
		t.CompletedAt = nil
	} else {
		t.Status = StatusDone
		now := time.Now()
		t.CompletedAt = &now
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		// rollback the in-memory flip, persistence was refused
		t.Status = prevStatus
		t.CompletedAt = prevCompleted
		_ = tracker.Fail(err.Error())
		tracker.Reset()
		return nil, err
	}

	_ = tracker.Succeed()
	tracker.Reset()
	return t, nil
}

// ToggleState exposes the current toggle mutation state for a task.
func (s *Service) ToggleState(id int64) mutation.State {
	s.togglesMu.Lock()
	defer s.togglesMu.Unlock()
	tracker, ok := s.toggles[id]
	if !ok {
		return mutation.StateIdle
	}
	return tracker.State()
}

func (s *Service) trackerFor(id int64) *mutation.Tracker {
	s.togglesMu.Lock()
	defer s.togglesMu.Unlock()
	tracker, ok := s.toggles[id]
	if !ok {
		tracker = mutation.NewTracker()
		s.toggles[id] = tracker
	}
	return tracker
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
