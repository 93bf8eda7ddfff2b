package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prodboard/internal/domain/project"
	"prodboard/internal/pkg/mutation"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t *Task) error {
	args := m.Called(ctx, t)
	if t != nil {
		t.ID = 101
	}
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id int64) (*Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, filter ListFilter) ([]*Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, clientID *int64, status *project.Status) ([]*project.Project, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*project.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_RequiresExistingProject(t *testing.T) {
	repo := new(MockTaskRepository)
	projects := new(MockProjectRepository)
	svc := NewService(repo, projects)

	projects.On("GetByID", mock.Anything, int64(7)).Return(nil, project.ErrProjectNotFound)

	_, err := svc.Create(context.Background(), &CreateTaskRequest{ProjectID: 7, Title: "Edit trailer"})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_DefaultsToMediumPriority(t *testing.T) {
	repo := new(MockTaskRepository)
	projects := new(MockProjectRepository)
	svc := NewService(repo, projects)

	projects.On("GetByID", mock.Anything, int64(7)).Return(&project.Project{ID: 7}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)

	created, err := svc.Create(context.Background(), &CreateTaskRequest{ProjectID: 7, Title: "Edit trailer"})
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, created.Priority)
	assert.Equal(t, StatusTodo, created.Status)
}

func TestService_ToggleComplete_FlipsBothWays(t *testing.T) {
	repo := new(MockTaskRepository)
	projects := new(MockProjectRepository)
	svc := NewService(repo, projects)

	open := &Task{ID: 1, Status: StatusTodo}
	repo.On("GetByID", mock.Anything, int64(1)).Return(open, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)

	toggled, err := svc.ToggleComplete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, toggled.Status)
	require.NotNil(t, toggled.CompletedAt)

	toggled, err = svc.ToggleComplete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, StatusTodo, toggled.Status)
	assert.Nil(t, toggled.CompletedAt)
}

func TestService_ToggleComplete_RollsBackOnPersistError(t *testing.T) {
	repo := new(MockTaskRepository)
	projects := new(MockProjectRepository)
	svc := NewService(repo, projects)

	done := time.Now().Add(-time.Hour)
	existing := &Task{ID: 2, Status: StatusDone, CompletedAt: &done}
	repo.On("GetByID", mock.Anything, int64(2)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*task.Task")).Return(errors.New("db down"))

	_, err := svc.ToggleComplete(context.Background(), 2)
	require.Error(t, err)

	// the flip was rolled back, nothing stuck half-toggled
	assert.Equal(t, StatusDone, existing.Status)
	assert.Equal(t, &done, existing.CompletedAt)
	assert.Equal(t, mutation.StateIdle, svc.ToggleState(2))
}

func TestService_ToggleComplete_NotFound(t *testing.T) {
	repo := new(MockTaskRepository)
	projects := new(MockProjectRepository)
	svc := NewService(repo, projects)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, ErrTaskNotFound)

	_, err := svc.ToggleComplete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
