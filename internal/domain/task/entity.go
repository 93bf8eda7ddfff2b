package task

import "time"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of production work inside a project.
type Task struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID   int64      `gorm:"column:project_id;index" json:"project_id"`
	AssigneeID  *int64     `gorm:"column:assignee_id" json:"assignee_id,omitempty"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description,omitempty"`
	Status      Status     `gorm:"column:status" json:"status"`
	Priority    Priority   `gorm:"column:priority" json:"priority"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) Completed() bool {
	return t.Status == StatusDone
}
