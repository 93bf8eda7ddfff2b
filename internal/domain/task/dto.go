package task

import "time"

type CreateTaskRequest struct {
	ProjectID   int64      `json:"project_id" validate:"required,gt=0"`
	AssigneeID  *int64     `json:"assignee_id"`
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"max=4000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	AssigneeID  *int64     `json:"assignee_id"`
	Title       *string    `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=4000"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}
