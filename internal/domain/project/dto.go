package project

import "time"

type CreateProjectRequest struct {
	ClientID    int64      `json:"client_id" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"max=4000"`
	Budget      string     `json:"budget" validate:"omitempty"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateProjectRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=4000"`
	Status      *string    `json:"status"`
	Budget      *string    `json:"budget"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
}
