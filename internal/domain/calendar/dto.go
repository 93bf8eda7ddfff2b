package calendar

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Kind        string    `json:"kind" validate:"omitempty,oneof=shoot deadline meeting other"`
	ProjectID   *int64    `json:"project_id"`
	Location    string    `json:"location" validate:"max=300"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	AllDay      bool      `json:"all_day"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Kind        *string    `json:"kind" validate:"omitempty,oneof=shoot deadline meeting other"`
	ProjectID   *int64     `json:"project_id"`
	Location    *string    `json:"location" validate:"omitempty,max=300"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	AllDay      *bool      `json:"all_day"`
}
