package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status follows a production through its lifecycle.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusProduction Status = "production"
	StatusPost       Status = "post"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusProduction, StatusPost, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Project is a video production commissioned by a client.
type Project struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClientID    int64           `gorm:"column:client_id;index" json:"client_id"`
	Title       string          `gorm:"column:title" json:"title"`
	Description string          `gorm:"column:description" json:"description,omitempty"`
	Status      Status          `gorm:"column:status" json:"status"`
	Budget      decimal.Decimal `gorm:"column:budget;type:decimal(14,2)" json:"budget"`
	StartDate   *time.Time      `gorm:"column:start_date" json:"start_date,omitempty"`
	DueDate     *time.Time      `gorm:"column:due_date" json:"due_date,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
