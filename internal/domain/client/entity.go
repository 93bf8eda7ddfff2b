package client

import "time"

// Status of a client relationship.
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusArchived Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusArchived:
		return true
	}
	return false
}

// Client is an agency customer commissioning video productions.
type Client struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	ContactName string    `gorm:"column:contact_name" json:"contact_name,omitempty"`
	Email       string    `gorm:"column:email" json:"email,omitempty"`
	Phone       string    `gorm:"column:phone" json:"phone,omitempty"`
	Website     string    `gorm:"column:website" json:"website,omitempty"`
	Notes       string    `gorm:"column:notes" json:"notes,omitempty"`
	Status      Status    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
