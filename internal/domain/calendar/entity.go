package calendar

import "time"

type Kind string

const (
	KindShoot    Kind = "shoot"
	KindDeadline Kind = "deadline"
	KindMeeting  Kind = "meeting"
	KindOther    Kind = "other"
)

func (k Kind) Valid() bool {
	switch k {
	case KindShoot, KindDeadline, KindMeeting, KindOther:
		return true
	}
	return false
}

// Event is a calendar entry: a shoot day, a delivery deadline or a
// client meeting, optionally linked to a project.
type Event struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Kind        Kind      `gorm:"column:kind" json:"kind"`
	ProjectID   *int64    `gorm:"column:project_id" json:"project_id,omitempty"`
	Location    string    `gorm:"column:location" json:"location,omitempty"`
	StartsAt    time.Time `gorm:"column:starts_at;index" json:"starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at" json:"ends_at"`
	AllDay      bool      `gorm:"column:all_day" json:"all_day"`
	CreatedBy   *int64    `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Event) TableName() string { return "calendar_events" }
