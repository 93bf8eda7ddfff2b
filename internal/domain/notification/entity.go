package notification

import "time"

type Type string

const (
	TypeAttachmentDeleted Type = "attachment_deleted"
	TypeTaskAssigned      Type = "task_assigned"
	TypeGeneric           Type = "generic"
)

// Notification is a persisted dashboard notification for one member.
type Notification struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;index" json:"user_id"`
	Type      Type      `gorm:"column:type" json:"type"`
	Title     string    `gorm:"column:title" json:"title"`
	Message   string    `gorm:"column:message" json:"message"`
	Read      bool      `gorm:"column:read" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
