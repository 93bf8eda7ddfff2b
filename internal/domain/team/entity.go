package team

import "time"

// Role of a team member inside the agency.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProducer Role = "producer"
	RoleEditor   Role = "editor"
	RoleMember   Role = "member"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProducer, RoleEditor, RoleMember:
		return true
	}
	return false
}

// Member is a user of the dashboard and a member of the production team.
type Member struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Role         Role      `gorm:"column:role" json:"role"`
	Position     string    `gorm:"column:position" json:"position,omitempty"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	AvatarURL    string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Member) TableName() string { return "members" }
