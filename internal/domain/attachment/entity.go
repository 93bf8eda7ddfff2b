package attachment

import (
	"fmt"
	"time"
)

// OwnerType names the entity a file is attached to. It is fixed at
// upload time and decides which lookup table resolves the owner name
// and which path segment addresses the file.
type OwnerType string

const (
	OwnerClient  OwnerType = "client"
	OwnerProject OwnerType = "project"
	OwnerTask    OwnerType = "task"
)

func (o OwnerType) Valid() bool {
	switch o {
	case OwnerClient, OwnerProject, OwnerTask:
		return true
	}
	return false
}

// FallbackName is the synthetic owner label used when the owner id has
// no row in its lookup table. A missing owner never blocks rendering.
func (o OwnerType) FallbackName(ownerID int64) string {
	switch o {
	case OwnerClient:
		return fmt.Sprintf("Client %d", ownerID)
	case OwnerProject:
		return fmt.Sprintf("Project %d", ownerID)
	case OwnerTask:
		return fmt.Sprintf("Task %d", ownerID)
	}
	return fmt.Sprintf("Unknown %d", ownerID)
}

// Attachment is a stored file belonging to a client, project or task.
type Attachment struct {
	ID          string     `gorm:"column:id;primaryKey" json:"id"`
	OwnerType   OwnerType  `gorm:"column:owner_type;index:idx_owner" json:"owner_type"`
	OwnerID     int64      `gorm:"column:owner_id;index:idx_owner" json:"owner_id"`
	FileName    string     `gorm:"column:file_name" json:"file_name"`
	FileSize    int64      `gorm:"column:file_size" json:"file_size"`
	MimeType    string     `gorm:"column:mime_type" json:"mime_type"`
	FilePath    string     `gorm:"column:file_path" json:"-"`           // relative disk path
	StorageURL  string     `gorm:"column:storage_url" json:"storage_url"` // public HTTP URL
	UploadedBy  *int64     `gorm:"column:uploaded_by" json:"uploaded_by,omitempty"`
	Description string     `gorm:"column:description" json:"description,omitempty"`
	Tags        []string   `gorm:"column:tags;serializer:json" json:"tags,omitempty"`
	UploadDate  *time.Time `gorm:"column:upload_date" json:"upload_date,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Attachment) TableName() string { return "attachments" }

// Grouped is the bulk payload shape: all attachments partitioned by
// owner type in a single response.
type Grouped struct {
	Clients  []Attachment `json:"clients"`
	Projects []Attachment `json:"projects"`
	Tasks    []Attachment `json:"tasks"`
}
