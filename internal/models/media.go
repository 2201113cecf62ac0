package models

import (
	"time"

	"github.com/google/uuid"
)

const MediaColumns = "id,project_code,image_url,image_name,uploaded_at"

// Media is an image stored in the bucket and referenced by public URL.
type Media struct {
	ID          uuid.UUID `json:"id"`
	ProjectCode string    `json:"project_code"`
	ImageURL    string    `json:"image_url"`
	ImageName   string    `json:"image_name"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type MediaInsert struct {
	ProjectCode string `json:"project_code"`
	ImageURL    string `json:"image_url"`
	ImageName   string `json:"image_name"`
}

// Orphan is a blob left in storage after its metadata row went away, or was
// never written, and the removal failed.
type Orphan struct {
	ID          int64
	StoragePath string
	Reason      string
	CreatedAt   time.Time
}
