package models

import (
	"time"

	"github.com/google/uuid"
)

const UpdateColumns = "id,project_code,title,description,links,created_at"

// Update is a progress note posted to a client's dashboard.
type Update struct {
	ID          uuid.UUID `json:"id"`
	ProjectCode string    `json:"project_code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Links       []string  `json:"links"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateInsert struct {
	ProjectCode string   `json:"project_code"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
}
