package models

import "github.com/google/uuid"

type AuthRequest struct {
	ProjectCode string `json:"projectCode" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type CreateClientRequest struct {
	ProjectCode        string  `json:"projectCode" binding:"required,max=64"`
	ClientName         string  `json:"clientName" binding:"required"`
	ProjectName        string  `json:"projectName"`
	TotalProjectAmount float64 `json:"totalProjectAmount"`
	AmountPaid         float64 `json:"amountPaid"`
	ProjectStatus      string  `json:"projectStatus"`
	Password           string  `json:"password" binding:"required"`
}

// UpdateClientRequest is a partial update; nil fields are left untouched.
// Amounts are not range-checked.
type UpdateClientRequest struct {
	ClientName         *string  `json:"clientName"`
	ProjectName        *string  `json:"projectName"`
	TotalProjectAmount *float64 `json:"totalProjectAmount"`
	AmountPaid         *float64 `json:"amountPaid"`
	ProjectStatus      *string  `json:"projectStatus"`
}

type CreateUpdateRequest struct {
	ProjectCode string   `json:"projectCode" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
}

type EditUpdateRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Links       *[]string `json:"links"`
}

// UploadMediaRequest is assembled from the multipart form by the handler.
type UploadMediaRequest struct {
	ProjectCode string
	ImageName   string
	Filename    string
	ContentType string
	Data        []byte
}
