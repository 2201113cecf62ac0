package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

type AuthResponse struct {
	Success     bool   `json:"success"`
	ProjectCode string `json:"projectCode"`
	ClientName  string `json:"clientName"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ProjectAggregate is the dashboard view of one project. Updates and Media
// are never nil.
type ProjectAggregate struct {
	Client  Client   `json:"client"`
	Updates []Update `json:"updates"`
	Media   []Media  `json:"media"`
}

type ClientListResponse struct {
	Clients []Client `json:"clients"`
}

type ClientResponse struct {
	Client *Client `json:"client"`
}

type UpdateResponse struct {
	Update *Update `json:"update"`
}

type MediaResponse struct {
	Media *Media `json:"media"`
}

type DeleteResponse struct {
	Success     bool  `json:"success"`
	BlobRemoved *bool `json:"blobRemoved,omitempty"`
}

type SweepResponse struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

type JobsResponse struct {
	Jobs   []JobPosting `json:"jobs"`
	Source string       `json:"source"`
	Error  string       `json:"error,omitempty"`
}
