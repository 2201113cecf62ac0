package models

import (
	"strings"
	"time"
)

// ClientColumns is the exhaustive column list for Client. The password hash
// is deliberately absent.
const ClientColumns = "project_code,client_name,project_name,total_project_amount,amount_paid,project_status,created_at"

// CredentialColumns is only selected by the auth check.
const CredentialColumns = "project_code,client_name,password_hash"

// Client is a row of the clients table as shown on dashboards.
type Client struct {
	ProjectCode        string    `json:"project_code"`
	ClientName         string    `json:"client_name"`
	ProjectName        string    `json:"project_name"`
	TotalProjectAmount float64   `json:"total_project_amount"`
	AmountPaid         float64   `json:"amount_paid"`
	ProjectStatus      string    `json:"project_status"`
	CreatedAt          time.Time `json:"created_at"`
}

// ClientCredentials carries what the auth check needs and nothing else.
type ClientCredentials struct {
	ProjectCode  string `json:"project_code"`
	ClientName   string `json:"client_name"`
	PasswordHash string `json:"password_hash"`
}

// ClientInsert is the payload written when an admin creates a client.
type ClientInsert struct {
	ProjectCode        string  `json:"project_code"`
	ClientName         string  `json:"client_name"`
	ProjectName        string  `json:"project_name"`
	TotalProjectAmount float64 `json:"total_project_amount"`
	AmountPaid         float64 `json:"amount_paid"`
	ProjectStatus      string  `json:"project_status"`
	PasswordHash       string  `json:"password_hash"`
}

// NormalizeProjectCode is applied before every lookup or write keyed by a
// project code.
func NormalizeProjectCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
