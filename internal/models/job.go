package models

// JobPosting is one entry of the job list returned by the scraper or the
// static fallback.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PostedDate  string `json:"postedDate"`
}
