package scraper

import (
	"strings"
	"time"

	"client-portal/internal/models"
)

const DefaultCompany = "Tech Company"

type posting struct {
	title       string
	location    string
	slug        string
	description string
}

var fallbackPostings = []posting{
	{
		title:       "Software Engineer",
		location:    "Remote",
		slug:        "software-engineer",
		description: "Design, build and maintain backend services and APIs.",
	},
	{
		title:       "DevOps Engineer",
		location:    "Hybrid",
		slug:        "devops-engineer",
		description: "Own CI/CD pipelines, cloud infrastructure and deployment automation.",
	},
	{
		title:       "Frontend Developer",
		location:    "On-site",
		slug:        "frontend-developer",
		description: "Build responsive user interfaces with modern JavaScript frameworks.",
	},
}

// Fallback returns the static job list with company substituted, filtered by
// a case-insensitive substring match of keyword on title or description.
func Fallback(company, keyword string) []models.JobPosting {
	company = strings.TrimSpace(company)
	if company == "" {
		company = DefaultCompany
	}
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	posted := time.Now().UTC().Format("2006-01-02")

	jobs := make([]models.JobPosting, 0, len(fallbackPostings))
	for _, p := range fallbackPostings {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.title), keyword) &&
			!strings.Contains(strings.ToLower(p.description), keyword) {
			continue
		}
		jobs = append(jobs, models.JobPosting{
			Title:       p.title,
			Company:     company,
			Location:    p.location,
			Link:        "https://example.com/jobs/" + p.slug,
			Description: p.description,
			PostedDate:  posted,
		})
	}

	return jobs
}
