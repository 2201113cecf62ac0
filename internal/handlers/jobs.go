package handlers

import (
	"context"
	"net/http"

	"client-portal/internal/models"
	"client-portal/internal/scraper"

	"github.com/gin-gonic/gin"
)

// JobSource serves job listings. Implemented by scraper.Service.
type JobSource interface {
	Jobs(ctx context.Context, company, keyword string) *models.JobsResponse
}

type JobsHandler struct {
	jobs JobSource
}

func NewJobsHandler(jobs JobSource) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// GetJobs godoc
// @Summary     List job postings
// @Description Served by the external scraper when configured, otherwise or on failure by the static list.
// @Tags        jobs
// @Produce     json
// @Param       company query string false "Company name"
// @Param       keyword query string false "Keyword filter"
// @Success     200 {object} models.JobsResponse
// @Router      /scrape-jobs [get]
func (h *JobsHandler) GetJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobs.Jobs(c.Request.Context(), c.Query("company"), c.Query("keyword")))
}

// FallbackJobs godoc
// @Summary     List static job postings
// @Description Fixed postings with the company substituted, filtered by case-insensitive keyword match on title or description.
// @Tags        jobs
// @Produce     json
// @Param       company query string false "Company name" default(Tech Company)
// @Param       keyword query string false "Keyword filter"
// @Success     200 {object} models.JobsResponse
// @Router      /scrape-jobs/fallback [get]
func FallbackJobs(c *gin.Context) {
	c.JSON(http.StatusOK, models.JobsResponse{
		Jobs:   scraper.Fallback(c.Query("company"), c.Query("keyword")),
		Source: scraper.SourceFallback,
	})
}
