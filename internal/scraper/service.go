package scraper

import (
	"context"

	"client-portal/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	SourceScraper  = "scraper"
	SourceFallback = "fallback"
)

// Fetcher is the remote scraper. Implemented by Client.
type Fetcher interface {
	FetchJobs(ctx context.Context, company, keyword string) ([]models.JobPosting, error)
}

// Service serves jobs from the remote scraper when one is configured and
// from the static list otherwise or when the scraper fails.
type Service struct {
	remote Fetcher
	log    *logrus.Logger
}

// NewService accepts a nil remote.
func NewService(remote Fetcher, log *logrus.Logger) *Service {
	return &Service{remote: remote, log: log}
}

func (s *Service) Jobs(ctx context.Context, company, keyword string) *models.JobsResponse {
	if s.remote == nil {
		return &models.JobsResponse{Jobs: Fallback(company, keyword), Source: SourceFallback}
	}

	jobs, err := s.remote.FetchJobs(ctx, company, keyword)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"company": company,
			"keyword": keyword,
		}).Warn("Scraper unavailable, serving fallback jobs")

		return &models.JobsResponse{
			Jobs:   Fallback(company, keyword),
			Source: SourceFallback,
			Error:  err.Error(),
		}
	}

	return &models.JobsResponse{Jobs: jobs, Source: SourceScraper}
}
