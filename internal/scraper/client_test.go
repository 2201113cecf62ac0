package scraper_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-portal/internal/logger"
	"client-portal/internal/models"
	"client-portal/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchJobs(t *testing.T) {
	var gotCompany, gotKeyword, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCompany = r.URL.Query().Get("company")
		gotKeyword = r.URL.Query().Get("keyword")
		gotKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[{"title":"SRE","company":"Globex","location":"Remote","link":"https://jobs.example.com/1","description":"Keep it up","postedDate":"2024-05-01"}]}`))
	}))
	defer server.Close()

	client := scraper.NewClient(server.URL+"/scrape", "scraper-key")
	jobs, err := client.FetchJobs(context.Background(), "Globex", "sre")
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "SRE", jobs[0].Title)
	assert.Equal(t, "2024-05-01", jobs[0].PostedDate)
	assert.Equal(t, "Globex", gotCompany)
	assert.Equal(t, "sre", gotKeyword)
	assert.Equal(t, "scraper-key", gotKey)
}

func TestClient_FetchJobs_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	_, err := scraper.NewClient(server.URL, "").FetchJobs(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestClient_FetchJobs_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	jobs, err := scraper.NewClient(server.URL, "").FetchJobs(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

type stubFetcher struct {
	jobs []models.JobPosting
	err  error
}

func (s stubFetcher) FetchJobs(context.Context, string, string) ([]models.JobPosting, error) {
	return s.jobs, s.err
}

func TestService_Jobs(t *testing.T) {
	ctx := context.Background()

	t.Run("no scraper configured", func(t *testing.T) {
		resp := scraper.NewService(nil, logger.Discard()).Jobs(ctx, "", "devops")
		assert.Equal(t, scraper.SourceFallback, resp.Source)
		require.Len(t, resp.Jobs, 1)
		assert.Empty(t, resp.Error)
	})

	t.Run("scraper answers", func(t *testing.T) {
		remote := stubFetcher{jobs: []models.JobPosting{{Title: "SRE"}}}
		resp := scraper.NewService(remote, logger.Discard()).Jobs(ctx, "", "")
		assert.Equal(t, scraper.SourceScraper, resp.Source)
		assert.Equal(t, "SRE", resp.Jobs[0].Title)
	})

	t.Run("scraper fails", func(t *testing.T) {
		remote := stubFetcher{err: errors.New("timeout")}
		resp := scraper.NewService(remote, logger.Discard()).Jobs(ctx, "Globex", "")
		assert.Equal(t, scraper.SourceFallback, resp.Source)
		assert.Equal(t, "timeout", resp.Error)
		assert.Len(t, resp.Jobs, 3)
	})
}
