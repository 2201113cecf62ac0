package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-portal/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		db   handlers.Pinger
		want string
	}{
		{"no database", nil, `{"status":"ok","service":"client-portal","database":"disabled"}`},
		{"database up", &stubPinger{}, `{"status":"ok","service":"client-portal","database":"connected"}`},
		{"database down", &stubPinger{err: errors.New("connection refused")}, `{"status":"degraded","service":"client-portal","database":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", handlers.NewHealthHandler(tt.db).Health)

			req, _ := http.NewRequest("GET", "/health", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
