package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"client-portal/internal/apperrors"
	"client-portal/internal/handlers"
	"client-portal/internal/logger"
	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientRouter(portal *stubPortal) *gin.Engine {
	h := handlers.NewClientHandler(portal, logger.Discard())
	router := gin.New()
	router.POST("/api/client/auth", h.Authenticate)
	router.GET("/api/client/:projectCode", h.GetProject)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Success(t *testing.T) {
	portal := &stubPortal{authResult: &models.AuthResponse{Success: true, ProjectCode: "ABC123", ClientName: "Acme"}}
	router := newClientRouter(portal)

	w := doJSON(router, "POST", "/api/client/auth", `{"projectCode":"abc123","password":"pw"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"projectCode":"ABC123","clientName":"Acme"}`, w.Body.String())
	assert.Equal(t, "abc123", portal.gotCode)
	assert.Equal(t, "pw", portal.gotPassword)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	router := newClientRouter(&stubPortal{err: apperrors.ErrInvalidCredentials})

	w := doJSON(router, "POST", "/api/client/auth", `{"projectCode":"ABC123","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid project code or password"}`, w.Body.String())
}

func TestAuthenticate_BadRequests(t *testing.T) {
	router := newClientRouter(&stubPortal{})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"missing password", `{"projectCode":"ABC123"}`},
		{"missing code", `{"password":"pw"}`},
		{"unknown field", `{"projectCode":"ABC123","password":"pw","admin":true}`},
		{"malformed", `{"projectCode":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/api/client/auth", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestAuthenticate_ValidationNamesJSONField(t *testing.T) {
	router := newClientRouter(&stubPortal{})

	w := doJSON(router, "POST", "/api/client/auth", `{"projectCode":"ABC123"}`)

	assert.Contains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "required")
}

func TestGetProject_Success(t *testing.T) {
	portal := &stubPortal{project: &models.ProjectAggregate{
		Client:  models.Client{ProjectCode: "ABC123", ClientName: "Acme"},
		Updates: []models.Update{},
		Media:   []models.Media{},
	}}
	router := newClientRouter(portal)

	w := doJSON(router, "GET", "/api/client/abc123", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", portal.gotCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, `[]`, string(body["updates"]))
	assert.JSONEq(t, `[]`, string(body["media"]))
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestGetProject_NotFound(t *testing.T) {
	router := newClientRouter(&stubPortal{err: notFound("client NOPE")})

	w := doJSON(router, "GET", "/api/client/NOPE", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
}

func TestGetProject_UpstreamErrorPassesThrough(t *testing.T) {
	router := newClientRouter(&stubPortal{err: errors.New("failed to get client: (42P01) relation does not exist")})

	w := doJSON(router, "GET", "/api/client/ABC123", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to load project", resp.Error)
	assert.Contains(t, resp.Message, "relation does not exist")
}
