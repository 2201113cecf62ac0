package handlers_test

import (
	"context"
	"fmt"
	"time"

	"client-portal/internal/apperrors"
	"client-portal/internal/handlers"
	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
	handlers.ConfigureBinding()
}

type stubPortal struct {
	authResult *models.AuthResponse
	project    *models.ProjectAggregate
	clients    []models.Client
	client     *models.Client
	update     *models.Update
	err        error

	gotCode          string
	gotPassword      string
	gotCreateClient  *models.CreateClientRequest
	gotUpdateClient  *models.UpdateClientRequest
	gotCreateUpdate  *models.CreateUpdateRequest
	gotEditUpdate    *models.EditUpdateRequest
	gotDeletedUpdate uuid.UUID
}

func (s *stubPortal) Authenticate(projectCode, password string) (*models.AuthResponse, error) {
	s.gotCode, s.gotPassword = projectCode, password
	return s.authResult, s.err
}

func (s *stubPortal) GetProject(projectCode string) (*models.ProjectAggregate, error) {
	s.gotCode = projectCode
	return s.project, s.err
}

func (s *stubPortal) ListClients() ([]models.Client, error) {
	return s.clients, s.err
}

func (s *stubPortal) CreateClient(req *models.CreateClientRequest) (*models.Client, error) {
	s.gotCreateClient = req
	return s.client, s.err
}

func (s *stubPortal) UpdateClient(projectCode string, req *models.UpdateClientRequest) (*models.Client, error) {
	s.gotCode = projectCode
	s.gotUpdateClient = req
	return s.client, s.err
}

func (s *stubPortal) CreateUpdate(req *models.CreateUpdateRequest) (*models.Update, error) {
	s.gotCreateUpdate = req
	return s.update, s.err
}

func (s *stubPortal) EditUpdate(req *models.EditUpdateRequest) (*models.Update, error) {
	s.gotEditUpdate = req
	return s.update, s.err
}

func (s *stubPortal) DeleteUpdate(id uuid.UUID) error {
	s.gotDeletedUpdate = id
	return s.err
}

type stubGate struct {
	password string
}

func (g stubGate) CheckPassword(candidate string) bool {
	return candidate == g.password
}

func (g stubGate) Issue() (string, time.Time, error) {
	return "signed-token", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

type stubMedia struct {
	media   *models.Media
	removed bool
	sweep   *models.SweepResponse
	err     error

	gotUpload   *models.UploadMediaRequest
	gotDeleteID uuid.UUID
	gotImageURL string
	gotLimit    int
}

func (s *stubMedia) UploadMedia(_ context.Context, req *models.UploadMediaRequest) (*models.Media, error) {
	s.gotUpload = req
	return s.media, s.err
}

func (s *stubMedia) DeleteMedia(_ context.Context, id uuid.UUID, imageURL string) (bool, error) {
	s.gotDeleteID, s.gotImageURL = id, imageURL
	return s.removed, s.err
}

func (s *stubMedia) SweepOrphans(_ context.Context, limit int) (*models.SweepResponse, error) {
	s.gotLimit = limit
	return s.sweep, s.err
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
}
