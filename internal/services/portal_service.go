package services

import (
	"errors"
	"fmt"

	"client-portal/internal/apperrors"
	"client-portal/internal/auth"
	"client-portal/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultProjectStatus = "Pending"

// PortalStore is the row-level access the portal needs. Implemented by
// supabase.RecordStore.
type PortalStore interface {
	GetClient(projectCode string) (*models.Client, error)
	GetClientCredentials(projectCode string) (*models.ClientCredentials, error)
	ListClients() ([]models.Client, error)
	CreateClient(insert models.ClientInsert) (*models.Client, error)
	UpdateClient(projectCode string, fields map[string]interface{}) (*models.Client, error)

	ListUpdates(projectCode string) ([]models.Update, error)
	CreateUpdate(insert models.UpdateInsert) (*models.Update, error)
	UpdateUpdate(id uuid.UUID, fields map[string]interface{}) (*models.Update, error)
	DeleteUpdate(id uuid.UUID) error

	ListMedia(projectCode string) ([]models.Media, error)
}

// CredentialStore reads client password hashes.
type CredentialStore interface {
	GetClientCredentials(projectCode string) (*models.ClientCredentials, error)
}

type PortalService struct {
	store       PortalStore
	credentials CredentialStore
	log         *logrus.Logger
}

func NewPortalService(store PortalStore, log *logrus.Logger) *PortalService {
	return &PortalService{store: store, credentials: store, log: log}
}

// WithCredentialStore serves password hash reads from credentials instead of
// the row store, so the hashes can stay behind the privileged key.
func (s *PortalService) WithCredentialStore(credentials CredentialStore) *PortalService {
	s.credentials = credentials
	return s
}

// Authenticate checks a client's project code and password. An unknown code
// and a wrong password both yield ErrInvalidCredentials.
func (s *PortalService) Authenticate(projectCode, password string) (*models.AuthResponse, error) {
	code := models.NormalizeProjectCode(projectCode)
	if code == "" || password == "" {
		return nil, fmt.Errorf("project code and password are required: %w", apperrors.ErrValidation)
	}

	creds, err := s.credentials.GetClientCredentials(code)
	if errors.Is(err, apperrors.ErrNotFound) {
		auth.VerifyAbsent(password)
		s.log.WithField("project_code", code).Info("Auth attempt for unknown project code")
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(password, creds.PasswordHash) {
		s.log.WithField("project_code", code).Info("Auth attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return &models.AuthResponse{
		Success:     true,
		ProjectCode: creds.ProjectCode,
		ClientName:  creds.ClientName,
	}, nil
}

// GetProject returns the client row with its updates and media. Only the
// client row is required; a failed updates or media read is logged and
// served as an empty list.
func (s *PortalService) GetProject(projectCode string) (*models.ProjectAggregate, error) {
	code := models.NormalizeProjectCode(projectCode)
	if code == "" {
		return nil, fmt.Errorf("project code is required: %w", apperrors.ErrValidation)
	}

	client, err := s.store.GetClient(code)
	if err != nil {
		return nil, err
	}

	updates, err := s.store.ListUpdates(code)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"project_code": code,
			"collection":   "updates",
		}).Warn("Serving project without updates")
		updates = nil
	}

	media, err := s.store.ListMedia(code)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"project_code": code,
			"collection":   "media",
		}).Warn("Serving project without media")
		media = nil
	}

	if updates == nil {
		updates = []models.Update{}
	}
	if media == nil {
		media = []models.Media{}
	}

	return &models.ProjectAggregate{
		Client:  *client,
		Updates: updates,
		Media:   media,
	}, nil
}

func (s *PortalService) ListClients() ([]models.Client, error) {
	clients, err := s.store.ListClients()
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

func (s *PortalService) CreateClient(req *models.CreateClientRequest) (*models.Client, error) {
	code := models.NormalizeProjectCode(req.ProjectCode)
	if code == "" {
		return nil, fmt.Errorf("project code is required: %w", apperrors.ErrValidation)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	status := req.ProjectStatus
	if status == "" {
		status = defaultProjectStatus
	}

	client, err := s.store.CreateClient(models.ClientInsert{
		ProjectCode:        code,
		ClientName:         req.ClientName,
		ProjectName:        req.ProjectName,
		TotalProjectAmount: req.TotalProjectAmount,
		AmountPaid:         req.AmountPaid,
		ProjectStatus:      status,
		PasswordHash:       hash,
	})
	if err != nil {
		return nil, err
	}

	s.warnIfOverpaid(client)
	s.log.WithField("project_code", code).Info("Client created")

	return client, nil
}

// UpdateClient writes only the fields present in req. Amounts are not
// range-checked.
func (s *PortalService) UpdateClient(projectCode string, req *models.UpdateClientRequest) (*models.Client, error) {
	code := models.NormalizeProjectCode(projectCode)
	if code == "" {
		return nil, fmt.Errorf("project code is required: %w", apperrors.ErrValidation)
	}

	fields := map[string]interface{}{}
	if req.ClientName != nil {
		fields["client_name"] = *req.ClientName
	}
	if req.ProjectName != nil {
		fields["project_name"] = *req.ProjectName
	}
	if req.TotalProjectAmount != nil {
		fields["total_project_amount"] = *req.TotalProjectAmount
	}
	if req.AmountPaid != nil {
		fields["amount_paid"] = *req.AmountPaid
	}
	if req.ProjectStatus != nil {
		fields["project_status"] = *req.ProjectStatus
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	client, err := s.store.UpdateClient(code, fields)
	if err != nil {
		return nil, err
	}

	s.warnIfOverpaid(client)

	return client, nil
}

func (s *PortalService) warnIfOverpaid(client *models.Client) {
	if client.AmountPaid > client.TotalProjectAmount {
		s.log.WithFields(logrus.Fields{
			"project_code":         client.ProjectCode,
			"amount_paid":          client.AmountPaid,
			"total_project_amount": client.TotalProjectAmount,
		}).Warn("Amount paid exceeds project total")
	}
}

func (s *PortalService) CreateUpdate(req *models.CreateUpdateRequest) (*models.Update, error) {
	code := models.NormalizeProjectCode(req.ProjectCode)
	if code == "" {
		return nil, fmt.Errorf("project code is required: %w", apperrors.ErrValidation)
	}

	links := req.Links
	if links == nil {
		links = []string{}
	}

	return s.store.CreateUpdate(models.UpdateInsert{
		ProjectCode: code,
		Title:       req.Title,
		Description: req.Description,
		Links:       links,
	})
}

func (s *PortalService) EditUpdate(req *models.EditUpdateRequest) (*models.Update, error) {
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("update id is required: %w", apperrors.ErrValidation)
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Links != nil {
		links := *req.Links
		if links == nil {
			links = []string{}
		}
		fields["links"] = links
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	return s.store.UpdateUpdate(req.ID, fields)
}

func (s *PortalService) DeleteUpdate(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("update id is required: %w", apperrors.ErrValidation)
	}
	return s.store.DeleteUpdate(id)
}
