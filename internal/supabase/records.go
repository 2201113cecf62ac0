package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"

	"client-portal/internal/apperrors"
	"client-portal/internal/models"

	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

const (
	clientsTable = "clients"
	updatesTable = "client_updates"
	mediaTable   = "client_media"

	returnRepresentation = "representation"
)

var newestFirst = &postgrest.OrderOpts{Ascending: false}

// clientRecord is a full clients row as PostgREST returns it after a write.
type clientRecord struct {
	models.Client
	PasswordHash string `json:"password_hash"`
}

// RecordStore reads and writes the portal tables through PostgREST. Callers
// pass project codes already normalized.
type RecordStore struct {
	client *supabase.Client
}

func NewRecordStore(c *Client) *RecordStore {
	return &RecordStore{client: c.Supabase}
}

// decodeRows rejects columns the typed records do not know about.
func decodeRows(body []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode rows: %w", err)
	}
	return nil
}

func (s *RecordStore) GetClient(projectCode string) (*models.Client, error) {
	body, _, err := s.client.From(clientsTable).
		Select(models.ClientColumns, "", false).
		Eq("project_code", projectCode).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	var rows []models.Client
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("client %s: %w", projectCode, apperrors.ErrNotFound)
	}

	return &rows[0], nil
}

func (s *RecordStore) GetClientCredentials(projectCode string) (*models.ClientCredentials, error) {
	body, _, err := s.client.From(clientsTable).
		Select(models.CredentialColumns, "", false).
		Eq("project_code", projectCode).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get client credentials: %w", err)
	}

	var rows []models.ClientCredentials
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("client %s: %w", projectCode, apperrors.ErrNotFound)
	}

	return &rows[0], nil
}

func (s *RecordStore) ListClients() ([]models.Client, error) {
	body, _, err := s.client.From(clientsTable).
		Select(models.ClientColumns, "", false).
		Order("created_at", newestFirst).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	rows := []models.Client{}
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *RecordStore) CreateClient(insert models.ClientInsert) (*models.Client, error) {
	body, _, err := s.client.From(clientsTable).
		Insert(insert, false, "", returnRepresentation, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	var rows []clientRecord
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create client: no row returned")
	}

	return &rows[0].Client, nil
}

func (s *RecordStore) UpdateClient(projectCode string, fields map[string]interface{}) (*models.Client, error) {
	body, _, err := s.client.From(clientsTable).
		Update(fields, returnRepresentation, "").
		Eq("project_code", projectCode).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	var rows []clientRecord
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("client %s: %w", projectCode, apperrors.ErrNotFound)
	}

	return &rows[0].Client, nil
}

func (s *RecordStore) ListUpdates(projectCode string) ([]models.Update, error) {
	body, _, err := s.client.From(updatesTable).
		Select(models.UpdateColumns, "", false).
		Eq("project_code", projectCode).
		Order("created_at", newestFirst).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}

	rows := []models.Update{}
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Links == nil {
			rows[i].Links = []string{}
		}
	}

	return rows, nil
}

func (s *RecordStore) CreateUpdate(insert models.UpdateInsert) (*models.Update, error) {
	body, _, err := s.client.From(updatesTable).
		Insert(insert, false, "", returnRepresentation, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create update: %w", err)
	}

	return firstUpdate(body, uuid.Nil)
}

func (s *RecordStore) UpdateUpdate(id uuid.UUID, fields map[string]interface{}) (*models.Update, error) {
	body, _, err := s.client.From(updatesTable).
		Update(fields, returnRepresentation, "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update update %s: %w", id, err)
	}

	return firstUpdate(body, id)
}

func (s *RecordStore) DeleteUpdate(id uuid.UUID) error {
	body, _, err := s.client.From(updatesTable).
		Delete(returnRepresentation, "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete update %s: %w", id, err)
	}

	_, err = firstUpdate(body, id)
	return err
}

func firstUpdate(body []byte, id uuid.UUID) (*models.Update, error) {
	var rows []models.Update
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if id == uuid.Nil {
			return nil, fmt.Errorf("no update row returned")
		}
		return nil, fmt.Errorf("update %s: %w", id, apperrors.ErrNotFound)
	}
	if rows[0].Links == nil {
		rows[0].Links = []string{}
	}
	return &rows[0], nil
}

func (s *RecordStore) ListMedia(projectCode string) ([]models.Media, error) {
	body, _, err := s.client.From(mediaTable).
		Select(models.MediaColumns, "", false).
		Eq("project_code", projectCode).
		Order("uploaded_at", newestFirst).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	rows := []models.Media{}
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *RecordStore) CreateMedia(insert models.MediaInsert) (*models.Media, error) {
	body, _, err := s.client.From(mediaTable).
		Insert(insert, false, "", returnRepresentation, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}

	var rows []models.Media
	if err := decodeRows(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create media: no row returned")
	}

	return &rows[0], nil
}

func (s *RecordStore) DeleteMedia(id uuid.UUID) error {
	body, _, err := s.client.From(mediaTable).
		Delete(returnRepresentation, "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete media %s: %w", id, err)
	}

	var rows []models.Media
	if err := decodeRows(body, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("media %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}
