package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"client-portal/internal/apperrors"
	"client-portal/internal/models"

	"github.com/google/uuid"
)

// fakeStore matches project codes exactly, like the database does.
type fakeStore struct {
	clients     map[string]*models.Client
	hashes      map[string]string
	updates     map[string][]models.Update
	media       map[string][]models.Media
	updatesErr  error
	mediaErr    error
	createErr   error
	lastFields  map[string]interface{}
	deletedIDs  []uuid.UUID
	createdRows []models.MediaInsert
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients: map[string]*models.Client{},
		hashes:  map[string]string{},
		updates: map[string][]models.Update{},
		media:   map[string][]models.Media{},
	}
}

func (f *fakeStore) addClient(code, name, hash string) {
	f.clients[code] = &models.Client{
		ProjectCode:        code,
		ClientName:         name,
		ProjectName:        "Website",
		TotalProjectAmount: 1000,
		ProjectStatus:      "In Progress",
		CreatedAt:          time.Now(),
	}
	f.hashes[code] = hash
}

func (f *fakeStore) GetClient(code string) (*models.Client, error) {
	c, ok := f.clients[code]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", code, apperrors.ErrNotFound)
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) GetClientCredentials(code string) (*models.ClientCredentials, error) {
	c, ok := f.clients[code]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", code, apperrors.ErrNotFound)
	}
	return &models.ClientCredentials{
		ProjectCode:  c.ProjectCode,
		ClientName:   c.ClientName,
		PasswordHash: f.hashes[code],
	}, nil
}

func (f *fakeStore) ListClients() ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeStore) CreateClient(insert models.ClientInsert) (*models.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.addClient(insert.ProjectCode, insert.ClientName, insert.PasswordHash)
	c := f.clients[insert.ProjectCode]
	c.ProjectName = insert.ProjectName
	c.TotalProjectAmount = insert.TotalProjectAmount
	c.AmountPaid = insert.AmountPaid
	c.ProjectStatus = insert.ProjectStatus
	return f.GetClient(insert.ProjectCode)
}

func (f *fakeStore) UpdateClient(code string, fields map[string]interface{}) (*models.Client, error) {
	f.lastFields = fields
	c, ok := f.clients[code]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", code, apperrors.ErrNotFound)
	}
	if v, ok := fields["client_name"]; ok {
		c.ClientName = v.(string)
	}
	if v, ok := fields["project_name"]; ok {
		c.ProjectName = v.(string)
	}
	if v, ok := fields["total_project_amount"]; ok {
		c.TotalProjectAmount = v.(float64)
	}
	if v, ok := fields["amount_paid"]; ok {
		c.AmountPaid = v.(float64)
	}
	if v, ok := fields["project_status"]; ok {
		c.ProjectStatus = v.(string)
	}
	return f.GetClient(code)
}

func (f *fakeStore) ListUpdates(code string) ([]models.Update, error) {
	if f.updatesErr != nil {
		return nil, f.updatesErr
	}
	return f.updates[code], nil
}

func (f *fakeStore) CreateUpdate(insert models.UpdateInsert) (*models.Update, error) {
	u := models.Update{
		ID:          uuid.New(),
		ProjectCode: insert.ProjectCode,
		Title:       insert.Title,
		Description: insert.Description,
		Links:       insert.Links,
		CreatedAt:   time.Now(),
	}
	f.updates[insert.ProjectCode] = append(f.updates[insert.ProjectCode], u)
	return &u, nil
}

func (f *fakeStore) UpdateUpdate(id uuid.UUID, fields map[string]interface{}) (*models.Update, error) {
	f.lastFields = fields
	for code, list := range f.updates {
		for i := range list {
			if list[i].ID != id {
				continue
			}
			if v, ok := fields["title"]; ok {
				list[i].Title = v.(string)
			}
			if v, ok := fields["description"]; ok {
				list[i].Description = v.(string)
			}
			if v, ok := fields["links"]; ok {
				list[i].Links = v.([]string)
			}
			f.updates[code] = list
			u := list[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("update %s: %w", id, apperrors.ErrNotFound)
}

func (f *fakeStore) DeleteUpdate(id uuid.UUID) error {
	for code, list := range f.updates {
		for i := range list {
			if list[i].ID == id {
				f.updates[code] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("update %s: %w", id, apperrors.ErrNotFound)
}

func (f *fakeStore) ListMedia(code string) ([]models.Media, error) {
	if f.mediaErr != nil {
		return nil, f.mediaErr
	}
	return f.media[code], nil
}

func (f *fakeStore) CreateMedia(insert models.MediaInsert) (*models.Media, error) {
	f.createdRows = append(f.createdRows, insert)
	if f.createErr != nil {
		return nil, f.createErr
	}
	m := models.Media{
		ID:          uuid.New(),
		ProjectCode: insert.ProjectCode,
		ImageURL:    insert.ImageURL,
		ImageName:   insert.ImageName,
		UploadedAt:  time.Now(),
	}
	f.media[insert.ProjectCode] = append(f.media[insert.ProjectCode], m)
	return &m, nil
}

func (f *fakeStore) DeleteMedia(id uuid.UUID) error {
	f.deletedIDs = append(f.deletedIDs, id)
	for code, list := range f.media {
		for i := range list {
			if list[i].ID == id {
				f.media[code] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("media %s: %w", id, apperrors.ErrNotFound)
}

const fakeBucketPrefix = "https://example.supabase.co/storage/v1/object/public/client-media/"

type fakeBlobs struct {
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
	removeErr error
	removed   []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeBlobs) Upload(path, contentType string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objects[path] = data
	f.types[path] = contentType
	return fakeBucketPrefix + path, nil
}

func (f *fakeBlobs) Remove(path string) error {
	f.removed = append(f.removed, path)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.objects, path)
	return nil
}

func (f *fakeBlobs) PathFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, fakeBucketPrefix) || len(url) == len(fakeBucketPrefix) {
		return "", false
	}
	return strings.TrimPrefix(url, fakeBucketPrefix), true
}

type fakeOrphans struct {
	orphans   []models.Orphan
	nextID    int64
	recordErr error
}

func (f *fakeOrphans) RecordOrphan(_ context.Context, path, reason string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.nextID++
	f.orphans = append(f.orphans, models.Orphan{ID: f.nextID, StoragePath: path, Reason: reason, CreatedAt: time.Now()})
	return nil
}

func (f *fakeOrphans) ListOrphans(_ context.Context, limit int) ([]models.Orphan, error) {
	if limit < len(f.orphans) {
		return append([]models.Orphan(nil), f.orphans[:limit]...), nil
	}
	return append([]models.Orphan(nil), f.orphans...), nil
}

func (f *fakeOrphans) DeleteOrphan(_ context.Context, id int64) error {
	for i, o := range f.orphans {
		if o.ID == id {
			f.orphans = append(f.orphans[:i], f.orphans[i+1:]...)
			return nil
		}
	}
	return errors.New("orphan not found")
}

func (f *fakeOrphans) CountOrphans(context.Context) (int, error) {
	return len(f.orphans), nil
}
