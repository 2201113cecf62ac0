package services

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"client-portal/internal/apperrors"
	"client-portal/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultSweepLimit = 100

// MediaStore is the client_media row access. Implemented by
// supabase.RecordStore.
type MediaStore interface {
	CreateMedia(insert models.MediaInsert) (*models.Media, error)
	DeleteMedia(id uuid.UUID) error
}

// BlobStore is the media bucket. Implemented by supabase.StorageClient.
type BlobStore interface {
	Upload(storagePath, contentType string, data []byte) (string, error)
	Remove(storagePath string) error
	PathFromURL(publicURL string) (string, bool)
}

// MediaService pairs bucket objects with their client_media rows. Neither
// upload nor delete is transactional; a blob that cannot be cleaned up is
// written to the orphan ledger.
type MediaService struct {
	store   MediaStore
	blobs   BlobStore
	orphans OrphanStore
	log     *logrus.Logger
	now     func() time.Time
}

func NewMediaService(store MediaStore, blobs BlobStore, orphans OrphanStore, log *logrus.Logger) *MediaService {
	return &MediaService{
		store:   store,
		blobs:   blobs,
		orphans: orphans,
		log:     log,
		now:     time.Now,
	}
}

var safeExt = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// StoragePath builds the bucket key for an upload: <CODE>/<unix-millis><ext>.
// An extension with anything but lowercase letters and digits is dropped.
func StoragePath(projectCode, filename string, at time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !safeExt.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%s/%d%s", projectCode, at.UnixMilli(), ext)
}

// contentType keeps a declared type unless it is missing or generic, in which
// case the type is sniffed from the bytes.
func contentType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(data).String()
}

// UploadMedia stores the blob, then inserts its row. If the insert fails the
// blob is removed again.
func (s *MediaService) UploadMedia(ctx context.Context, req *models.UploadMediaRequest) (*models.Media, error) {
	code := models.NormalizeProjectCode(req.ProjectCode)
	if code == "" {
		return nil, fmt.Errorf("project code is required: %w", apperrors.ErrValidation)
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("file is empty: %w", apperrors.ErrValidation)
	}

	imageName := strings.TrimSpace(req.ImageName)
	if imageName == "" {
		imageName = req.Filename
	}

	storagePath := StoragePath(code, req.Filename, s.now())
	logger := s.log.WithFields(logrus.Fields{
		"project_code": code,
		"storage_path": storagePath,
	})

	publicURL, err := s.blobs.Upload(storagePath, contentType(req.ContentType, req.Data), req.Data)
	if err != nil {
		return nil, err
	}

	media, err := s.store.CreateMedia(models.MediaInsert{
		ProjectCode: code,
		ImageURL:    publicURL,
		ImageName:   imageName,
	})
	if err != nil {
		logger.WithError(err).Warn("Media row insert failed, removing uploaded blob")
		s.discardBlob(ctx, storagePath, "row insert failed: "+err.Error())
		return nil, err
	}

	logger.WithField("media_id", media.ID).Info("Media uploaded")

	return media, nil
}

// DeleteMedia removes the blob behind imageURL when it can be resolved, then
// deletes the row. A missing or foreign URL skips the blob. It reports
// whether the blob was removed.
func (s *MediaService) DeleteMedia(ctx context.Context, id uuid.UUID, imageURL string) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("media id is required: %w", apperrors.ErrValidation)
	}

	logger := s.log.WithField("media_id", id)

	removed := false
	if imageURL != "" {
		storagePath, ok := s.blobs.PathFromURL(imageURL)
		if !ok {
			logger.WithField("image_url", imageURL).Warn("Image URL does not point into the media bucket, skipping blob removal")
		} else {
			removed = s.discardBlob(ctx, storagePath, "media row deleted")
		}
	}

	if err := s.store.DeleteMedia(id); err != nil {
		return removed, err
	}

	logger.WithField("blob_removed", removed).Info("Media deleted")

	return removed, nil
}

// discardBlob removes a blob and records it as an orphan when that fails.
func (s *MediaService) discardBlob(ctx context.Context, storagePath, reason string) bool {
	err := s.blobs.Remove(storagePath)
	if err == nil {
		return true
	}

	logger := s.log.WithError(err).WithField("storage_path", storagePath)
	logger.Warn("Blob removal failed, recording orphan")

	if recErr := s.orphans.RecordOrphan(ctx, storagePath, reason); recErr != nil {
		logger.WithField("record_error", recErr.Error()).Error("Failed to record orphaned blob")
	}

	return false
}

// SweepOrphans retries removal for up to limit recorded orphans and clears
// the ones that succeed. It returns how many were removed and how many
// remain.
func (s *MediaService) SweepOrphans(ctx context.Context, limit int) (*models.SweepResponse, error) {
	if limit <= 0 {
		limit = defaultSweepLimit
	}

	orphans, err := s.orphans.ListOrphans(ctx, limit)
	if err != nil {
		return nil, err
	}

	removed := 0
	for _, orphan := range orphans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger := s.log.WithFields(logrus.Fields{
			"orphan_id":    orphan.ID,
			"storage_path": orphan.StoragePath,
		})

		if err := s.blobs.Remove(orphan.StoragePath); err != nil {
			logger.WithError(err).Warn("Orphan removal failed, keeping it for the next sweep")
			continue
		}
		if err := s.orphans.DeleteOrphan(ctx, orphan.ID); err != nil {
			logger.WithError(err).Error("Removed orphan blob but failed to clear its ledger entry")
			continue
		}
		removed++
	}

	remaining, err := s.orphans.CountOrphans(ctx)
	if err != nil {
		return nil, err
	}

	return &models.SweepResponse{Removed: removed, Remaining: remaining}, nil
}
