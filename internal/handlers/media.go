package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MaxUploadBytes caps a media upload request body.
const MaxUploadBytes = 20 << 20

// MediaManager uploads and deletes media. Implemented by
// services.MediaService.
type MediaManager interface {
	UploadMedia(ctx context.Context, req *models.UploadMediaRequest) (*models.Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID, imageURL string) (bool, error)
	SweepOrphans(ctx context.Context, limit int) (*models.SweepResponse, error)
}

type MediaHandler struct {
	media MediaManager
	log   *logrus.Logger
}

func NewMediaHandler(media MediaManager, log *logrus.Logger) *MediaHandler {
	return &MediaHandler{media: media, log: log}
}

// UploadMedia godoc
// @Summary     Upload an image to a project
// @Description Stores the file in the media bucket under <PROJECTCODE>/<unix-millis><ext> and records it. If recording fails the stored file is removed again.
// @Tags        media
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       file formData file true "Image file"
// @Param       projectCode formData string true "Project code"
// @Param       imageName formData string false "Display name, defaults to the file name"
// @Success     201 {object} models.MediaResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error:   "file too large",
			Message: fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file is required",
			Message: err.Error(),
		})
		return
	}

	projectCode := c.PostForm("projectCode")
	if projectCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "projectCode is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}

	media, err := h.media.UploadMedia(c.Request.Context(), &models.UploadMediaRequest{
		ProjectCode: projectCode,
		ImageName:   c.PostForm("imageName"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		respondError(c, h.log, err, "Project not found", "failed to upload media")
		return
	}

	c.JSON(http.StatusCreated, models.MediaResponse{Media: media})
}

// DeleteMedia godoc
// @Summary     Delete an image
// @Description Removes the stored file when imageUrl points into the media bucket, then deletes the record. The record is deleted even when the file cannot be removed.
// @Tags        media
// @Produce     json
// @Security    Bearer
// @Param       id query string true "Media ID (UUID)"
// @Param       imageUrl query string false "Public URL of the stored file"
// @Success     200 {object} models.DeleteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/media [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid media id"})
		return
	}

	removed, err := h.media.DeleteMedia(c.Request.Context(), id, c.Query("imageUrl"))
	if err != nil {
		respondError(c, h.log, err, "Media not found", "failed to delete media")
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Success: true, BlobRemoved: &removed})
}

// SweepOrphans godoc
// @Summary     Retry removal of orphaned files
// @Tags        media
// @Produce     json
// @Security    Bearer
// @Param       limit query int false "Maximum orphans to process" default(100)
// @Success     200 {object} models.SweepResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/media/orphans/sweep [post]
func (h *MediaHandler) SweepOrphans(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	result, err := h.media.SweepOrphans(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.log, err, "", "failed to sweep orphans")
		return
	}

	c.JSON(http.StatusOK, result)
}
