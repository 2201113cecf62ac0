package handlers

import (
	"net/http"

	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UpdatePortal manages progress updates. Implemented by
// services.PortalService.
type UpdatePortal interface {
	CreateUpdate(req *models.CreateUpdateRequest) (*models.Update, error)
	EditUpdate(req *models.EditUpdateRequest) (*models.Update, error)
	DeleteUpdate(id uuid.UUID) error
}

type UpdatesHandler struct {
	portal UpdatePortal
	log    *logrus.Logger
}

func NewUpdatesHandler(portal UpdatePortal, log *logrus.Logger) *UpdatesHandler {
	return &UpdatesHandler{portal: portal, log: log}
}

// CreateUpdate godoc
// @Summary     Post a progress update
// @Tags        updates
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateUpdateRequest true "Update"
// @Success     201 {object} models.UpdateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/updates [post]
func (h *UpdatesHandler) CreateUpdate(c *gin.Context) {
	var req models.CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	update, err := h.portal.CreateUpdate(&req)
	if err != nil {
		respondError(c, h.log, err, "", "failed to create update")
		return
	}

	c.JSON(http.StatusCreated, models.UpdateResponse{Update: update})
}

// EditUpdate godoc
// @Summary     Edit a progress update
// @Description Only title, description and links present in the body are written.
// @Tags        updates
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.EditUpdateRequest true "Changes"
// @Success     200 {object} models.UpdateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/updates [put]
func (h *UpdatesHandler) EditUpdate(c *gin.Context) {
	var req models.EditUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	update, err := h.portal.EditUpdate(&req)
	if err != nil {
		respondError(c, h.log, err, "Update not found", "failed to edit update")
		return
	}

	c.JSON(http.StatusOK, models.UpdateResponse{Update: update})
}

// DeleteUpdate godoc
// @Summary     Delete a progress update
// @Tags        updates
// @Produce     json
// @Security    Bearer
// @Param       id query string true "Update ID (UUID)"
// @Success     200 {object} models.DeleteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/updates [delete]
func (h *UpdatesHandler) DeleteUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid update id"})
		return
	}

	if err := h.portal.DeleteUpdate(id); err != nil {
		respondError(c, h.log, err, "Update not found", "failed to delete update")
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}
