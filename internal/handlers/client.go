package handlers

import (
	"net/http"

	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ClientPortal is the client-facing read side. Implemented by
// services.PortalService.
type ClientPortal interface {
	Authenticate(projectCode, password string) (*models.AuthResponse, error)
	GetProject(projectCode string) (*models.ProjectAggregate, error)
}

type ClientHandler struct {
	portal ClientPortal
	log    *logrus.Logger
}

func NewClientHandler(portal ClientPortal, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{portal: portal, log: log}
}

// Authenticate godoc
// @Summary     Check a client's project code and password
// @Description Unknown codes and wrong passwords return the same 401. No session is issued.
// @Tags        client
// @Accept      json
// @Produce     json
// @Param       request body models.AuthRequest true "Credentials"
// @Success     200 {object} models.AuthResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /client/auth [post]
func (h *ClientHandler) Authenticate(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.portal.Authenticate(req.ProjectCode, req.Password)
	if err != nil {
		respondError(c, h.log, err, invalidCredentialsMessage, "failed to authenticate")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProject godoc
// @Summary     Get a project dashboard
// @Description Returns the client row with its updates and media, newest first. Project codes are case-insensitive.
// @Tags        client
// @Produce     json
// @Param       projectCode path string true "Project code"
// @Success     200 {object} models.ProjectAggregate
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /client/{projectCode} [get]
func (h *ClientHandler) GetProject(c *gin.Context) {
	project, err := h.portal.GetProject(c.Param("projectCode"))
	if err != nil {
		respondError(c, h.log, err, "Project not found", "failed to load project")
		return
	}

	c.JSON(http.StatusOK, project)
}
