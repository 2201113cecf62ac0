package handlers

import (
	"net/http"
	"time"

	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminGate checks the admin password and issues session tokens.
// Implemented by auth.AdminGate.
type AdminGate interface {
	CheckPassword(candidate string) bool
	Issue() (string, time.Time, error)
}

// AdminPortal is the privileged side of the portal. Implemented by
// services.PortalService.
type AdminPortal interface {
	GetProject(projectCode string) (*models.ProjectAggregate, error)
	ListClients() ([]models.Client, error)
	CreateClient(req *models.CreateClientRequest) (*models.Client, error)
	UpdateClient(projectCode string, req *models.UpdateClientRequest) (*models.Client, error)
}

type AdminHandler struct {
	gate   AdminGate
	portal AdminPortal
	log    *logrus.Logger
}

func NewAdminHandler(gate AdminGate, portal AdminPortal, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{gate: gate, portal: portal, log: log}
}

// Login godoc
// @Summary     Admin login
// @Description Exchanges the admin password for a bearer token.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.AdminLoginRequest true "Admin password"
// @Success     200 {object} models.AdminLoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if !h.gate.CheckPassword(req.Password) {
		h.log.WithField("client_ip", c.ClientIP()).Warn("Admin login with wrong password")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid password"})
		return
	}

	token, expiresAt, err := h.gate.Issue()
	if err != nil {
		respondError(c, h.log, err, "", "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, models.AdminLoginResponse{Token: token, ExpiresAt: expiresAt})
}

// ListClients godoc
// @Summary     List clients
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ClientListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/clients [get]
func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.portal.ListClients()
	if err != nil {
		respondError(c, h.log, err, "", "failed to list clients")
		return
	}

	c.JSON(http.StatusOK, models.ClientListResponse{Clients: clients})
}

// CreateClient godoc
// @Summary     Create a client
// @Description The password is hashed server-side and the project code uppercased.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateClientRequest true "New client"
// @Success     201 {object} models.ClientResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/clients [post]
func (h *AdminHandler) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	client, err := h.portal.CreateClient(&req)
	if err != nil {
		respondError(c, h.log, err, "", "failed to create client")
		return
	}

	c.JSON(http.StatusCreated, models.ClientResponse{Client: client})
}

// GetProject godoc
// @Summary     Get a project (admin)
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       projectCode path string true "Project code"
// @Success     200 {object} models.ProjectAggregate
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/project/{projectCode} [get]
func (h *AdminHandler) GetProject(c *gin.Context) {
	project, err := h.portal.GetProject(c.Param("projectCode"))
	if err != nil {
		respondError(c, h.log, err, "Project not found", "failed to load project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary     Update a client's project fields
// @Description Only fields present in the body are written. Amounts are not range-checked.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       projectCode path string true "Project code"
// @Param       request body models.UpdateClientRequest true "Fields to change"
// @Success     200 {object} models.ClientResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/project/{projectCode} [put]
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	client, err := h.portal.UpdateClient(c.Param("projectCode"), &req)
	if err != nil {
		respondError(c, h.log, err, "Project not found", "failed to update project")
		return
	}

	c.JSON(http.StatusOK, models.ClientResponse{Client: client})
}
