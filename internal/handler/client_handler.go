package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novabill/internal/service"
)

// ClientHandler handles client management endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /api/v1/clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {object} Response{data=[]domain.Client} "Clients, ordered by name"
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, clients)
}

// Create handles POST /api/v1/clients
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.CreateClientInput true "Client"
// @Success 201 {object} Response{data=domain.Client} "Created client"
// @Failure 400 {object} ErrorResponseBody "Name missing"
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var input service.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, client)
}
