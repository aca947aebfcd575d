package user

import (
	"net/http"

	"meetslot/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.Claim)
	rg.GET("/users/:username", h.Get)
}

func (h *Handler) Claim(c *gin.Context) {
	var req ClaimUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "malformed-input", "Invalid request body")
		return
	}

	u, err := h.service.Claim(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidUsername:
			response.Error(c, http.StatusBadRequest, "malformed-input",
				"Username must have at least 3 characters, letters and hyphens only")
		case ErrUsernameTaken:
			response.Error(c, http.StatusConflict, "username-taken", "Username already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "internal-error", "Failed to create user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "user-not-found", "User does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "internal-error", "Failed to load user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}
