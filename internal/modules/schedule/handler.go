package schedule

import (
	"net/http"

	"meetslot/internal/pkg/response"
	"meetslot/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/users/:username/schedule", h.Replace)
	rg.GET("/users/:username/schedule", h.Get)
}

func (h *Handler) Replace(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "malformed-input", "Invalid request body")
		return
	}

	// shape checks come before any business rule
	if len(req.Intervals) != 7 {
		response.Error(c, http.StatusBadRequest, "malformed-input", "Exactly 7 intervals are required, one per weekday")
		return
	}
	for _, interval := range req.Intervals {
		if details := validator.Validate(interval); details != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "malformed-input", "Invalid interval", details)
			return
		}
	}

	s, err := h.service.Replace(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "user-not-found", "User does not exist")
		case ErrEmptySchedule:
			response.Error(c, http.StatusBadRequest, "empty-schedule", "At least one weekday must be enabled")
		case ErrIntervalTooShort:
			response.Error(c, http.StatusBadRequest, "interval-too-short", "Intervals must span at least one hour")
		case ErrMalformedTime:
			response.Error(c, http.StatusBadRequest, "malformed-input", "Times must be in HH:MM format")
		default:
			response.Error(c, http.StatusInternalServerError, "internal-error", "Failed to save schedule")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": s})
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "user-not-found", "User does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "internal-error", "Failed to load schedule")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": s})
}
