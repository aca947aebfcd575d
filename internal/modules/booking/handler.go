package booking

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
	rg.POST("/users/:username/bookings", h.CreateBooking)
	rg.GET("/users/:username/availability", h.GetDayAvailability)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "malformed-input", "Invalid request body")
		return
	}

	_, err := h.service.CreateBooking(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "user-not-found", "User does not exist")
		case ErrDateInPast:
			response.Error(c, http.StatusBadRequest, "date-in-the-past", "Cannot book a date in the past")
		case ErrSlotAlreadyBooked:
			response.Error(c, http.StatusConflict, "slot-already-booked", "There is already a booking at this time")
		default:
			response.Error(c, http.StatusInternalServerError, "internal-error", "Failed to create booking")
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) GetDayAvailability(c *gin.Context) {
	resp, err := h.service.GetDayAvailability(c.Request.Context(), c.Param("username"), c.Query("date"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "malformed-input", "Date must be in YYYY-MM-DD format")
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "user-not-found", "User does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "internal-error", "Failed to load availability")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}
