package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "makespace/internal/handler/dto/request"
	resdto "makespace/internal/handler/dto/response"
	"makespace/internal/handler/httperr"
	"makespace/internal/pkg/clock"
	"makespace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	clock          clock.Clock
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, clock clock.Clock) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		clock:          clock,
	}
}

// @Summary Book the next available room
// @Description Allocate the smallest room that fits the party for the requested slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, slot, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	res, err := h.bookingUseCase.BookNextAvailableRoom(c.Request.Context(), date, slot, req.NumPeople)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if res.IsFailure() {
		if errors.Is(res.Err(), usecase.ErrNoRoomAvailable) {
			httperr.AbortWithError(c, http.StatusConflict, res.Err(), "No room available for the requested slot", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, res.Err(), "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(res.Value()))
}

// @Summary List bookings
// @Description List bookings for a date (today when omitted)
// @Tags bookings
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingsListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	date := h.clock.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	bookings, err := h.bookingUseCase.GetAllBookingsByDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	res, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if res.IsFailure() {
		httperr.AbortWithError(c, http.StatusNotFound, res.Err(), "Booking not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(res.Value()))
}

// @Summary Delete booking
// @Description Delete a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	res, err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if res.IsFailure() {
		httperr.AbortWithError(c, http.StatusNotFound, res.Err(), "Booking not found", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
