package api

import (
	"errors"
	"net/http"

	reqdto "makespace/internal/handler/dto/request"
	resdto "makespace/internal/handler/dto/response"
	"makespace/internal/handler/httperr"
	"makespace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	bookingUseCase usecase.BookingUseCase
	catalogUseCase usecase.CatalogUseCase
}

func NewRoomHandler(bookingUseCase usecase.BookingUseCase, catalogUseCase usecase.CatalogUseCase) *RoomHandler {
	return &RoomHandler{
		bookingUseCase: bookingUseCase,
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List rooms
// @Description List the room catalog
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomsListResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.catalogUseCase.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Available rooms
// @Description List rooms bookable for a date and slot, ascending by capacity
// @Tags rooms
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Slot start (HH:MM)"
// @Param end query string true "Slot end (HH:MM)"
// @Success 200 {object} resdto.RoomsListResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	var query reqdto.AvailableRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date, start and end query parameters are required", nil)
		return
	}

	date, slot, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	rooms, err := h.bookingUseCase.GetAvailableRooms(c.Request.Context(), date, slot)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Create room
// @Description Add a room to the catalog
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	room, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	res, err := h.catalogUseCase.CreateRoom(c.Request.Context(), room)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if res.IsFailure() {
		if errors.Is(res.Err(), usecase.ErrRoomAlreadyExists) {
			httperr.AbortWithError(c, http.StatusConflict, res.Err(), "Room already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, res.Err(), "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(res.Value()))
}
