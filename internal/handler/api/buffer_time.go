package api

import (
	"errors"
	"net/http"

	reqdto "makespace/internal/handler/dto/request"
	resdto "makespace/internal/handler/dto/response"
	"makespace/internal/handler/httperr"
	"makespace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BufferTimeHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewBufferTimeHandler(catalogUseCase usecase.CatalogUseCase) *BufferTimeHandler {
	return &BufferTimeHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List buffer times
// @Description List the administrative blackout windows
// @Tags buffer-times
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BufferTimesListResponse
// @Router /buffer-times [get]
func (h *BufferTimeHandler) List(c *gin.Context) {
	windows, err := h.catalogUseCase.ListBufferTimes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBufferWindows(windows))
}

// @Summary Create buffer time
// @Description Add a blackout window during which no booking may be made
// @Tags buffer-times
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBufferTimeRequest true "Buffer window"
// @Success 201 {object} resdto.BufferTimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /buffer-times [post]
func (h *BufferTimeHandler) Create(c *gin.Context) {
	var req reqdto.CreateBufferTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	slot, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	res, err := h.catalogUseCase.AddBufferTime(c.Request.Context(), slot)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if res.IsFailure() {
		if errors.Is(res.Err(), usecase.ErrBufferAlreadyExists) {
			httperr.AbortWithError(c, http.StatusConflict, res.Err(), "Buffer time already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, res.Err(), "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBufferWindow(res.Value()))
}

// @Summary Delete buffer time
// @Description Remove a blackout window
// @Tags buffer-times
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buffer time ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /buffer-times/{id} [delete]
func (h *BufferTimeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid buffer time ID format", nil)
		return
	}

	res, err := h.catalogUseCase.RemoveBufferTime(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if res.IsFailure() {
		httperr.AbortWithError(c, http.StatusNotFound, res.Err(), "Buffer time not found", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
