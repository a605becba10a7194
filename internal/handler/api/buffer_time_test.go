//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"makespace/internal/handler/api"
	reqdto "makespace/internal/handler/dto/request"
	resdto "makespace/internal/handler/dto/response"
	"makespace/internal/infra/repository"
	"makespace/internal/pkg/result"
	"makespace/internal/usecase"
	"makespace/tests/common/builder"
	"makespace/tests/common/httptest"
	usecasemock "makespace/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BufferTimeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCatalog *usecasemock.MockCatalogUseCase
	handler     *api.BufferTimeHandler
}

func (s *BufferTimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	s.handler = api.NewBufferTimeHandler(s.mockCatalog)

	// Admin gating is covered by the room handler tests; these routes go bare.
	s.router.GET("/buffer-times", s.handler.List)
	s.router.POST("/buffer-times", s.handler.Create)
	s.router.DELETE("/buffer-times/:id", s.handler.Delete)
}

func (s *BufferTimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBufferTimeHandlerSuite(t *testing.T) {
	suite.Run(t, new(BufferTimeHandlerTestSuite))
}

func (s *BufferTimeHandlerTestSuite) TestList() {
	s.Run("success: returns the windows", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().ListBufferTimes(gomock.Any()).Return([]repository.BufferWindow{
			{ID: id, Slot: builder.MustSlot("09:00", "09:45")},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/buffer-times", nil, "")

		var body resdto.BufferTimesListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.BufferTimes, 1)
		s.Equal(id, body.BufferTimes[0].ID)
		s.Equal("09:00", body.BufferTimes[0].Start)
		s.Equal("09:45", body.BufferTimes[0].End)
	})
}

func (s *BufferTimeHandlerTestSuite) TestCreate() {
	url := "/buffer-times"
	reqBody := reqdto.CreateBufferTimeRequest{Start: "09:00", End: "09:45"}

	s.Run("success: returns 201 Created", func() {
		window := repository.BufferWindow{ID: uuid.New(), Slot: builder.MustSlot("09:00", "09:45")}
		s.mockCatalog.EXPECT().AddBufferTime(gomock.Any(), window.Slot).
			Return(result.Success(window), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BufferTimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(window.ID, body.ID)
	})

	s.Run("error: 409 on duplicate window", func() {
		s.mockCatalog.EXPECT().AddBufferTime(gomock.Any(), gomock.Any()).
			Return(result.Failure[repository.BufferWindow](usecase.ErrBufferAlreadyExists), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Buffer time already exists")
	})

	s.Run("error: 400 on an invalid slot", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CreateBufferTimeRequest{Start: "09:45", End: "09:00"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BufferTimeHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().RemoveBufferTime(gomock.Any(), id).
			Return(result.Success(result.Unit{}), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/buffer-times/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().RemoveBufferTime(gomock.Any(), id).
			Return(result.Failure[result.Unit](usecase.ErrBufferNotFound), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/buffer-times/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Buffer time not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/buffer-times/nope", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
