//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"makespace/internal/domain/booking"
	"makespace/internal/handler/api"
	"makespace/internal/handler/middleware"
	reqdto "makespace/internal/handler/dto/request"
	resdto "makespace/internal/handler/dto/response"
	"makespace/internal/pkg/result"
	"makespace/internal/usecase"
	"makespace/tests/common/builder"
	"makespace/tests/common/httptest"
	"makespace/tests/common/testutil"
	usecasemock "makespace/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
	mockCatalog *usecasemock.MockCatalogUseCase
	validator   *usecasemock.MockTokenValidator
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.mockCatalog = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockBooking, s.mockCatalog)

	authMiddleware := middleware.NewAuthMiddleware(s.validator)
	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/available", s.handler.Available)
	s.router.POST("/rooms", authMiddleware.RequireAdmin(), s.handler.Create)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: returns the catalog", func() {
		s.mockCatalog.EXPECT().ListRooms(gomock.Any()).Return([]booking.Room{
			builder.MustRoom("Amaze", 3),
			builder.MustRoom("Beauty", 7),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var body resdto.RoomsListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Rooms, 2)
		s.Equal("Amaze", body.Rooms[0].Name)
		s.Equal(3, body.Rooms[0].PeopleCapacity)
	})
}

func (s *RoomHandlerTestSuite) TestAvailable() {
	url := "/rooms/available?date=2020-12-10&start=09:45&end=10:30"

	s.Run("success: returns fitting rooms", func() {
		s.mockBooking.EXPECT().GetAvailableRooms(gomock.Any(), gomock.Any(), builder.MustSlot("09:45", "10:30")).
			Return([]booking.Room{builder.MustRoom("Beauty", 7)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.RoomsListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Rooms, 1)
		s.Equal("Beauty", body.Rooms[0].Name)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockBooking.EXPECT().GetAvailableRooms(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.Room{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"rooms":[]`)
	})

	s.Run("error: 400 on missing parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available?date=2020-12-10", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on an off-grid slot", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/available?date=2020-12-10&start=09:50&end=10:30", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/rooms"
	reqBody := reqdto.CreateRoomRequest{Name: "Amaze", PeopleCapacity: 3}

	s.Run("success: returns 201 Created", func() {
		s.validator.EXPECT().ValidateToken("admin-token").Return("admin", nil)
		s.mockCatalog.EXPECT().CreateRoom(gomock.Any(), builder.MustRoom("Amaze", 3)).
			Return(result.Success(builder.MustRoom("Amaze", 3)), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Amaze", body.Name)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 403 for a non-admin role", func() {
		s.validator.EXPECT().ValidateToken("viewer-token").Return("viewer", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "viewer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin access required")
	})

	s.Run("error: 409 on duplicate name", func() {
		s.validator.EXPECT().ValidateToken("admin-token").Return("admin", nil)
		s.mockCatalog.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(result.Failure[booking.Room](usecase.ErrRoomAlreadyExists), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room already exists")
	})

	s.Run("error: 400 on validation errors", func() {
		s.validator.EXPECT().ValidateToken("admin-token").Return("admin", nil).Times(2)

		for _, tc := range []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "zero capacity", mutate: testutil.Field("peopleCapacity", 0)},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "admin-token")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}
