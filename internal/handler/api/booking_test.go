//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"makespace/internal/domain/booking"
	"makespace/internal/handler/api"
	resdto "makespace/internal/handler/dto/response"
	"makespace/internal/infra"
	"makespace/internal/pkg/clock"
	"makespace/internal/pkg/result"
	"makespace/internal/usecase"
	"makespace/tests/common/builder"
	"makespace/tests/common/httptest"
	"makespace/tests/common/testutil"
	usecasemock "makespace/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	clock       *clock.MockClock
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2020, 12, 10, 14, 30, 0, 0, time.UTC))
	s.handler = api.NewBookingHandler(s.mockUseCase, s.clock)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the booked room", func() {
		booked, err := builder.NewBookingBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockUseCase.EXPECT().BookNextAvailableRoom(gomock.Any(), gomock.Any(), gomock.Any(), reqBody.NumPeople).
			Return(result.Success(booked), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(booked.ID(), body.ID)
		s.Equal("2020-12-10", body.Date)
		s.Equal("10:00", body.Start)
		s.Equal("11:00", body.End)
		s.Equal("Green Room", body.Room.Name)
	})

	s.Run("error: 409 Conflict when no room is available", func() {
		s.mockUseCase.EXPECT().BookNextAvailableRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result.Failure[*booking.Booking](usecase.ErrNoRoomAvailable), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No room available")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing start", mutate: testutil.Field("start", nil)},
			{name: "missing end", mutate: testutil.Field("end", nil)},
			{name: "missing numPeople", mutate: testutil.Field("numPeople", nil)},
			{name: "zero numPeople", mutate: testutil.Field("numPeople", 0)},
			{name: "negative numPeople", mutate: testutil.Field("numPeople", -1)},
			{name: "bad date format", mutate: testutil.Field("date", "10/12/2020")},
			{name: "bad time format", mutate: testutil.Field("start", "10am")},
			{name: "off-grid start", mutate: testutil.Field("start", "10:10")},
			{name: "end before start", mutate: testutil.Field("end", "09:00")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 500 on infrastructure failure", func() {
		s.mockUseCase.EXPECT().BookNextAvailableRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result.Result[*booking.Booking]{}, infra.WrapRepoErr("boom", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: defaults to the current date", func() {
		s.mockUseCase.EXPECT().
			GetAllBookingsByDate(gomock.Any(), s.clock.Now()).
			Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var body resdto.BookingsListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Bookings)
	})

	s.Run("success: explicit date", func() {
		date := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
		stored := builder.NewBookingBuilder().WithDate(date).BuildReconstructed()
		s.mockUseCase.EXPECT().
			GetAllBookingsByDate(gomock.Any(), date).
			Return([]booking.Booking{*stored}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2021-01-02", nil, "")

		var body resdto.BookingsListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		s.Equal("2021-01-02", body.Bookings[0].Date)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=02-01-2021", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

// ================================================================================
// TestGet / TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the booking", func() {
		id := uuid.New()
		stored := builder.NewBookingBuilder().WithID(id).BuildReconstructed()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), id).
			Return(result.Success(stored), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), id).
			Return(result.Failure[*booking.Booking](usecase.ErrBookingNotFound), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().DeleteBooking(gomock.Any(), id).
			Return(result.Success(result.Unit{}), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().DeleteBooking(gomock.Any(), id).
			Return(result.Failure[result.Unit](usecase.ErrBookingNotFound), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}
