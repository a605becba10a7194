//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	reqdto "makespace/internal/handler/dto/request"
	"makespace/internal/handler/dto/response"
	"makespace/tests/common/authtest"
	"makespace/tests/common/httptest"
	"makespace/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL       = "/api/rooms"
	bufferTimesURL = "/api/buffer-times"
)

type CatalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) TestRooms() {
	s.Run("listing is public and keeps catalog order", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body response.RoomsListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Rooms, 3)
		require.Equal(t, "Amaze", body.Rooms[0].Name)
		require.Equal(t, "Beauty", body.Rooms[1].Name)
		require.Equal(t, "Creativity", body.Rooms[2].Name)
	})

	s.Run("creation requires the admin token", func() {
		t := s.T()
		reqBody := reqdto.CreateRoomRequest{Name: "Dream", PeopleCapacity: 5}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		token := authtest.LoginAdmin(t, s.Router)
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, cw.Code, "room creation failed: %s", cw.Body.String())

		// Duplicate names conflict.
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, dw.Code)

		// The new room lands at the end of the catalog.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		var listed response.RoomsListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Equal(t, "Dream", listed.Rooms[len(listed.Rooms)-1].Name)
	})
}

func (s *CatalogSuite) TestBufferTimes() {
	s.Run("admin manages blackout windows end to end", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		reqBody := reqdto.CreateBufferTimeRequest{Start: "09:00", End: "09:45"}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bufferTimesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, cw.Code, "buffer creation failed: %s", cw.Body.String())

		var created response.BufferTimeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &created))
		require.Equal(t, "09:00", created.Start)

		// Duplicate windows conflict.
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, bufferTimesURL, reqBody, token)
		require.Equal(t, http.StatusConflict, dw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bufferTimesURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var listed response.BufferTimesListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed.BufferTimes, 1)

		rw := httptest.PerformRequest(t, s.Router, http.MethodDelete, bufferTimesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, rw.Code)

		// Removing twice is a 404.
		rw2 := httptest.PerformRequest(t, s.Router, http.MethodDelete, bufferTimesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNotFound, rw2.Code)
	})

	s.Run("the whole surface is admin only", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bufferTimesURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
