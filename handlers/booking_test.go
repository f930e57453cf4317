package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/models"
)

type stubBookingRepo struct {
	bookings []models.Booking
	joined   []models.BookingWithCourt

	gotCourtID int
	gotDates   []string
	deleted    []string
}

func (s *stubBookingRepo) Create(*models.Booking) error { return nil }

func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i], nil
		}
	}
	return nil, fmt.Errorf("booking with id %s not found", id)
}

func (s *stubBookingRepo) GetAll() ([]models.BookingWithCourt, error) { return s.joined, nil }

func (s *stubBookingRepo) GetByCourtAndDates(courtID int, dates []string) ([]models.Booking, error) {
	s.gotCourtID = courtID
	s.gotDates = dates
	return s.bookings, nil
}

func (s *stubBookingRepo) SetApproval(id string, approved bool) error { return nil }

func (s *stubBookingRepo) Delete(id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func listBookingsRouter(repo *stubBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings", ListBookingsHandler(repo))
	return r
}

func TestListBookingsFilteredFeed(t *testing.T) {
	repo := &stubBookingRepo{
		bookings: []models.Booking{{ID: "b-1", CourtID: 2, Date: "2024-06-10"}},
	}
	r := listBookingsRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/bookings?courtId=2&dates=2024-06-09,2024-06-10,2024-06-11", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, repo.gotCourtID)
	assert.Equal(t, []string{"2024-06-09", "2024-06-10", "2024-06-11"}, repo.gotDates)
	assert.Contains(t, w.Body.String(), "b-1")
}

func TestListBookingsUnfilteredUsesJoinedFeed(t *testing.T) {
	repo := &stubBookingRepo{
		joined: []models.BookingWithCourt{{
			Booking:   models.Booking{ID: "b-2"},
			CourtName: "Court A",
		}},
	}
	r := listBookingsRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Court A")
	// The filtered path was never taken.
	assert.Zero(t, repo.gotCourtID)
}

func TestListBookingsRejectsBadFilters(t *testing.T) {
	repo := &stubBookingRepo{}
	r := listBookingsRouter(repo)

	for _, url := range []string{
		"/api/bookings?courtId=abc&dates=2024-06-10",
		"/api/bookings?courtId=0&dates=2024-06-10",
		"/api/bookings?dates=2024-06-10",
		"/api/bookings?courtId=2",
		"/api/bookings?courtId=2&dates=,,",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestDeleteBookingLooksUpRecordFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubBookingRepo{
		bookings: []models.Booking{{ID: "b-1", CustomerName: "Ravi"}},
	}
	r := gin.New()
	r.DELETE("/api/admin/bookings/:id", DeleteBookingHandler(repo))

	// Unknown ID: 404 and nothing deleted.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, repo.deleted)

	// Known ID: deleted and echoed back.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/b-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"b-1"}, repo.deleted)
	assert.Contains(t, w.Body.String(), "Ravi")
}
