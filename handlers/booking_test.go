package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"terminly/calendar"
	"terminly/models"
	"terminly/services/scheduling"
	"terminly/utils"
)

// stubEngine is a canned scheduling.SchedulingService for handler tests.
type stubEngine struct {
	checkErr   error
	bookResult *models.BookingConfirmation
	bookErr    error
	cancelErr  error
	freeSlots  []models.TimeSlot
	listErr    error
	nextSlots  []models.TimeSlot
	nextErr    error
}

var _ scheduling.SchedulingService = (*stubEngine)(nil)

func (s *stubEngine) ListFreeSlots(ctx context.Context, date, notBefore time.Time) ([]models.TimeSlot, error) {
	return s.freeSlots, s.listErr
}

func (s *stubEngine) CheckSlot(ctx context.Context, slot models.TimeSlot) error {
	return s.checkErr
}

func (s *stubEngine) Book(ctx context.Context, slot models.TimeSlot, req models.BookingRequest) (*models.BookingConfirmation, error) {
	return s.bookResult, s.bookErr
}

func (s *stubEngine) Cancel(ctx context.Context, slot models.TimeSlot, matchToken string) error {
	return s.cancelErr
}

func (s *stubEngine) NextFreeSlots(ctx context.Context, count, horizonDays int) ([]models.TimeSlot, error) {
	return s.nextSlots, s.nextErr
}

func (s *stubEngine) SlotAt(date, clock string) (models.TimeSlot, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC)
	if err != nil {
		return models.TimeSlot{}, err
	}
	return models.TimeSlot{Start: start, End: start.Add(time.Hour)}, nil
}

func newTestRouter(engine *stubEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(engine, 14, utils.GetLogger())
	r := gin.New()
	r.POST("/check", h.CheckAvailability)
	r.POST("/book", h.Book)
	r.POST("/cancel", h.Cancel)
	r.POST("/free-slots", h.FreeSlots)
	r.GET("/next-free-slot", h.NextFreeSlot)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckAvailabilityFree(t *testing.T) {
	r := newTestRouter(&stubEngine{})
	w := doJSON(t, r, http.MethodPost, "/check", `{"date":"2026-09-07","time":"10:00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}

	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp["available"] {
		t.Fatal("expected available=true")
	}
}

func TestCheckAvailabilityConflict(t *testing.T) {
	r := newTestRouter(&stubEngine{checkErr: scheduling.ErrSlotConflict})
	w := doJSON(t, r, http.MethodPost, "/check", `{"date":"2026-09-07","time":"10:00"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestCheckAvailabilityMissingTime(t *testing.T) {
	r := newTestRouter(&stubEngine{})
	w := doJSON(t, r, http.MethodPost, "/check", `{"date":"2026-09-07"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBookSuccess(t *testing.T) {
	r := newTestRouter(&stubEngine{
		bookResult: &models.BookingConfirmation{EventID: "ev-1"},
	})
	body := `{"name":"Anna Schmidt","company":"Acme GmbH","phone":"+49301234567","date":"2026-09-07","time":"10:00"}`
	w := doJSON(t, r, http.MethodPost, "/book", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), `"eventId":"ev-1"`) {
		t.Fatalf("body = %s", w.Body)
	}
}

func TestBookConflict(t *testing.T) {
	r := newTestRouter(&stubEngine{bookErr: scheduling.ErrSlotConflict})
	body := `{"name":"Anna","company":"Acme","phone":"1","date":"2026-09-07","time":"10:00"}`
	w := doJSON(t, r, http.MethodPost, "/book", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestBookGatewayFailure(t *testing.T) {
	r := newTestRouter(&stubEngine{
		bookErr: &calendar.GatewayError{Op: "insert", Kind: calendar.KindUnavailable, Err: errors.New("timeout")},
	})
	body := `{"name":"Anna","company":"Acme","phone":"1","date":"2026-09-07","time":"10:00"}`
	w := doJSON(t, r, http.MethodPost, "/book", body)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestCancelNotFound(t *testing.T) {
	r := newTestRouter(&stubEngine{cancelErr: scheduling.ErrAppointmentNotFound})
	w := doJSON(t, r, http.MethodPost, "/cancel", `{"name":"Anna","date":"2026-09-07","time":"10:00"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestFreeSlotsEmptyDay(t *testing.T) {
	r := newTestRouter(&stubEngine{})
	w := doJSON(t, r, http.MethodPost, "/free-slots", `{"date":"2026-09-06"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a closed day", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"freeSlots":[]`) {
		t.Fatalf("body = %s", w.Body)
	}
}

func TestNextFreeSlotExhausted(t *testing.T) {
	r := newTestRouter(&stubEngine{})
	w := doJSON(t, r, http.MethodGet, "/next-free-slot", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
