package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terminly/models"
	"terminly/services/scheduling"
	"terminly/utils"
)

// BookingHandler exposes the scheduling engine over HTTP. Request parsing and
// response shaping only; all availability and booking decisions live in the
// engine.
type BookingHandler struct {
	engine      scheduling.SchedulingService
	horizonDays int
	logger      *zap.Logger
}

func NewBookingHandler(engine scheduling.SchedulingService, horizonDays int, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{engine: engine, horizonDays: horizonDays, logger: logger}
}

// CheckAvailability reports whether the requested slot can be booked.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Time == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "time is required")
		return
	}

	slot, err := h.engine.SlotAt(req.Date, req.Time)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date or time", err.Error())
		return
	}

	if err := h.engine.CheckSlot(c.Request.Context(), slot); err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

// Book creates the appointment, re-checking availability first.
func (h *BookingHandler) Book(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.engine.SlotAt(req.Date, req.Time)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date or time", err.Error())
		return
	}

	confirmation, err := h.engine.Book(c.Request.Context(), slot, req)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booked": true, "eventId": confirmation.EventID, "slot": confirmation.Slot})
}

// Cancel deletes the appointment matching the caller's name in the slot's window.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req models.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.engine.SlotAt(req.Date, req.Time)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date or time", err.Error())
		return
	}

	if err := h.engine.Cancel(c.Request.Context(), slot, req.Name); err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// FreeSlots lists the free slots of a day. A closed or fully booked day
// yields an empty list, not an error.
func (h *BookingHandler) FreeSlots(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	slots, err := h.engine.ListFreeSlots(c.Request.Context(), date, time.Time{})
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"freeSlots": formatSlots(slots)})
}

// NextFreeSlot returns the soonest bookable slot within the search horizon.
func (h *BookingHandler) NextFreeSlot(c *gin.Context) {
	slots, err := h.engine.NextFreeSlots(c.Request.Context(), 1, h.horizonDays)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	if len(slots) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no free slot found", "no availability within the search horizon")
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextFreeSlot": slots[0].Start.Format(time.RFC3339)})
}

// NextFreeSlots returns up to ?count upcoming free slots.
func (h *BookingHandler) NextFreeSlots(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "3"))
	if err != nil || count < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid count", c.Query("count"))
		return
	}

	slots, err := h.engine.NextFreeSlots(c.Request.Context(), count, h.horizonDays)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"freeSlots": formatSlots(slots)})
}

func (h *BookingHandler) respondSchedulingError(c *gin.Context, err error) {
	var de *scheduling.DomainError
	if errors.As(err, &de) {
		status := http.StatusConflict
		if errors.Is(err, scheduling.ErrAppointmentNotFound) {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, de.Message, de.Code)
		return
	}

	h.logger.Error("calendar gateway failure", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "calendar unavailable", "try again later")
}

func formatSlots(slots []models.TimeSlot) []string {
	formatted := make([]string, 0, len(slots))
	for _, s := range slots {
		formatted = append(formatted, s.Start.Format(time.RFC3339))
	}
	return formatted
}
