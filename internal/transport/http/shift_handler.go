package http

import (
	"net/http"
	"time"

	"workforce_project/internal/repository"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	Shifts      *repository.ShiftRepository
	Attendances *repository.AttendanceRepository

	// now is swappable for tests.
	now func() time.Time
}

func NewShiftHandler(shifts *repository.ShiftRepository, attendances *repository.AttendanceRepository) *ShiftHandler {
	return &ShiftHandler{Shifts: shifts, Attendances: attendances, now: time.Now}
}

func (h *ShiftHandler) Today(c *gin.Context) {
	now := h.now()
	shifts, err := h.Shifts.TodayForEmployee(c.Request.Context(), userID(c),
		now.Weekday().String(), now.Format("2006-01-02"))
	if err != nil {
		respondError(c, err)
		return
	}
	if shifts == nil {
		shifts = []*repository.TodayShift{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"shifts":  shifts,
	})
}

func (h *ShiftHandler) Upcoming(c *gin.Context) {
	now := h.now()
	shifts, err := h.Shifts.UpcomingForEmployee(c.Request.Context(), userID(c),
		now.Weekday().String(), now.Format("15:04"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"shifts":  shifts,
	})
}

type shiftRequest struct {
	ShiftID string `json:"shift_id" binding:"required"`
}

func (h *ShiftHandler) CheckIn(c *gin.Context) {
	var req shiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Shift id is required")
		return
	}

	newPay, err := h.Attendances.CheckIn(c.Request.Context(), userID(c), req.ShiftID,
		h.now().Format("2006-01-02"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Check-in successful",
		"new_pay": newPay,
	})
}

func (h *ShiftHandler) CheckOut(c *gin.Context) {
	var req shiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Shift id is required")
		return
	}

	totalPay, err := h.Attendances.CheckOut(c.Request.Context(), userID(c), req.ShiftID,
		h.now().Format("2006-01-02"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Check-out successful",
		"total_pay": totalPay,
	})
}
