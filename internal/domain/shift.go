package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Shift is a scheduled work interval belonging to a project. Times are
// clock times in "HH:MM" form; HoursOfWork and Payment are computed at
// creation and never recomputed.
type Shift struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID   string    `gorm:"index" json:"project_id"`
	Day         string    `json:"day"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	HoursOfWork float64   `json:"hours_of_work"`
	Payment     float64   `json:"payment"`
	CreatedAt   time.Time `json:"-"`
}

// Attendance marks that an employee checked in to a shift on a date.
// There is no checked-out state; checkout is a confirmation read.
type Attendance struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	EmployeeID  string    `gorm:"index:idx_attendance_once,unique" json:"employee_id"`
	ShiftID     string    `gorm:"index:idx_attendance_once,unique" json:"shift_id"`
	DateOfShift string    `gorm:"index:idx_attendance_once,unique" json:"date_of_shift"`
	CreatedAt   time.Time `json:"-"`
}

var weekdays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

func IsWeekday(day string) bool { return weekdays[day] }

// ParseClock converts "HH:MM" (or "HH:MM:SS") to minutes past midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}

// ShiftMinutes returns the shift length in minutes. A shift whose end does
// not come after its start crosses midnight, so a day is added before
// differencing. This wraparound is policy, not an error.
func ShiftMinutes(start, end int) int {
	d := end - start
	if d <= 0 {
		d += 24 * 60
	}
	return d
}

// ShiftLength computes the length in minutes of a shift given clock-time
// strings, applying the midnight wraparound.
func ShiftLength(startTime, endTime string) (int, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	return ShiftMinutes(start, end), nil
}

// MatchesHours reports whether a shift length in minutes equals the
// project's configured hours-per-shift. Comparison happens at minute
// precision to avoid float drift.
func MatchesHours(minutes int, hoursPerShift float64) bool {
	return minutes == int(hoursPerShift*60+0.5)
}

// ShiftPayment is the total payment for one shift.
func ShiftPayment(payPerHour float64, minutes int) float64 {
	return payPerHour * float64(minutes) / 60
}
