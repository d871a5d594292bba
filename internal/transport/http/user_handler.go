package http

import (
	"math"
	"net/http"

	"workforce_project/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Employees *repository.EmployeeRepository
	Projects  *repository.ProjectRepository
	Shifts    *repository.ShiftRepository
}

func NewUserHandler(employees *repository.EmployeeRepository, projects *repository.ProjectRepository, shifts *repository.ShiftRepository) *UserHandler {
	return &UserHandler{Employees: employees, Projects: projects, Shifts: shifts}
}

func (h *UserHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	employee, err := h.Employees.FindByID(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var currentProject gin.H
	project, err := h.Projects.CurrentForEmployee(ctx, employee.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if project != nil {
		currentProject = gin.H{"id": project.ID, "name": project.Name}
	}

	residence := employee.ResidencePoint
	if residence == "" {
		residence = "Not set"
	}
	availability := employee.Availability
	if availability == "" {
		availability = "Not set"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": gin.H{
			"id":             employee.ID,
			"name":           employee.Name,
			"age":            employee.Age,
			"email":          employee.Email,
			"residence":      residence,
			"availability":   availability,
			"currentProject": currentProject,
		},
	})
}

// Pay aggregates every shift linked through the employee's groups, whether
// or not the employee checked in. The result is tentative pay, not earned
// pay.
func (h *UserHandler) Pay(c *gin.Context) {
	shifts, err := h.Shifts.LinkedShifts(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var totalPay, totalHours float64
	for _, shift := range shifts {
		totalPay += shift.Payment
		totalHours += shift.HoursOfWork
	}

	var averageHourly float64
	if totalHours > 0 {
		averageHourly = totalPay / totalHours
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"pay": gin.H{
			"tentativePay":     round2(totalPay),
			"hoursWorked":      round2(totalHours),
			"averageHourlyPay": round2(averageHourly),
			"totalShifts":      len(shifts),
			"shifts":           shifts,
		},
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
