package http

import (
	"errors"
	"net/http"

	"workforce_project/internal/apperr"
	"workforce_project/internal/domain"
	"workforce_project/internal/repository"

	"github.com/gin-gonic/gin"
)

type ManagerHandler struct {
	Managers  *repository.ManagerRepository
	Projects  *repository.ProjectRepository
	Groups    *repository.GroupRepository
	Employees *repository.EmployeeRepository
}

func NewManagerHandler(managers *repository.ManagerRepository, projects *repository.ProjectRepository,
	groups *repository.GroupRepository, employees *repository.EmployeeRepository) *ManagerHandler {
	return &ManagerHandler{Managers: managers, Projects: projects, Groups: groups, Employees: employees}
}

// employeeView strips credentials and tokens from employee rows before
// they leave the API.
type employeeView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
	Availability string `json:"availability"`
}

func toEmployeeViews(employees []*domain.Employee) []employeeView {
	views := make([]employeeView, 0, len(employees))
	for _, e := range employees {
		views = append(views, employeeView{
			ID:           e.ID,
			Name:         e.Name,
			Age:          e.Age,
			Email:        e.Email,
			Availability: e.Availability,
		})
	}
	return views
}

func (h *ManagerHandler) CheckRole(c *gin.Context) {
	manager, err := h.Managers.FindByID(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNotManager) {
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"is_manager": false,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"is_manager":       true,
		"handling_project": manager.HandlingProject,
	})
}

func (h *ManagerHandler) CurrentProject(c *gin.Context) {
	project, err := h.Managers.CurrentProject(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNoManagedProject) {
			c.JSON(http.StatusOK, gin.H{
				"success":         true,
				"current_project": nil,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"current_project": project,
	})
}

func (h *ManagerHandler) AvailableProjects(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.Managers.FindByID(ctx, userID(c)); err != nil {
		respondError(c, err)
		return
	}

	projects, err := h.Projects.ListAvailable(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}

type selectProjectRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

func (h *ManagerHandler) SelectProject(c *gin.Context) {
	var req selectProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Project id is required")
		return
	}

	if err := h.Managers.AssignProject(c.Request.Context(), userID(c), req.ProjectID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "You are now registered as the manager of this project",
	})
}

type createGroupRequest struct {
	GroupName string `json:"group_name" binding:"required"`
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// CreateGroup creates a group together with its shift. The shift length
// must match the project's hours-per-shift exactly, the project must still
// be under its shift quota, and both the (day, start, end) triple and the
// group name must be new for the project.
func (h *ManagerHandler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Group name, day, start time and end time are required")
		return
	}
	if !domain.IsWeekday(req.Day) {
		respondValidation(c, "Day must be a weekday name such as Monday")
		return
	}

	ctx := c.Request.Context()

	project, err := h.Managers.CurrentProject(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	minutes, err := domain.ShiftLength(req.StartTime, req.EndTime)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}
	if !domain.MatchesHours(minutes, project.HoursPerShift) {
		respondError(c, apperr.ErrInvalidDuration)
		return
	}

	group, shift, err := h.Groups.CreateWithShift(ctx, repository.CreateGroupParams{
		ProjectID:    project.ID,
		Name:         req.GroupName,
		Day:          req.Day,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ShiftMinutes: minutes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Group \"" + group.Name + "\" created successfully under your project",
		"group": gin.H{
			"id":   group.ID,
			"name": group.Name,
		},
		"shift": gin.H{
			"id":            shift.ID,
			"day":           shift.Day,
			"start_time":    shift.StartTime,
			"end_time":      shift.EndTime,
			"hours_of_work": shift.HoursOfWork,
			"payment":       shift.Payment,
		},
	})
}

func (h *ManagerHandler) AvailableEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.Managers.FindByID(ctx, userID(c)); err != nil {
		respondError(c, err)
		return
	}

	employees, err := h.Employees.ListUnassigned(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   toEmployeeViews(employees),
	})
}

type addEmployeeRequest struct {
	GroupID    string `json:"group_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
}

func (h *ManagerHandler) AddEmployee(c *gin.Context) {
	var req addEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Group id and employee id are required")
		return
	}

	ctx := c.Request.Context()

	project, err := h.Managers.CurrentProject(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Groups.AddEmployee(ctx, project.ID, req.GroupID, req.EmployeeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee added to the group",
	})
}

type groupMembersRequest struct {
	GroupID string `json:"group_id" binding:"required"`
}

func (h *ManagerHandler) GroupMembers(c *gin.Context) {
	var req groupMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Group id is required")
		return
	}

	ctx := c.Request.Context()

	project, err := h.Managers.CurrentProject(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	members, err := h.Groups.Members(ctx, project.ID, req.GroupID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"employees": toEmployeeViews(members),
	})
}

func (h *ManagerHandler) ListGroups(c *gin.Context) {
	ctx := c.Request.Context()

	project, err := h.Managers.CurrentProject(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	groups, err := h.Groups.ListForProject(ctx, project.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(groups) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No groups found, either you haven't created any groups or you're not managing a project.",
			"code":    "not_found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"groups":  groups,
	})
}
