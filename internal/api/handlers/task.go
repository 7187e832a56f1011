package handlers

import (
	"net/http"

	"entry-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for entry task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new entry task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks handles GET /api/v1/companies/:id/tasks
// @Summary List a company's tasks
// @Tags tasks
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} service.TaskListResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security SessionCookie
// @Router /api/v1/companies/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), userID, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /api/v1/companies/:id/tasks
// @Summary Add a task
// @Description Add a theme to an owned company. The task starts with empty content.
// @Tags tasks
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Company ID"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Task created"
// @Failure 400 {object} ErrorResponse "Invalid company ID or missing theme"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security SessionCookie
// @Router /api/v1/companies/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, companyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /api/v1/tasks/:id
// @Summary Read a task for editing
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} service.TaskDetailResponse "Task and its company"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security SessionCookie
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetForEdit(c.Request.Context(), userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/v1/tasks/:id
// @Summary Edit task content
// @Description Replace the content of an owned task. The theme is not editable.
// @Tags tasks
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Task ID"
// @Param task body service.UpdateTaskContentRequest true "New content"
// @Success 200 {object} service.TaskResponse "Task updated"
// @Failure 400 {object} ErrorResponse "Invalid task ID or body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security SessionCookie
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskContentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.UpdateContent(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/tasks/:id
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} DeletedResponse "Task deleted"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security SessionCookie
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{Deleted: true})
}
