package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todolist/internal/middleware"
	"todolist/internal/model"
	"todolist/internal/repository"
)

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
	listRepo repository.ListRepositoryInterface
}

func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	listRepo repository.ListRepositoryInterface,
) *TaskHandler {
	return &TaskHandler{
		taskRepo: taskRepo,
		listRepo: listRepo,
	}
}

// TaskRequest is used for both create and edit; both fields are mandatory.
type TaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// TaskAssignRequest carries the target list for a task assignment.
type TaskAssignRequest struct {
	ListID string `json:"list_id" binding:"required,uuid"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	ListID      *string `json:"list_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func newTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
	if task.ListID != nil {
		listID := task.ListID.String()
		resp.ListID = &listID
	}
	return resp
}

// currentUserID extracts the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return userID, true
}

// GetAll returns every task owned by the authenticated user
func (h *TaskHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskRepo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, newTaskResponse(&tasks[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// Create adds a new task for the authenticated user. New tasks always start
// uncompleted and unassigned.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both fields are required!"})
		return
	}

	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// getOwnedTask fetches the task and verifies it belongs to the caller. A
// task owned by someone else is reported as not found rather than forbidden.
func (h *TaskHandler) getOwnedTask(c *gin.Context, userID uuid.UUID) *model.Task {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return nil
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return nil
	}

	if task.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return nil
	}
	return task
}

// Update edits a task's title and description
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both fields are required!"})
		return
	}

	task := h.getOwnedTask(c, userID)
	if task == nil {
		return
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	}
	if err := h.taskRepo.UpdateFields(c.Request.Context(), task.ID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Toggle flips the completion flag of a single task
func (h *TaskHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task := h.getOwnedTask(c, userID)
	if task == nil {
		return
	}

	completed := !task.Completed
	fields := map[string]interface{}{"completed": completed}
	if err := h.taskRepo.UpdateFields(c.Request.Context(), task.ID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle task completion"})
		return
	}

	task.Completed = completed
	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task := h.getOwnedTask(c, userID)
	if task == nil {
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), task.ID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// AssignList attaches a task to one of the caller's lists. Both ends of the
// assignment are checked for existence and ownership before the write.
func (h *TaskHandler) AssignList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TaskAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task := h.getOwnedTask(c, userID)
	if task == nil {
		return
	}

	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	list, err := h.listRepo.GetByID(c.Request.Context(), listID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve list"})
		}
		return
	}
	if list.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	fields := map[string]interface{}{"list_id": listID}
	if err := h.taskRepo.UpdateFields(c.Request.Context(), task.ID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign task to list"})
		return
	}

	task.ListID = &listID
	c.JSON(http.StatusOK, newTaskResponse(task))
}
