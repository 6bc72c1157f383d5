package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todolist/internal/model"
	"todolist/internal/repository"
)

type ListHandler struct {
	listRepo repository.ListRepositoryInterface
	taskRepo repository.TaskRepositoryInterface
}

func NewListHandler(
	listRepo repository.ListRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
) *ListHandler {
	return &ListHandler{
		listRepo: listRepo,
		taskRepo: taskRepo,
	}
}

// CreateListRequest accepts the priority as raw text; it is stored as
// entered, without numeric coercion or range checks.
type CreateListRequest struct {
	Name     string `json:"name" binding:"required"`
	Priority string `json:"priority" binding:"required"`
}

type ListResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Priority  string `json:"priority"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

// ListOverviewResponse is a list together with the tasks assigned to it.
type ListOverviewResponse struct {
	ListResponse
	Tasks []TaskResponse `json:"tasks"`
}

func newListResponse(list *model.List) ListResponse {
	return ListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		Priority:  list.Priority,
		Color:     PriorityColor(list.Priority),
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
	}
}

// PriorityColor maps a stored priority to a pastel HSL background. Priority
// 10 maps to hue 0 and priority 1 to hue 225; values outside 1..10 still
// produce a color since hue wraps in the HSL model. Unparseable priorities
// are treated as 0.
func PriorityColor(priority string) string {
	p, err := strconv.ParseFloat(priority, 64)
	if err != nil {
		p = 0
	}
	hue := (10 - p) * 25
	return fmt.Sprintf("hsl(%s, 100%%, 85%%)", strconv.FormatFloat(hue, 'f', -1, 64))
}

// GetAll returns the authenticated user's lists
func (h *ListHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lists, err := h.listRepo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve lists"})
		return
	}

	responses := make([]ListResponse, 0, len(lists))
	for i := range lists {
		responses = append(responses, newListResponse(&lists[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// Create adds a new list for the authenticated user
func (h *ListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "List name cannot be empty!"})
		return
	}

	list := &model.List{
		UserID:   userID,
		Name:     req.Name,
		Priority: req.Priority,
	}

	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		return
	}

	c.JSON(http.StatusCreated, newListResponse(list))
}

// Overview returns the user's lists with their assigned tasks grouped under
// them. A task references at most one list, so it appears at most once.
// Tasks with no assignment, or whose list no longer matches, are left out.
func (h *ListHandler) Overview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lists, err := h.listRepo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve lists"})
		return
	}

	tasks, err := h.taskRepo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	tasksByList := make(map[string][]TaskResponse)
	for i := range tasks {
		if tasks[i].ListID == nil {
			continue
		}
		key := tasks[i].ListID.String()
		tasksByList[key] = append(tasksByList[key], newTaskResponse(&tasks[i]))
	}

	responses := make([]ListOverviewResponse, 0, len(lists))
	for i := range lists {
		entry := ListOverviewResponse{
			ListResponse: newListResponse(&lists[i]),
			Tasks:        tasksByList[lists[i].ID.String()],
		}
		if entry.Tasks == nil {
			entry.Tasks = []TaskResponse{}
		}
		responses = append(responses, entry)
	}

	c.JSON(http.StatusOK, responses)
}
