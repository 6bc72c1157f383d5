package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"todolist/internal/handler"
	"todolist/internal/middleware"
	"todolist/internal/model"
	"todolist/internal/repository"
)

func setupTaskTest(userID uuid.UUID) (*gin.Engine, *MockTaskRepository, *MockListRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	taskRepo := new(MockTaskRepository)
	listRepo := new(MockListRepository)
	taskHandler := handler.NewTaskHandler(taskRepo, listRepo)

	// Simulate an authenticated session
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
	})

	r.GET("/tasks", taskHandler.GetAll)
	r.POST("/tasks", taskHandler.Create)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.POST("/tasks/:id/toggle", taskHandler.Toggle)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/tasks/:id/assign", taskHandler.AssignList)

	return r, taskRepo, listRepo
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateTask_Success(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, _ := setupTaskTest(userID)

	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	resp := doJSON(router, "POST", "/tasks", handler.TaskRequest{
		Title:       "T",
		Description: "D",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.TaskResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "T", response.Title)
	assert.Equal(t, "D", response.Description)
	assert.False(t, response.Completed)
	assert.Nil(t, response.ListID)

	// The stored task belongs to the session user
	created := taskRepo.Calls[0].Arguments.Get(1).(*model.Task)
	assert.Equal(t, userID, created.UserID)

	taskRepo.AssertExpectations(t)
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	router, taskRepo, _ := setupTaskTest(uuid.New())

	resp := doJSON(router, "POST", "/tasks", handler.TaskRequest{
		Title:       "",
		Description: "D",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Both fields are required!")
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTask_EmptyDescription(t *testing.T) {
	router, taskRepo, _ := setupTaskTest(uuid.New())

	resp := doJSON(router, "POST", "/tasks", handler.TaskRequest{
		Title:       "T",
		Description: "",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetAllTasks(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, _ := setupTaskTest(userID)

	tasks := []model.Task{
		{ID: uuid.New(), UserID: userID, Title: "first", Description: "a"},
		{ID: uuid.New(), UserID: userID, Title: "second", Description: "b", Completed: true},
	}
	taskRepo.On("GetByUser", mock.Anything, userID).Return(tasks, nil)

	resp := doJSON(router, "GET", "/tasks", nil)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response []handler.TaskResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "first", response[0].Title)
	assert.True(t, response[1].Completed)
}

func TestToggleTask_FlipsCompletion(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, _ := setupTaskTest(userID)

	taskID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "T", Description: "D", Completed: false}
	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	taskRepo.On("UpdateFields", mock.Anything, taskID, map[string]interface{}{"completed": true}).Return(nil)

	resp := doJSON(router, "POST", "/tasks/"+taskID.String()+"/toggle", nil)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.TaskResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Completed)
	// Only the completion flag is written
	taskRepo.AssertExpectations(t)
}

func TestToggleTask_BackToUncompleted(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, _ := setupTaskTest(userID)

	taskID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "T", Description: "D", Completed: true}
	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	taskRepo.On("UpdateFields", mock.Anything, taskID, map[string]interface{}{"completed": false}).Return(nil)

	resp := doJSON(router, "POST", "/tasks/"+taskID.String()+"/toggle", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	taskRepo.AssertExpectations(t)
}

func TestUpdateTask_Success(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, _ := setupTaskTest(userID)

	taskID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "old", Description: "old"}
	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	taskRepo.On("UpdateFields", mock.Anything, taskID, map[string]interface{}{
		"title":       "new title",
		"description": "new description",
	}).Return(nil)

	resp := doJSON(router, "PUT", "/tasks/"+taskID.String(), handler.TaskRequest{
		Title:       "new title",
		Description: "new description",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.TaskResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "new title", response.Title)
	taskRepo.AssertExpectations(t)
}

func TestUpdateTask_NotOwned(t *testing.T) {
	router, taskRepo, _ := setupTaskTest(uuid.New())

	taskID := uuid.New()
	task := &model.Task{ID: taskID, UserID: uuid.New(), Title: "T", Description: "D"}
	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)

	resp := doJSON(router, "PUT", "/tasks/"+taskID.String(), handler.TaskRequest{
		Title:       "new",
		Description: "new",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	taskRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTask_Success(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, _ := setupTaskTest(userID)

	taskID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "T", Description: "D"}
	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	taskRepo.On("Delete", mock.Anything, taskID).Return(nil)

	resp := doJSON(router, "DELETE", "/tasks/"+taskID.String(), nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	taskRepo.AssertExpectations(t)
}

func TestDeleteTask_NotFound(t *testing.T) {
	router, taskRepo, _ := setupTaskTest(uuid.New())

	taskID := uuid.New()
	taskRepo.On("GetByID", mock.Anything, taskID).Return(nil, repository.ErrTaskNotFound)

	resp := doJSON(router, "DELETE", "/tasks/"+taskID.String(), nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Task not found")
	taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAssignTask_Success(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, listRepo := setupTaskTest(userID)

	taskID := uuid.New()
	listID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "T", Description: "D"}
	list := &model.List{ID: listID, UserID: userID, Name: "groceries", Priority: "3"}

	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	listRepo.On("GetByID", mock.Anything, listID).Return(list, nil)
	taskRepo.On("UpdateFields", mock.Anything, taskID, map[string]interface{}{"list_id": listID}).Return(nil)

	resp := doJSON(router, "POST", "/tasks/"+taskID.String()+"/assign", handler.TaskAssignRequest{
		ListID: listID.String(),
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.TaskResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotNil(t, response.ListID)
	assert.Equal(t, listID.String(), *response.ListID)
	taskRepo.AssertExpectations(t)
	listRepo.AssertExpectations(t)
}

func TestAssignTask_ListNotFound(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, listRepo := setupTaskTest(userID)

	taskID := uuid.New()
	listID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "T", Description: "D"}

	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	listRepo.On("GetByID", mock.Anything, listID).Return(nil, repository.ErrListNotFound)

	resp := doJSON(router, "POST", "/tasks/"+taskID.String()+"/assign", handler.TaskAssignRequest{
		ListID: listID.String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "List not found")
	taskRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignTask_ListOwnedBySomeoneElse(t *testing.T) {
	userID := uuid.New()
	router, taskRepo, listRepo := setupTaskTest(userID)

	taskID := uuid.New()
	listID := uuid.New()
	task := &model.Task{ID: taskID, UserID: userID, Title: "T", Description: "D"}
	list := &model.List{ID: listID, UserID: uuid.New(), Name: "other", Priority: "1"}

	taskRepo.On("GetByID", mock.Anything, taskID).Return(task, nil)
	listRepo.On("GetByID", mock.Anything, listID).Return(list, nil)

	resp := doJSON(router, "POST", "/tasks/"+taskID.String()+"/assign", handler.TaskAssignRequest{
		ListID: listID.String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	taskRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}
