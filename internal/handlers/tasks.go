package handlers

import (
	"errors"
	"net/http"

	"stepup-tasks/internal/middleware"
	"stepup-tasks/internal/models"
	"stepup-tasks/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskHandler struct {
	db          *mongo.Database
	taskService services.TaskService
}

func NewTaskHandler(db *mongo.Database, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService}
}

// currentUserID reads the user id the auth guard stored on the context.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User not authenticated",
		})
		return "", false
	}
	return userID, true
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByUser(c.Request.Context(), h.db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error retrieving tasks: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title is required.",
		})
		return
	}

	if input.Status == "" {
		input.Status = models.DefaultTaskStatus
	}

	task := models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	created, err := h.taskService.CreateTask(c.Request.Context(), h.db, task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating task: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully.",
		"task":    created,
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid task ID format.",
		})
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]any{}
	}

	// Only title, description and status are writable; every other key is
	// silently ignored, as are the id and owner.
	fields := bson.M{}
	for _, key := range []string{"title", "description", "status"} {
		if value, present := body[key]; present {
			fields[key] = value
		}
	}

	err = h.taskService.UpdateTask(c.Request.Context(), h.db, id, userID, fields)
	if err != nil {
		handleTaskError(c, err, "Error updating task: ")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully.",
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid task ID format.",
		})
		return
	}

	err = h.taskService.DeleteTask(c.Request.Context(), h.db, id, userID)
	if err != nil {
		handleTaskError(c, err, "Error deleting task: ")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully.",
	})
}

// handleTaskError maps a nonexistent task and a task owned by someone else
// to the same 404, so callers cannot probe other users' task ids.
func handleTaskError(c *gin.Context, err error, prefix string) {
	if errors.Is(err, models.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Task not found or unauthorized.",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": prefix + err.Error(),
	})
}
