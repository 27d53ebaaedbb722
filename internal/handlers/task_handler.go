package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// TaskHandler handles task-related requests.
type TaskHandler struct {
	taskService services.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService services.TaskServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents the request payload for creating or updating a task
type TaskRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Deadline     string `json:"deadline" binding:"required"`
	Priority     int    `json:"priority" binding:"required,task_priority"`
	Repeatable   bool   `json:"repeatable"`
	RepeatType   int    `json:"repeatabletype" binding:"repeat_type"`
	Participants []uint `json:"participating"`
}

// TaskResponse represents a task in the response
type TaskResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	DateCreation string  `json:"datecreation"`
	Deadline     string  `json:"deadline"`
	Priority     int     `json:"priority"`
	Repeatable   bool    `json:"repeatable"`
	RepeatType   int     `json:"repeatabletype"`
	Participants []uint  `json:"participating"`
	Done         bool    `json:"done"`
	CreatedBy    uint    `json:"created_by"`
	From         *string `json:"from,omitempty"`
}

func newTaskResponse(task *models.Task, creatorName *string) TaskResponse {
	participants := task.Participants
	if participants == nil {
		participants = []uint{}
	}
	return TaskResponse{
		ID:           task.ID,
		Name:         task.Name,
		Description:  task.Description,
		DateCreation: formatDate(task.DateCreation),
		Deadline:     formatDateTime(task.Deadline),
		Priority:     task.Priority,
		Repeatable:   task.Repeatable,
		RepeatType:   task.RepeatType,
		Participants: participants,
		Done:         task.Done,
		CreatedBy:    task.CreatedBy,
		From:         creatorName,
	}
}

// CreateTask handles the creation of a new task for a user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deadline, err := parseDateTime(req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(userID, req.Name, req.Description, deadline, req.Priority, req.Repeatable, req.RepeatType, req.Participants)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task, nil))
}

// GetUserTasks returns a user's task feed with an optional filter mode
func (h *TaskHandler) GetUserTasks(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	feed, err := h.taskService.GetUserTasks(userID, c.Query("filter"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]TaskResponse, 0, len(feed))
	for i := range feed {
		response = append(response, newTaskResponse(&feed[i].Task, &feed[i].CreatorName))
	}
	c.JSON(http.StatusOK, response)
}

// GetTaskByID returns a single task
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.GetTaskByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(&task.Task, &task.CreatorName))
}

// UpdateTask replaces a task's caller-settable fields
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deadline, err := parseDateTime(req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(id, req.Name, req.Description, deadline, req.Priority, req.Repeatable, req.RepeatType, req.Participants)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task, nil))
}

// ToggleTaskDone flips a task's done flag, attributing the change to the
// acting user from the path
func (h *TaskHandler) ToggleTaskDone(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	taskID, err := parsePathID(c, "taskId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.ToggleTaskDone(userID, taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task, nil))
}

// DeleteTask removes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
