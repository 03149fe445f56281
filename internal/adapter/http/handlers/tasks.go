package handlers

import (
	"errors"
	"net/http"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTasks, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrValidation, apierrors.MsgFailCreateTask, "invalid create payload")
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "invalid create payload")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input.Title, input.Description)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrValidation, apierrors.MsgFailUpdateTask, "invalid status payload")
		return
	}

	status, err := validation.BuildTaskStatus(req)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "invalid status payload")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, status)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task status", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError writes the translated error body for err. Only unexpected
// errors are logged at error level; their detail never reaches the client.
func respondError(c *gin.Context, err error, fallbackKey, logMsg string, fields ...zap.Field) {
	code, msgKey := apierrors.FromDomainError(err, fallbackKey)
	if code == http.StatusInternalServerError {
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	} else if !errors.Is(err, domain.ErrTaskNotFound) {
		zap.L().Debug(logMsg, append(fields, zap.Error(err))...)
	}

	_ = c.Error(err)
	c.JSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}
