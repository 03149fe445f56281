package validation

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

// BuildCreateTaskInput trims the payload and rejects a blank title.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	if req.Title == nil {
		return domain.CreateTaskInput{}, domain.ErrEmptyTitle
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	return domain.NewTask(*req.Title, description)
}

// BuildTaskStatus parses the requested status against the closed status set.
func BuildTaskStatus(req dto.UpdateTaskStatusRequest) (domain.TaskStatus, error) {
	if req.Status == nil {
		return "", domain.ErrInvalidStatus
	}
	return domain.ParseTaskStatus(*req.Status)
}
