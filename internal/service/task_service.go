package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/errors"
	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/validation"
)

// CreateTaskInput carries the caller-supplied fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

func (in CreateTaskInput) values() map[string]string {
	return map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"status":      in.Status,
		"priority":    in.Priority,
	}
}

// UpdateTaskInput carries a partial update. Empty fields mean "leave
// unchanged"; a field can therefore never be cleared through an update.
type UpdateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

func (in UpdateTaskInput) values() map[string]string {
	return map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"status":      in.Status,
		"priority":    in.Priority,
	}
}

// TaskService handles task operations. Every operation is scoped to the
// owning user; a task owned by someone else is reported as ErrTaskNotFound,
// indistinguishable from a task that does not exist.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*model.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*model.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input UpdateTaskInput) (*model.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// ListTasks returns the owner's tasks matching filter, newest-created first.
// An empty result is valid, not an error. Unknown status or priority filter
// values are passed through and simply match nothing.
func (s *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	tasks, err := s.repo.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// CreateTask validates input, applies defaults and persists a task owned by
// ownerID.
func (s *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*model.Task, error) {
	if err := validation.Evaluate(validation.CreateTaskRules(), input.values()); err != nil {
		return nil, err
	}

	task := &model.Task{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      model.TaskStatusPending,
		Priority:    model.TaskPriorityMedium,
	}
	if input.Status != "" {
		task.Status = model.TaskStatus(input.Status)
	}
	if input.Priority != "" {
		task.Priority = model.TaskPriority(input.Priority)
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// GetTask fetches a single task owned by ownerID.
func (s *taskService) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.repo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// UpdateTask applies a partial update to a task owned by ownerID and returns
// the post-update record. Only non-empty input fields overwrite stored values.
func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input UpdateTaskInput) (*model.Task, error) {
	if err := validation.Evaluate(validation.UpdateTaskRules(), input.values()); err != nil {
		return nil, err
	}

	task, err := s.repo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	if t := strings.TrimSpace(input.Title); t != "" {
		task.Title = t
	}
	if d := strings.TrimSpace(input.Description); d != "" {
		task.Description = d
	}
	if input.Status != "" {
		task.Status = model.TaskStatus(input.Status)
	}
	if input.Priority != "" {
		task.Priority = model.TaskPriority(input.Priority)
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// DeleteTask permanently removes a task owned by ownerID.
func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	task, err := s.repo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	if err := s.repo.Delete(ctx, task); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
