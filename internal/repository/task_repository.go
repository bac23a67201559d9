package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

// TaskRepository defines task persistence operations. Every query is scoped
// to an owner; there is no way to reach another user's tasks through it.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error)
	Save(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, task *model.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByOwner lists the owner's tasks matching filter, newest first. The
// owner constraint is applied before any caller-supplied filter and supplied
// filter fields are conjoined; absent fields impose no constraint.
func (r *taskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	if err := taskQuery(r.db.WithContext(ctx), ownerID, filter).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// taskQuery builds the filtered, ordered listing query. The id column breaks
// ties between tasks created in the same second.
func taskQuery(db *gorm.DB, ownerID uuid.UUID, filter model.TaskFilter) *gorm.DB {
	q := db.Where("owner_id = ?", ownerID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	return q.Order("created_at DESC, id")
}

// FindByIDAndOwner returns gorm.ErrRecordNotFound both for a missing task and
// for one owned by a different user.
func (r *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}

// escapeLike escapes LIKE wildcards so search stays pure substring containment.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
