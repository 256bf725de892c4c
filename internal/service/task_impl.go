package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// TaskServiceImpl implements domain.TaskService.
type TaskServiceImpl struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskServiceImpl {
	return &TaskServiceImpl{db: db}
}

// ListTasks returns a page of tasks, optionally filtered by status.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, status string, page, pageSize int) ([]model.Task, int64, error) {
	var tasks []model.Task
	var total int64

	offset := (page - 1) * pageSize

	query := s.db.WithContext(ctx).Model(&model.Task{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domain.NewInternalError("failed to count tasks", err)
	}

	if err := query.Order("id ASC").Limit(pageSize).Offset(offset).Find(&tasks).Error; err != nil {
		return nil, 0, domain.NewInternalError("failed to fetch tasks", err)
	}

	return tasks, total, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := s.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("task not found")
		}
		return nil, domain.NewInternalError("failed to fetch task", err)
	}
	return &task, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, task *model.Task) error {
	if task.Status == "" {
		task.Status = model.TaskStatusToDo
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return domain.NewInternalError("failed to create task", err)
	}
	return nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, task *model.Task) error {
	var existing model.Task
	if err := s.db.WithContext(ctx).First(&existing, task.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("task not found")
		}
		return domain.NewInternalError("failed to fetch task", err)
	}

	task.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return domain.NewInternalError("failed to update task", err)
	}
	return nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Task{}, id)
	if result.Error != nil {
		return domain.NewInternalError("failed to delete task", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("task not found")
	}
	return nil
}

var _ domain.TaskService = (*TaskServiceImpl)(nil)
