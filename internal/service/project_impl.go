package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"taskly.com/internal/constants"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// ProjectServiceImpl implements domain.ProjectService. The Redis client is
// optional; when absent, stats are computed from the database on every call.
type ProjectServiceImpl struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewProjectService(db *gorm.DB, rdb *redis.Client) *ProjectServiceImpl {
	return &ProjectServiceImpl{db: db, rdb: rdb}
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Preload("Members").Order("id ASC").Find(&projects).Error; err != nil {
		return nil, domain.NewInternalError("failed to fetch projects", err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).Preload("Members").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("project not found")
		}
		return nil, domain.NewInternalError("failed to fetch project", err)
	}
	return &project, nil
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, project *model.Project) error {
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return domain.NewInternalError("failed to create project", err)
	}
	return nil
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, project *model.Project) error {
	var existing model.Project
	if err := s.db.WithContext(ctx).First(&existing, project.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("project not found")
		}
		return domain.NewInternalError("failed to fetch project", err)
	}

	project.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Omit("Members").Save(project).Error; err != nil {
		return domain.NewInternalError("failed to update project", err)
	}
	s.invalidateStats(ctx, project.ID)
	return nil
}

// DeleteProject removes a project, its memberships and the cached stats.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Project{}, id)
		if result.Error != nil {
			return domain.NewInternalError("failed to delete project", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("project not found")
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectMember{}).Error; err != nil {
			return domain.NewInternalError("failed to delete project members", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidateStats(ctx, id)
	return nil
}

// GetStats aggregates task counts for the project, cached in Redis. Cache
// failures fall through to the database.
func (s *ProjectServiceImpl) GetStats(ctx context.Context, id uint) (*model.ProjectStats, error) {
	key := statsKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var stats model.ProjectStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	var project model.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("project not found")
		}
		return nil, domain.NewInternalError("failed to fetch project", err)
	}

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := s.db.WithContext(ctx).Model(&model.Task{}).
		Select("status, count(*) as count").
		Where("project_id = ?", id).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, domain.NewInternalError("failed to aggregate tasks", err)
	}

	stats := model.ProjectStats{
		ProjectID: id,
		ByStatus:  make(map[string]int64, len(rows)),
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
		stats.Total += r.Count
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(&stats); err == nil {
			if err := s.rdb.Set(ctx, key, payload, constants.ProjectStatsTTL).Err(); err != nil {
				log.Printf("ProjectService: failed to cache stats for project %d: %v", id, err)
			}
		}
	}

	return &stats, nil
}

func (s *ProjectServiceImpl) AddMember(ctx context.Context, projectID, userID uint) error {
	var project model.Project
	if err := s.db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("project not found")
		}
		return domain.NewInternalError("failed to fetch project", err)
	}

	member := model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return domain.NewInternalError("failed to add project member", err)
	}
	return nil
}

func (s *ProjectServiceImpl) RemoveMember(ctx context.Context, projectID, userID uint) error {
	result := s.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{})
	if result.Error != nil {
		return domain.NewInternalError("failed to remove project member", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("project member not found")
	}
	return nil
}

func (s *ProjectServiceImpl) invalidateStats(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsKey(id)).Err(); err != nil {
		log.Printf("ProjectService: failed to invalidate stats for project %d: %v", id, err)
	}
}

func statsKey(id uint) string {
	return fmt.Sprintf("%s%d", constants.RedisKeyProjectStatsPrefix, id)
}

var _ domain.ProjectService = (*ProjectServiceImpl)(nil)
