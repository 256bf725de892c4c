package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// TeamServiceImpl implements domain.TeamService.
type TeamServiceImpl struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamServiceImpl {
	return &TeamServiceImpl{db: db}
}

func (s *TeamServiceImpl) ListTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := s.db.WithContext(ctx).Preload("Members").Order("id ASC").Find(&teams).Error; err != nil {
		return nil, domain.NewInternalError("failed to fetch teams", err)
	}
	return teams, nil
}

func (s *TeamServiceImpl) GetTeam(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	if err := s.db.WithContext(ctx).Preload("Members").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("team not found")
		}
		return nil, domain.NewInternalError("failed to fetch team", err)
	}
	return &team, nil
}

func (s *TeamServiceImpl) CreateTeam(ctx context.Context, team *model.Team) error {
	if err := s.db.WithContext(ctx).Create(team).Error; err != nil {
		return domain.NewInternalError("failed to create team", err)
	}
	return nil
}

func (s *TeamServiceImpl) UpdateTeam(ctx context.Context, team *model.Team) error {
	var existing model.Team
	if err := s.db.WithContext(ctx).First(&existing, team.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("team not found")
		}
		return domain.NewInternalError("failed to fetch team", err)
	}

	team.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Omit("Members").Save(team).Error; err != nil {
		return domain.NewInternalError("failed to update team", err)
	}
	return nil
}

// DeleteTeam removes a team and its memberships in one transaction.
func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Team{}, id)
		if result.Error != nil {
			return domain.NewInternalError("failed to delete team", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("team not found")
		}
		if err := tx.Where("team_id = ?", id).Delete(&model.TeamMember{}).Error; err != nil {
			return domain.NewInternalError("failed to delete team members", err)
		}
		return nil
	})
}

func (s *TeamServiceImpl) AddMember(ctx context.Context, teamID uint, member *model.TeamMember) error {
	var team model.Team
	if err := s.db.WithContext(ctx).First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("team not found")
		}
		return domain.NewInternalError("failed to fetch team", err)
	}

	member.TeamID = teamID
	member.JoinedAt = time.Now().UTC()
	if member.Role == "" {
		member.Role = model.TeamRoleMember
	}
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return domain.NewInternalError("failed to add team member", err)
	}
	return nil
}

func (s *TeamServiceImpl) RemoveMember(ctx context.Context, teamID, userID uint) error {
	result := s.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&model.TeamMember{})
	if result.Error != nil {
		return domain.NewInternalError("failed to remove team member", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("team member not found")
	}
	return nil
}

var _ domain.TeamService = (*TeamServiceImpl)(nil)
