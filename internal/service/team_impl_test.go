package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

func TestTeamCRUDWithMembers(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	team := &model.Team{Name: "Platform", CreatedByUserID: 1}
	require.NoError(t, svc.CreateTeam(ctx, team))
	require.NotZero(t, team.ID)

	member := &model.TeamMember{UserID: 7}
	require.NoError(t, svc.AddMember(ctx, team.ID, member))
	assert.Equal(t, team.ID, member.TeamID)
	assert.Equal(t, model.TeamRoleMember, member.Role)
	assert.False(t, member.JoinedAt.IsZero())

	fetched, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Members, 1)

	fetched.Description = "owns the build"
	require.NoError(t, svc.UpdateTeam(ctx, fetched))

	updated, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "owns the build", updated.Description)

	require.NoError(t, svc.RemoveMember(ctx, team.ID, 7))
	assert.ErrorIs(t, svc.RemoveMember(ctx, team.ID, 7), domain.ErrNotFound)
}

func TestDeleteTeamRemovesMembers(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	team := &model.Team{Name: "Platform"}
	require.NoError(t, svc.CreateTeam(ctx, team))
	require.NoError(t, svc.AddMember(ctx, team.ID, &model.TeamMember{UserID: 7}))

	require.NoError(t, svc.DeleteTeam(ctx, team.ID))

	var count int64
	require.NoError(t, db.Model(&model.TeamMember{}).Where("team_id = ?", team.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, svc.AddMember(ctx, team.ID, &model.TeamMember{UserID: 8}), domain.ErrNotFound)
}
