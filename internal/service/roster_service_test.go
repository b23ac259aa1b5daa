package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository/postgres"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
	"github.com/vitorhpaes/futebasssss-sub000/internal/testutil"
)

func TestRosterService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	rosterService := service.NewRosterService(repos.PlayerSession, repos.Session, repos.Team, repos.User)
	ctx := context.Background()

	t.Run("ConfirmAttendance_CreatesSingleRow", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		ps, err := rosterService.ConfirmAttendance(ctx, session.ID, user.ID, true)
		require.NoError(t, err)
		assert.True(t, ps.Confirmed)
		assert.True(t, ps.WillPlay)

		// Confirming again updates the same row instead of creating a second one
		again, err := rosterService.ConfirmAttendance(ctx, session.ID, user.ID, false)
		require.NoError(t, err)
		assert.Equal(t, ps.ID, again.ID)
		assert.True(t, again.Confirmed)
		assert.False(t, again.WillPlay)

		var count int64
		err = testDB.DB.Model(&domain.PlayerSession{}).
			Where("user_id = ? AND session_id = ?", user.ID, session.ID).
			Count(&count).Error
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("ConfirmAttendance_SessionNotFound", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		_, err := rosterService.ConfirmAttendance(ctx, uuid.New(), user.ID, true)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("ConfirmAttendance_FinalizedSession", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().
			WithStatus(domain.SessionStatusCompleted).
			Build(t, testDB.DB)

		_, err := rosterService.ConfirmAttendance(ctx, session.ID, user.ID, true)
		assert.ErrorIs(t, err, domain.ErrSessionFinalized)
	})

	t.Run("AssignToTeam_RejectsMissingTeam", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		_, err := rosterService.AssignToTeam(ctx, session.ID, user.ID, uuid.Nil)
		assert.ErrorIs(t, err, domain.ErrInvalidTeam)
	})

	t.Run("AssignToTeam_RejectsForeignTeam", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		otherSession := testutil.NewSessionBuilder().Build(t, testDB.DB)
		foreignTeam := testutil.NewTeamBuilder(otherSession.ID).Build(t, testDB.DB)

		_, err := rosterService.AssignToTeam(ctx, session.ID, user.ID, foreignTeam.ID)
		assert.ErrorIs(t, err, domain.ErrTeamWrongSession)
	})

	t.Run("AssignToTeam_Upserts", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		team := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		ps, err := rosterService.AssignToTeam(ctx, session.ID, user.ID, team.ID)
		require.NoError(t, err)
		require.NotNil(t, ps.TeamID)
		assert.Equal(t, team.ID, *ps.TeamID)

		// Confirming afterwards keeps the same row and the team slot
		confirmed, err := rosterService.ConfirmAttendance(ctx, session.ID, user.ID, true)
		require.NoError(t, err)
		assert.Equal(t, ps.ID, confirmed.ID)
		require.NotNil(t, confirmed.TeamID)
		assert.Equal(t, team.ID, *confirmed.TeamID)
	})

	t.Run("AssignToTeam_MovingCaptainClearsCaptaincy", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		teamA := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)
		teamB := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		ps, err := rosterService.AssignToTeam(ctx, session.ID, user.ID, teamA.ID)
		require.NoError(t, err)

		teamService := service.NewTeamService(repos.Team, repos.Session)
		_, err = teamService.SetCaptain(ctx, teamA.ID, ps.ID)
		require.NoError(t, err)

		// Moving the captain to the other team drops the stale reference
		_, err = rosterService.AssignToTeam(ctx, session.ID, user.ID, teamB.ID)
		require.NoError(t, err)

		reloaded, err := teamService.Get(ctx, teamA.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.CaptainID)
	})

	t.Run("ToggleWillPlay_PreservesTeam", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		team := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)
		testutil.NewPlayerSessionBuilder(user.ID, session.ID).OnTeam(team.ID).Build(t, testDB.DB)

		ps, err := rosterService.ToggleWillPlay(ctx, session.ID, user.ID, false)
		require.NoError(t, err)
		assert.False(t, ps.WillPlay)
		assert.True(t, ps.Confirmed)
		require.NotNil(t, ps.TeamID)
		assert.Equal(t, team.ID, *ps.TeamID)

		ps, err = rosterService.ToggleWillPlay(ctx, session.ID, user.ID, true)
		require.NoError(t, err)
		assert.True(t, ps.WillPlay)
		require.NotNil(t, ps.TeamID)
		assert.Equal(t, team.ID, *ps.TeamID)
	})

	t.Run("ToggleWillPlay_NoEntry", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		_, err := rosterService.ToggleWillPlay(ctx, session.ID, user.ID, false)
		assert.ErrorIs(t, err, domain.ErrPlayerSessionNotFound)
	})

	t.Run("UpdateStats_OverwritesCounts", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().
			WithStatus(domain.SessionStatusCompleted).
			Build(t, testDB.DB)
		entry := testutil.NewPlayerSessionBuilder(user.ID, session.ID).Build(t, testDB.DB)

		ps, err := rosterService.UpdateStats(ctx, entry.ID, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, ps.Goals)
		assert.Equal(t, 1, ps.Assists)

		// Overwrite, not accumulate
		ps, err = rosterService.UpdateStats(ctx, entry.ID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, ps.Goals)
		assert.Equal(t, 0, ps.Assists)

		reloaded, err := rosterService.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, reloaded.Goals)
		assert.Equal(t, 0, reloaded.Assists)
	})

	t.Run("UpdateStats_RequiresCompletedSession", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		entry := testutil.NewPlayerSessionBuilder(user.ID, session.ID).Build(t, testDB.DB)

		_, err := rosterService.UpdateStats(ctx, entry.ID, 1, 0)
		assert.ErrorIs(t, err, domain.ErrSessionNotCompleted)
	})

	t.Run("UpdateStats_RejectsNegatives", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := rosterService.UpdateStats(ctx, uuid.New(), -1, 0)
		assert.ErrorIs(t, err, domain.ErrNegativeStats)
	})

	t.Run("SessionRoster_Partitions", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		playing, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		resenha, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		pending, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		testutil.NewPlayerSessionBuilder(playing.ID, session.ID).Build(t, testDB.DB)
		testutil.NewPlayerSessionBuilder(resenha.ID, session.ID).AsResenha().Build(t, testDB.DB)
		testutil.NewPlayerSessionBuilder(pending.ID, session.ID).Unconfirmed().Build(t, testDB.DB)

		roster, err := rosterService.SessionRoster(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, roster.Playing, 1)
		require.Len(t, roster.Resenha, 1)
		require.Len(t, roster.Pending, 1)
		assert.Equal(t, playing.ID, roster.Playing[0].UserID)
		assert.Equal(t, resenha.ID, roster.Resenha[0].UserID)
		assert.Equal(t, pending.ID, roster.Pending[0].UserID)
	})

	t.Run("Create_RejectsDuplicate", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		_, err := rosterService.Create(ctx, service.CreatePlayerSessionInput{
			UserID:    user.ID,
			SessionID: session.ID,
			WillPlay:  true,
		})
		require.NoError(t, err)

		_, err = rosterService.Create(ctx, service.CreatePlayerSessionInput{
			UserID:    user.ID,
			SessionID: session.ID,
			WillPlay:  true,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	})
}
