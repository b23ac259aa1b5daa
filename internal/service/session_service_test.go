package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository/postgres"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
	"github.com/vitorhpaes/futebasssss-sub000/internal/testutil"
)

func TestSessionService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	sessionService := service.NewSessionService(repos.Session, repos.GameResult)
	ctx := context.Background()

	t.Run("Create_DefaultsToScheduled", func(t *testing.T) {
		testDB.Truncate(t)

		session, err := sessionService.Create(ctx, service.CreateSessionInput{
			Date:     time.Now().Add(24 * time.Hour),
			Location: "Society da Vila",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusScheduled, session.Status)
	})

	t.Run("Complete_ThenFurtherTransitionRejected", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		completed, err := sessionService.Complete(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusCompleted, completed.Status)

		_, err = sessionService.Cancel(ctx, session.ID)
		assert.ErrorIs(t, err, domain.ErrSessionFinalized)
		_, err = sessionService.Complete(ctx, session.ID)
		assert.ErrorIs(t, err, domain.ErrSessionFinalized)
	})

	t.Run("Cancel", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		canceled, err := sessionService.Cancel(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusCanceled, canceled.Status)
	})

	t.Run("RecordResult_DerivesWinner", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		teamA := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)
		teamB := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		result, err := sessionService.RecordResult(ctx, session.ID, service.RecordResultInput{
			TeamAID:    teamA.ID,
			TeamBID:    teamB.ID,
			TeamAScore: 3,
			TeamBScore: 1,
		})
		require.NoError(t, err)
		require.NotNil(t, result.WinnerTeamID)
		assert.Equal(t, teamA.ID, *result.WinnerTeamID)
	})

	t.Run("RecordResult_TieLeavesWinnerUnset", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		teamA := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)
		teamB := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		result, err := sessionService.RecordResult(ctx, session.ID, service.RecordResultInput{
			TeamAID:    teamA.ID,
			TeamBID:    teamB.ID,
			TeamAScore: 2,
			TeamBScore: 2,
		})
		require.NoError(t, err)
		assert.Nil(t, result.WinnerTeamID)
	})

	t.Run("RecordResult_UpsertsOnSession", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		teamA := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)
		teamB := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		_, err := sessionService.RecordResult(ctx, session.ID, service.RecordResultInput{
			TeamAID:    teamA.ID,
			TeamBID:    teamB.ID,
			TeamAScore: 1,
			TeamBScore: 0,
		})
		require.NoError(t, err)

		// Re-recording replaces the existing row
		updated, err := sessionService.RecordResult(ctx, session.ID, service.RecordResultInput{
			TeamAID:    teamA.ID,
			TeamBID:    teamB.ID,
			TeamAScore: 1,
			TeamBScore: 4,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.WinnerTeamID)
		assert.Equal(t, teamB.ID, *updated.WinnerTeamID)

		var count int64
		err = testDB.DB.Model(&domain.GameResult{}).
			Where("session_id = ?", session.ID).
			Count(&count).Error
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("Delete_SoftDeletes", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)

		require.NoError(t, sessionService.Delete(ctx, session.ID))

		_, err := sessionService.Get(ctx, session.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		// Row is retained with a deleted timestamp
		var count int64
		err = testDB.DB.Unscoped().Model(&domain.Session{}).
			Where("id = ? AND deleted_at IS NOT NULL", session.ID).
			Count(&count).Error
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}
