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

func TestTeamService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	teamService := service.NewTeamService(repos.Team, repos.Session)
	ctx := context.Background()

	t.Run("Create_RequiresSession", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := teamService.Create(ctx, service.CreateTeamInput{
			SessionID: uuid.New(),
			Name:      "Time Azul",
		})
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("SetCaptain_TeamNotFound", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := teamService.SetCaptain(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	t.Run("SetCaptain_RejectsOffRosterPlayer", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		team := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		// Roster entry exists but is not assigned to the team
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		entry := testutil.NewPlayerSessionBuilder(user.ID, session.ID).Build(t, testDB.DB)

		_, err := teamService.SetCaptain(ctx, team.ID, entry.ID)
		assert.ErrorIs(t, err, domain.ErrNotOnTeam)
	})

	t.Run("SetCaptain_Succeeds", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		team := testutil.NewTeamBuilder(session.ID).WithName("Time Sem Nome").Build(t, testDB.DB)
		user, _ := testutil.NewUserBuilder().WithName("Carlos Alberto").Build(t, testDB.DB)
		entry := testutil.NewPlayerSessionBuilder(user.ID, session.ID).OnTeam(team.ID).Build(t, testDB.DB)

		updated, err := teamService.SetCaptain(ctx, team.ID, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.CaptainID)
		assert.Equal(t, entry.ID, *updated.CaptainID)

		// Display name follows the captain, stored name is untouched
		assert.Equal(t, "Time Carlos", updated.DisplayName())
		assert.Equal(t, "Time Sem Nome", updated.Name)
	})

	t.Run("SetCaptain_OverwritesPrevious", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		team := testutil.NewTeamBuilder(session.ID).Build(t, testDB.DB)

		first, _ := testutil.NewUserBuilder().WithName("Ana Paula").Build(t, testDB.DB)
		second, _ := testutil.NewUserBuilder().WithName("Bruno Costa").Build(t, testDB.DB)
		firstEntry := testutil.NewPlayerSessionBuilder(first.ID, session.ID).OnTeam(team.ID).Build(t, testDB.DB)
		secondEntry := testutil.NewPlayerSessionBuilder(second.ID, session.ID).OnTeam(team.ID).Build(t, testDB.DB)

		_, err := teamService.SetCaptain(ctx, team.ID, firstEntry.ID)
		require.NoError(t, err)

		updated, err := teamService.SetCaptain(ctx, team.ID, secondEntry.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.CaptainID)
		assert.Equal(t, secondEntry.ID, *updated.CaptainID)
		assert.Equal(t, "Time Bruno", updated.DisplayName())

		// The column itself must have moved; a full-row save of the team
		// loaded with its old captain association would quietly keep the
		// previous value.
		var stored domain.Team
		err = testDB.DB.First(&stored, "id = ?", team.ID).Error
		require.NoError(t, err)
		require.NotNil(t, stored.CaptainID)
		assert.Equal(t, secondEntry.ID, *stored.CaptainID)
	})

	t.Run("ListBySession", func(t *testing.T) {
		testDB.Truncate(t)

		session := testutil.NewSessionBuilder().Build(t, testDB.DB)
		testutil.NewTeamBuilder(session.ID).WithName("Time A").Build(t, testDB.DB)
		testutil.NewTeamBuilder(session.ID).WithName("Time B").Build(t, testDB.DB)

		teams, err := teamService.ListBySession(ctx, session.ID)
		require.NoError(t, err)
		assert.Len(t, teams, 2)
	})
}
