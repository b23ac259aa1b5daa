package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository/postgres"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
	"github.com/vitorhpaes/futebasssss-sub000/internal/testutil"
)

func TestAuthService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, testutil.TestConfig())
	ctx := context.Background()

	t.Run("Register_Succeeds", func(t *testing.T) {
		testDB.Truncate(t)

		result, err := authService.Register(ctx, service.RegisterInput{
			Email:    "novo@pelada.dev",
			Name:     "Novo Jogador",
			Password: "senha-segura",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, domain.UserTypePlayer, result.User.Type)
		assert.NotEqual(t, "senha-segura", result.User.PasswordHash)
	})

	t.Run("Register_RejectsDuplicateEmail", func(t *testing.T) {
		testDB.Truncate(t)

		testutil.NewUserBuilder().WithEmail("taken@pelada.dev").Build(t, testDB.DB)

		_, err := authService.Register(ctx, service.RegisterInput{
			Email:    "taken@pelada.dev",
			Name:     "Outro",
			Password: "senha",
		})
		assert.ErrorIs(t, err, service.ErrEmailExists)
	})

	t.Run("Register_RejectsInvalidPosition", func(t *testing.T) {
		testDB.Truncate(t)

		bad := domain.Position("LIBERO")
		_, err := authService.Register(ctx, service.RegisterInput{
			Email:    "libero@pelada.dev",
			Name:     "Libero",
			Password: "senha",
			Position: &bad,
		})
		assert.ErrorIs(t, err, service.ErrInvalidPosition)
	})

	t.Run("Register_SurfacesLookupFailure", func(t *testing.T) {
		testDB.Truncate(t)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := authService.Register(canceled, service.RegisterInput{
			Email:    "canceled@pelada.dev",
			Name:     "Cancelado",
			Password: "senha",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrEmailExists)

		var count int64
		err = testDB.DB.Model(&domain.User{}).
			Where("email = ?", "canceled@pelada.dev").
			Count(&count).Error
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})

	t.Run("Login_Succeeds", func(t *testing.T) {
		testDB.Truncate(t)

		user, password := testutil.NewUserBuilder().Build(t, testDB.DB)

		result, err := authService.Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.AccessToken)

		claims, err := authService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), (*claims)["sub"])
		assert.Equal(t, string(user.Type), (*claims)["type"])
	})

	t.Run("Login_WrongPassword", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		_, err := authService.Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: "wrong",
		})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Login_UnknownEmail", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := authService.Login(ctx, service.LoginInput{
			Email:    "nobody@pelada.dev",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("ValidateToken_RejectsGarbage", func(t *testing.T) {
		_, err := authService.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
