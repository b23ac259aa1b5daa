package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/testutil"
)

func castVote(t *testing.T, ts *testutil.TestServer, token string, sessionID, favoriteID uuid.UUID) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"sessionId":  sessionID.String(),
		"favoriteId": favoriteID.String(),
	})
	req, err := http.NewRequest(http.MethodPost, ts.APIURL("/player-favorites"), bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestFavoriteHandler_Cast(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := testutil.NewTestServer(t)

	t.Run("voter comes from the token", func(t *testing.T) {
		ts.DB.Truncate(t)

		voter, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		favorite, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		session := testutil.NewSessionBuilder().Build(t, ts.DB.DB)

		resp := castVote(t, ts, token, session.ID, favorite.ID)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		var result domain.PlayerFavorite
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, voter.ID, result.VoterID)
		assert.Equal(t, favorite.ID, result.FavoriteID)
		assert.Equal(t, session.ID, result.SessionID)
	})

	t.Run("repeat vote returns the same row", func(t *testing.T) {
		ts.DB.Truncate(t)

		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		favorite, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		session := testutil.NewSessionBuilder().Build(t, ts.DB.DB)

		first := castVote(t, ts, token, session.ID, favorite.ID)
		defer first.Body.Close()
		var firstVote domain.PlayerFavorite
		testutil.AssertJSONResponse(t, first, &firstVote)

		second := castVote(t, ts, token, session.ID, favorite.ID)
		defer second.Body.Close()
		var secondVote domain.PlayerFavorite
		testutil.AssertJSONResponse(t, second, &secondVote)

		assert.Equal(t, firstVote.ID, secondVote.ID)
	})

	t.Run("rejects self vote", func(t *testing.T) {
		ts.DB.Truncate(t)

		voter, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		session := testutil.NewSessionBuilder().Build(t, ts.DB.DB)

		resp := castVote(t, ts, token, session.ID, voter.ID)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "yourself")
	})

	t.Run("enforces per-session cap", func(t *testing.T) {
		ts.DB.Truncate(t)

		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		session := testutil.NewSessionBuilder().Build(t, ts.DB.DB)

		for i := 0; i < domain.MaxFavoritesPerSession; i++ {
			favorite, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
			resp := castVote(t, ts, token, session.ID, favorite.ID)
			testutil.AssertStatusCode(t, resp, http.StatusCreated)
			resp.Body.Close()
		}

		oneTooMany, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		resp := castVote(t, ts, token, session.ID, oneTooMany.ID)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "limit")
	})

	t.Run("rejects missing token", func(t *testing.T) {
		ts.DB.Truncate(t)

		body, _ := json.Marshal(map[string]string{
			"sessionId":  uuid.New().String(),
			"favoriteId": uuid.New().String(),
		})
		resp, err := http.Post(ts.APIURL("/player-favorites"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}

func TestFavoriteHandler_MostFavorited(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := testutil.NewTestServer(t)

	t.Run("ranks by vote count", func(t *testing.T) {
		ts.DB.Truncate(t)

		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		session := testutil.NewSessionBuilder().Build(t, ts.DB.DB)
		target, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)

		resp := castVote(t, ts, token, session.ID, target.ID)
		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		resp.Body.Close()

		req, err := http.NewRequest(http.MethodGet, ts.APIURL("/player-favorites/most-favorited?limit=5"), nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		listResp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer listResp.Body.Close()

		testutil.AssertStatusCode(t, listResp, http.StatusOK)

		var ranking []domain.FavoriteCount
		testutil.AssertJSONResponse(t, listResp, &ranking)
		require.Len(t, ranking, 1)
		assert.Equal(t, target.ID, ranking[0].UserID)
		assert.Equal(t, 1, ranking[0].FavoriteCount)
	})
}
