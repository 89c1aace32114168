package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/repository/postgres"
	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/boudmarinus-tech/ene-chille-app/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortCodeFromID(t *testing.T) {
	id := uuid.MustParse("7f2ab3c4-1111-2222-3333-444455556666")
	code := service.ShortCodeFromID(id)

	assert.Equal(t, "7F2AB3", code)
	assert.Len(t, code, 6)
	assert.Equal(t, strings.ToUpper(code), code)

	// derivation is deterministic, not random
	assert.Equal(t, code, service.ShortCodeFromID(id))
}

func TestMatchService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	matchService := service.NewMatchService(repos.Match, testutil.TestConfig())
	ctx := context.Background()

	t.Run("CreateMatch_DerivesShortCode", func(t *testing.T) {
		testDB.Truncate(t)

		match, err := matchService.CreateMatch(ctx, "Ene Chille vs TeamA")
		require.NoError(t, err)
		assert.Equal(t, "Ene Chille vs TeamA", match.Name)
		assert.Equal(t, service.ShortCodeFromID(match.ID), match.ShortCode)
		assert.Len(t, match.ShortCode, 6)
	})

	t.Run("CreateMatch_EmptyName", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := matchService.CreateMatch(ctx, "   ")
		assert.ErrorIs(t, err, service.ErrMatchNameRequired)
	})

	t.Run("GetMatch_ByIDAndByCode", func(t *testing.T) {
		testDB.Truncate(t)

		created, err := matchService.CreateMatch(ctx, "Ene Chille vs TeamB")
		require.NoError(t, err)

		byID, err := matchService.GetMatch(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, created.ID, byID.ID)

		// code lookup is case-insensitive
		byCode, err := matchService.GetMatch(ctx, strings.ToLower(created.ShortCode))
		require.NoError(t, err)
		assert.Equal(t, created.ID, byCode.ID)
	})

	t.Run("GetMatch_NotFound", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := matchService.GetMatch(ctx, "ZZZZZZ")
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("GetRecentMatches_NewestFirst", func(t *testing.T) {
		testDB.Truncate(t)

		first, err := matchService.CreateMatch(ctx, "older")
		require.NoError(t, err)
		second, err := matchService.CreateMatch(ctx, "newer")
		require.NoError(t, err)

		matches, err := matchService.GetRecentMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, second.ID, matches[0].ID)
		assert.Equal(t, first.ID, matches[1].ID)
	})
}
