package repository

import (
	"testing"

	"github.com/notaktolabs/notakto-backend/internal/entity"
	"github.com/notaktolabs/notakto-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage)

	// Given: a fresh three-board match
	match := entity.NewMatch("123", entity.WithBotType, 3, 3, 1)

	// When: CreateOrUpdate is called
	err := matchRepo.CreateOrUpdate(ctx, match)

	// Then: no error should be returned, and match is stored
	require.NoError(t, err)
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage)

		// Given: a stored match with a marked cell
		match := entity.NewMatch("123", entity.WithBotType, 2, 3, 1)
		match.Boards[0][4] = entity.MarkedCell
		match.Status = entity.StatusOngoing

		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should round-trip board state intact
		require.NoError(t, err)
		require.Equal(t, match.ID, retrievedMatch.ID)
		require.Equal(t, match.Status, retrievedMatch.Status)
		require.Equal(t, match.Boards, retrievedMatch.Boards)
		require.Equal(t, match.Turn, retrievedMatch.Turn)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage)

		nonExistentMatchID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedMatch, err := matchRepo.GetByID(ctx, nonExistentMatchID)

		// Then: an ErrMatchNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrMatchNotFound, err)
		assert.Empty(t, retrievedMatch.ID)
		assert.Empty(t, retrievedMatch.Status)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage)

	// Given: a stored match
	match := entity.NewMatch("123", entity.PrivateType, 3, 3, 1)

	err := matchRepo.CreateOrUpdate(ctx, match)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = matchRepo.DeleteByID(ctx, match.ID)

	// Then: no error should be returned and the match is gone
	require.NoError(t, err)

	_, err = matchRepo.GetByID(ctx, match.ID)
	require.Error(t, err)
	assert.Equal(t, ErrMatchNotFound, err)
}
