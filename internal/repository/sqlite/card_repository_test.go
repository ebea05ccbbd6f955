package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindgren/cardbox/internal/models"
	"github.com/mlindgren/cardbox/internal/repository/sqlite"
	"github.com/mlindgren/cardbox/internal/testutil"
)

func TestCardRepository_InsertAndLoad(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewCardRepository(db.DB)
	ctx := context.Background()

	card := models.Card{Front: "der Hund", Back: "the dog", Hint: "barks", Tags: []string{"animals"}}
	require.NoError(t, repo.Insert(ctx, card, 0))
	require.NoError(t, repo.Insert(ctx, models.Card{Front: "die Katze", Back: "the cat"}, 3))

	buckets, err := repo.LoadBuckets(ctx)
	require.NoError(t, err)

	got, idx, ok := buckets.FindCardBucket(card)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "barks", got.Hint)
	assert.Equal(t, []string{"animals"}, got.Tags)

	_, idx, ok = buckets.FindCardBucket(models.Card{Front: "die Katze", Back: "the cat"})
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestCardRepository_Insert_DuplicateKeyFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewCardRepository(db.DB)
	ctx := context.Background()

	card := models.Card{Front: "front", Back: "back"}
	require.NoError(t, repo.Insert(ctx, card, 0))

	err := repo.Insert(ctx, card, 2)
	assert.Error(t, err, "primary key on (front, back) rejects duplicates")
}

func TestCardRepository_UpdateBucket(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewCardRepository(db.DB)
	ctx := context.Background()

	card := models.Card{Front: "front", Back: "back"}
	require.NoError(t, repo.Insert(ctx, card, 0))
	require.NoError(t, repo.UpdateBucket(ctx, card.Key(), 5))

	buckets, err := repo.LoadBuckets(ctx)
	require.NoError(t, err)

	_, idx, ok := buckets.FindCardBucket(card)
	require.True(t, ok)
	assert.Equal(t, 5, idx)
}

func TestCardRepository_Count(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewCardRepository(db.DB)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.Insert(ctx, models.Card{Front: "a", Back: "1"}, 0))
	require.NoError(t, repo.Insert(ctx, models.Card{Front: "b", Back: "2"}, 1))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCardRepository_LoadBuckets_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewCardRepository(db.DB)

	buckets, err := repo.LoadBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, buckets.CountCards())
}
