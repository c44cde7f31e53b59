package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

func TestEventRepositoryPartitionsAtBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	now := time.Now()
	boundary := models.StartOfDay(now)

	require.NoError(t, repo.Create(&models.Event{Title: "Gram Sabha", EventDate: boundary.Add(9 * time.Hour)}))
	require.NoError(t, repo.Create(&models.Event{Title: "Temple festival", EventDate: boundary.AddDate(0, 0, 10)}))
	require.NoError(t, repo.Create(&models.Event{Title: "Health camp", EventDate: boundary.Add(-time.Minute)}))
	require.NoError(t, repo.Create(&models.Event{Title: "Old fair", EventDate: boundary.AddDate(0, -1, 0)}))

	upcoming, err := repo.GetUpcoming(boundary, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 2, "an event later today is still upcoming")
	assert.Equal(t, "Gram Sabha", upcoming[0].Title, "soonest first")
	assert.Equal(t, "Temple festival", upcoming[1].Title)

	past, err := repo.GetPast(boundary, 10)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, "Health camp", past[0].Title, "most recent first")
	assert.Equal(t, "Old fair", past[1].Title)
}

func TestEventRepositoryLimits(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	boundary := models.StartOfDay(time.Now())
	for i := 1; i <= 6; i++ {
		require.NoError(t, repo.Create(&models.Event{Title: "Future", EventDate: boundary.AddDate(0, 0, i)}))
		require.NoError(t, repo.Create(&models.Event{Title: "Gone", EventDate: boundary.AddDate(0, 0, -i)}))
	}

	upcoming, err := repo.GetUpcoming(boundary, 4)
	require.NoError(t, err)
	assert.Len(t, upcoming, 4)

	all, err := repo.GetUpcoming(boundary, 0)
	require.NoError(t, err)
	assert.Len(t, all, 6, "limit 0 means unbounded")

	past, err := repo.GetPast(boundary, 3)
	require.NoError(t, err)
	assert.Len(t, past, 3)
}

func TestEventRepositoryUpdateMissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	err := repo.Update(&models.Event{ID: 7, Title: "Ghost", EventDate: time.Now()})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEventRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	event := &models.Event{Title: "One-off", EventDate: time.Now()}
	require.NoError(t, repo.Create(event))

	require.NoError(t, repo.Delete(event.ID))
	assert.ErrorIs(t, repo.Delete(event.ID), gorm.ErrRecordNotFound)
}
