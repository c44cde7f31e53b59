package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	at := time.Date(2025, 6, 15, 17, 42, 3, 500, time.Local)

	got := StartOfDay(at)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), got)
}

func TestEventIsUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		date     time.Time
		upcoming bool
	}{
		{"earlier today counts as upcoming", time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local), true},
		{"exactly midnight today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), true},
		{"tomorrow", now.AddDate(0, 0, 1), true},
		{"yesterday evening", time.Date(2025, 6, 14, 23, 59, 0, 0, time.Local), false},
		{"last month", now.AddDate(0, -1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{EventDate: tt.date}
			assert.Equal(t, tt.upcoming, e.IsUpcoming(now))
		})
	}
}

func TestVillageInfoMainCropsCount(t *testing.T) {
	assert.Equal(t, 0, (&VillageInfo{MainCrops: "  "}).MainCropsCount())
	assert.Equal(t, 1, (&VillageInfo{MainCrops: "Paddy"}).MainCropsCount())
	assert.Equal(t, 3, (&VillageInfo{MainCrops: "Paddy, Cotton, Groundnut"}).MainCropsCount())
}
