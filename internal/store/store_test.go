package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMessages(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.SaveMessage(ctx, Message{Name: "Ann", Email: "ann@example.com", Body: "hi", CreatedAt: time.Unix(1000, 0)})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := s.SaveMessage(ctx, Message{Name: "Bob", Email: "bob@example.com", Body: "hello", HashedIP: "abcd", CreatedAt: time.Unix(2000, 0)})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	msgs, err := s.Messages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Bob", msgs[0].Name)
	assert.Equal(t, "abcd", msgs[0].HashedIP)
	assert.Equal(t, time.Unix(2000, 0).UTC(), msgs[0].CreatedAt)
	assert.Equal(t, "Ann", msgs[1].Name)

	require.NoError(t, s.DeleteMessage(ctx, first.ID))
	assert.ErrorIs(t, s.DeleteMessage(ctx, first.ID), ErrNotFound)

	msgs, err = s.Messages(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestCleanupVisitors(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "a", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "b", Path: "/", Timestamp: now.AddDate(0, -1, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "c", Path: "/"}))

	n, err := s.CleanupVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visits, err := s.Visits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "c", visits[0].HashedIP)
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/privacy", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "c", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}
	_, err := s.SaveMessage(ctx, Message{Name: "Ann", Email: "ann@example.com", Body: "hi"})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	assert.Equal(t, int64(1), stats.TotalMessages)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, Path{Path: "/", Views: 3}, stats.TopPaths[0])
	assert.Len(t, stats.RecentVisitors, 4)
	assert.Len(t, stats.RecentMessages, 1)
}
