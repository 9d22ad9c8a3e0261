package inquirystore

import (
	"context"
	"testing"
	"time"

	"gallery-app/internal/domain/inquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&inquiry.ContactRequest{}))

	s := New(db)
	base := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return s
}

func TestStore_SubmitAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ack, err := s.Submit(ctx, inquiry.Record{
		Name:         "Jean Dupont",
		Email:        "jean.dupont@example.com",
		Phone:        "+33 6 12 34 56 78",
		Message:      `Je suis intéressé(e) par "Vue Montagnarde" de Cindy Roy-Boutin.`,
		PaintingName: "Vue Montagnarde",
		PaintingIDs:  []string{"2"},
	})
	require.NoError(t, err)
	assert.NotZero(t, ack.ID)
	assert.NotEmpty(t, ack.Reference)
	assert.Equal(t, inquiry.StatusNew, ack.Status)

	_, err = s.Submit(ctx, inquiry.Record{
		Name:        "Marie Laurent",
		Email:       "marie.laurent@example.com",
		Phone:       "+33 7 98 76 54 32",
		Message:     "Sélection",
		PaintingIDs: []string{"1", "5"},
	})
	require.NoError(t, err)

	rows, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Marie Laurent", rows[0].Name)
	assert.Equal(t, "1,5", rows[0].PaintingIDs)
	assert.Nil(t, rows[0].PaintingName)
	require.NotNil(t, rows[1].PaintingName)
	assert.Equal(t, "Vue Montagnarde", *rows[1].PaintingName)
}

func TestStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ack, err := s.Submit(ctx, inquiry.Record{Name: "A", Email: "a@example.com", Phone: "1", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(ctx, ack.ID, inquiry.StatusCompleted))

	cr, err := s.Get(ctx, ack.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry.StatusCompleted, cr.Status)

	completed, err := s.List(ctx, inquiry.StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	fresh, err := s.List(ctx, inquiry.StatusNew)
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestStore_UpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.ErrorIs(t, s.UpdateStatus(ctx, 42, inquiry.StatusContacted), inquiry.ErrNotFound)
	assert.ErrorIs(t, s.UpdateStatus(ctx, 42, "lost"), inquiry.ErrInvalidStatus)

	_, err := s.Get(ctx, 42)
	assert.ErrorIs(t, err, inquiry.ErrNotFound)
}

func TestStore_SeedMockIfEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, err := s.SeedMockIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = s.SeedMockIfEmpty(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	contacted, err := s.List(ctx, inquiry.StatusContacted)
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	assert.Equal(t, "Marie Laurent", contacted[0].Name)
}
