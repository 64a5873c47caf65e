package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hometownheating/internal/domain"
)

func inquiryAt(created time.Time) *domain.ContactInquiry {
	return &domain.ContactInquiry{
		ID:        uuid.NewString(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "613-555-0100",
		CreatedAt: created,
	}
}

func applicationAt(created time.Time) *domain.ComfortClubApplication {
	return &domain.ComfortClubApplication{
		ID:        uuid.NewString(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "613-555-0100",
		Status:    domain.StatusPending,
		CreatedAt: created,
	}
}

func TestMemoryContactInquiriesListNewestFirst(t *testing.T) {
	repo := NewMemoryContactInquiries()
	ctx := context.Background()

	base := time.Now().UTC()
	oldest := inquiryAt(base.Add(-2 * time.Hour))
	middle := inquiryAt(base.Add(-1 * time.Hour))
	newest := inquiryAt(base)

	// Insert out of order; List must sort by createdAt descending.
	for _, inq := range []*domain.ContactInquiry{middle, newest, oldest} {
		require.NoError(t, repo.Create(ctx, inq))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, middle.ID, got[1].ID)
	assert.Equal(t, oldest.ID, got[2].ID)
}

func TestMemoryContactInquiriesConcurrentCreate(t *testing.T) {
	repo := NewMemoryContactInquiries()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			inq := inquiryAt(time.Now().UTC())
			inq.Email = fmt.Sprintf("user%d@example.com", i)
			_ = repo.Create(ctx, inq)
		}(i)
	}
	wg.Wait()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, n, "no submission may be lost or overwritten")

	seen := make(map[string]bool, n)
	for _, inq := range got {
		assert.False(t, seen[inq.ID], "identifiers must be unique")
		seen[inq.ID] = true
	}
}

func TestMemoryApplicationsUpdateStatus(t *testing.T) {
	repo := NewMemoryApplications()
	ctx := context.Background()

	app := applicationAt(time.Now().UTC())
	require.NoError(t, repo.Create(ctx, app))

	updated, err := repo.UpdateStatus(ctx, app.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)
	assert.Equal(t, app.ID, updated.ID)
	assert.Equal(t, app.CreatedAt, updated.CreatedAt, "createdAt is immutable")

	// A later read reflects the new status.
	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "approved", got[0].Status)
}

func TestMemoryApplicationsUpdateStatusNotFound(t *testing.T) {
	repo := NewMemoryApplications()
	ctx := context.Background()

	app := applicationAt(time.Now().UTC())
	require.NoError(t, repo.Create(ctx, app))

	_, err := repo.UpdateStatus(ctx, uuid.NewString(), "approved")
	require.ErrorIs(t, err, ErrNotFound)

	// Collection is unchanged.
	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusPending, got[0].Status)
}

func TestMemoryApplicationsListNewestFirst(t *testing.T) {
	repo := NewMemoryApplications()
	ctx := context.Background()

	base := time.Now().UTC()
	older := applicationAt(base.Add(-time.Minute))
	newer := applicationAt(base)

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestMemoryListReturnsCopies(t *testing.T) {
	repo := NewMemoryApplications()
	ctx := context.Background()

	app := applicationAt(time.Now().UTC())
	require.NoError(t, repo.Create(ctx, app))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	got[0].Status = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again[0].Status, "callers must not be able to mutate stored records")
}
