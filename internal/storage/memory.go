package storage

import (
	"context"
	"sort"
	"sync"

	"hometownheating/internal/domain"
)

// MemoryContactInquiries is an in-memory ContactInquiries repository.
type MemoryContactInquiries struct {
	mu        sync.RWMutex
	inquiries map[string]domain.ContactInquiry
}

// NewMemoryContactInquiries creates an empty in-memory inquiry store.
func NewMemoryContactInquiries() *MemoryContactInquiries {
	return &MemoryContactInquiries{inquiries: make(map[string]domain.ContactInquiry)}
}

func (r *MemoryContactInquiries) Create(ctx context.Context, inquiry *domain.ContactInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (r *MemoryContactInquiries) List(ctx context.Context) ([]domain.ContactInquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.ContactInquiry, 0, len(r.inquiries))
	for _, inq := range r.inquiries {
		res = append(res, inq)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

// MemoryApplications is an in-memory Applications repository.
type MemoryApplications struct {
	mu   sync.RWMutex
	apps map[string]domain.ComfortClubApplication
}

// NewMemoryApplications creates an empty in-memory application store.
func NewMemoryApplications() *MemoryApplications {
	return &MemoryApplications{apps: make(map[string]domain.ComfortClubApplication)}
}

func (r *MemoryApplications) Create(ctx context.Context, app *domain.ComfortClubApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = *app
	return nil
}

func (r *MemoryApplications) List(ctx context.Context) ([]domain.ComfortClubApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.ComfortClubApplication, 0, len(r.apps))
	for _, app := range r.apps {
		res = append(res, app)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *MemoryApplications) UpdateStatus(ctx context.Context, id, status string) (*domain.ComfortClubApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return &app, nil
}

// NewMemoryStore builds a Store backed entirely by process memory.
func NewMemoryStore() *Store {
	return &Store{
		ContactInquiries: NewMemoryContactInquiries(),
		Applications:     NewMemoryApplications(),
	}
}
