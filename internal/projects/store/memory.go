package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
)

// Memory is the default in-memory store. State lives for the process
// lifetime only.
type Memory struct {
	mu     sync.RWMutex
	items  []domain.Project
	nextID int64
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) List(_ context.Context) ([]domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Project, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (m *Memory) Insert(_ context.Context, p domain.Project) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = strconv.FormatInt(m.nextID, 10)
	m.nextID++
	m.items = append(m.items, p.Clone())
	return p, nil
}

func (m *Memory) Replace(_ context.Context, p domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = p.Clone()
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (m *Memory) Delete(_ context.Context, id string) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

func (m *Memory) Seed(_ context.Context, projects []domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) > 0 {
		return nil
	}

	for _, p := range projects {
		m.items = append(m.items, p.Clone())
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n >= m.nextID {
			m.nextID = n + 1
		}
	}
	return nil
}
