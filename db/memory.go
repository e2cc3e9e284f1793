package db

import (
	"context"
	"fmt"
	"sync"

	"commandapi/model"
)

// Memory is a Store held in process memory. It is lost on exit.
type Memory struct {
	mu    sync.RWMutex
	last  int64
	order []int64
	byID  map[int64]model.Command
}

func NewMemory() *Memory {
	return &Memory{byID: map[int64]model.Command{}}
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) List(ctx context.Context) ([]model.Command, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]model.Command, 0, len(m.order))
	for _, id := range m.order {
		commands = append(commands, m.byID[id])
	}
	return commands, nil
}

func (m *Memory) Find(ctx context.Context, id int64) (model.Command, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.byID[id]
	return c, ok, nil
}

func (m *Memory) Add(ctx context.Context, cmd model.Command) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last++
	cmd.ID = m.last
	m.byID[cmd.ID] = cmd
	m.order = append(m.order, cmd.ID)
	return cmd.ID, nil
}

func (m *Memory) Update(ctx context.Context, id int64, cmd model.Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("command %d: %w", id, ErrMissing)
	}
	cmd.ID = id
	m.byID[id] = cmd
	return nil
}

func (m *Memory) Remove(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("command %d: %w", id, ErrMissing)
	}
	delete(m.byID, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
