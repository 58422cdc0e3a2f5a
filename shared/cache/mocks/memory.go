package mocks

import (
	"context"
	"encoding/json"
	"flightbook/shared/cache"
	"fmt"
	"path"
	"sync"
)

// Memory is an in-process RedisCache that really stores and deletes entries. BeforeSave, when set,
// runs ahead of every Save so tests can interleave a write with a read that is about to cache.
type Memory struct {
	mu         sync.Mutex
	entries    map[string][]byte
	BeforeSave func(key string)
}

func NewMemory() *Memory {
	return &Memory{entries: map[string][]byte{}}
}

func (m *Memory) Save(_ context.Context, key string, value any, _ int) error {
	if hook := m.BeforeSave; hook != nil {
		m.BeforeSave = nil
		hook(key)
	}

	raw, ok := value.(string)
	data := []byte(raw)

	if !ok {
		var err error
		if data, err = json.Marshal(value); err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = data

	return nil
}

func (m *Memory) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	data, ok := m.entries[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	if v, isString := value.(*string); isString {
		*v = string(data)

		return nil
	}

	return json.Unmarshal(data, value)
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)

	return nil
}

func (m *Memory) Clear(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		if matched, _ := path.Match(pattern, key); matched {
			delete(m.entries, key)
		}
	}

	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.entries[key]

	return ok
}
