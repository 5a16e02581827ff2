package kv

import (
	"context"
	"maps"
	"slices"
	"sync"
)

type Memory struct {
	mu       sync.RWMutex
	values   map[string][]byte
	counters map[string]map[string]int64
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte), counters: make(map[string]map[string]int64)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	return slices.Clone(value), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.values[key] = slices.Clone(value)
	m.mu.Unlock()

	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	delete(m.counters, key)
	m.mu.Unlock()

	return nil
}

func (m *Memory) IncrBy(_ context.Context, key string, field string, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash, ok := m.counters[key]
	if !ok {
		hash = make(map[string]int64)
		m.counters[key] = hash
	}

	hash[field] += delta

	return nil
}

func (m *Memory) Counters(_ context.Context, key string) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.counters[key] == nil {
		return map[string]int64{}, nil
	}

	return maps.Clone(m.counters[key]), nil
}

func (m *Memory) Drain(_ context.Context, key string) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := m.counters[key]
	delete(m.counters, key)

	if hash == nil {
		return map[string]int64{}, nil
	}

	return maps.Clone(hash), nil
}

func (m *Memory) Close() error {
	return nil
}
