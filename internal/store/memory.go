package store

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

func (s *MemoryStore) Put(_ context.Context, doc Document) error {
	doc.Data = append([]byte(nil), doc.Data...)

	s.mu.Lock()
	s.docs[doc.Name] = doc
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Get(_ context.Context, name string) (Document, error) {
	s.mu.RLock()
	doc, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return Document{}, ErrNotFound
	}

	doc.Data = append([]byte(nil), doc.Data...)

	return doc, nil
}
