// Package memory implementa los puertos de repuestos e historial en memoria.
// Se usa como fixture determinista en los tests de casos de uso y handlers.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/repuestos-analytics/internal/domain"
	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
	"github.com/jhoicas/repuestos-analytics/internal/domain/repository"
)

var (
	_ repository.PartRepository  = (*Store)(nil)
	_ repository.HistoryProvider = (*Store)(nil)
)

// Store guarda repuestos (en orden de alta) y su historial de consumo.
type Store struct {
	mu      sync.RWMutex
	parts   []entity.Part
	usage   map[string][]entity.UsageEvent
	failFor map[string]error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		usage:   make(map[string][]entity.UsageEvent),
		failFor: make(map[string]error),
	}
}

// AddPart agrega o reemplaza un repuesto conservando su posición original.
func (s *Store) AddPart(p entity.Part) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parts {
		if s.parts[i].ID == p.ID {
			s.parts[i] = p
			return
		}
	}
	s.parts = append(s.parts, p)
}

// AddUsage agrega eventos de consumo (pueden venir desordenados).
func (s *Store) AddUsage(events ...entity.UsageEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		s.usage[ev.PartID] = append(s.usage[ev.PartID], ev)
	}
}

// FailUsageFor hace que FetchUsage falle para el repuesto indicado (simulación de errores).
func (s *Store) FailUsageFor(partID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failFor[partID] = err
}

// List devuelve una copia de los repuestos.
func (s *Store) List(_ context.Context) ([]entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Part, len(s.parts))
	copy(out, s.parts)
	return out, nil
}

// GetByID busca un repuesto; domain.ErrNotFound si no existe.
func (s *Store) GetByID(_ context.Context, id string) (*entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.parts {
		if p.ID == id {
			part := p
			return &part, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FetchUsage devuelve una copia del historial del repuesto.
func (s *Store) FetchUsage(_ context.Context, partID string) ([]entity.UsageEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failFor[partID]; err != nil {
		return nil, err
	}
	events := s.usage[partID]
	out := make([]entity.UsageEvent, len(events))
	copy(out, events)
	return out, nil
}
