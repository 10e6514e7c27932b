package service

import (
	"context"
	"sync"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.HealthService = (*HealthService)(nil)

// HealthService wraps the prober for repeated polling. Probes are
// sequence-guarded: a slow probe that resolves after a newer one has
// already reported must not overwrite the newer result.
type HealthService struct {
	prober port.Prober

	mu       sync.Mutex
	nextSeq  uint64
	lastSeq  uint64
	lastSeen domain.ProbeStatus
	hasSeen  bool
}

func NewHealth(prober port.Prober) *HealthService {
	return &HealthService{prober: prober}
}

// Probe never panics: every prober failure is captured in the status.
func (s *HealthService) Probe(ctx context.Context) domain.ProbeStatus {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	warning, err := s.prober.Probe(ctx)

	status := domain.ProbeStatus{OK: true, Warning: warning}
	if err != nil {
		status = domain.ProbeStatus{OK: false, Error: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasSeen && seq < s.lastSeq {
		// Superseded: a later probe already resolved.
		return s.lastSeen
	}
	s.lastSeq = seq
	s.lastSeen = status
	s.hasSeen = true
	return status
}
