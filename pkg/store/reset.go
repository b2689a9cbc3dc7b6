package store

import (
	"Go-Pantry-Tracker/domain"

	"github.com/gofiber/fiber/v2/log"
)

// ClearAllData wipes every stored partition and resets the state to the seed
// dataset, which is then written back.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil {
		return
	}

	s.bundle = s.seed(s.clock())
	s.persister.wipeAll()
	s.markDirty(domain.AllPartitions...)
	log.Infof("store: all data cleared, seed dataset restored")
}
