package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils"
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2/log"
)

func (s *Store) UserProfile() entities.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle.UserProfile
}

// UpdateUserProfile merges patch into the profile and stamps UpdatedAt.
func (s *Store) UpdateUserProfile(patch domain.UserProfilePatch) (entities.UserProfile, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		log.Warnf("store: rejected profile patch: %v", err)
		return entities.UserProfile{}, fmt.Errorf("%w: %v", domain.ErrInvalidProfilePatch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.UserProfile{}, err
	}

	p := s.bundle.UserProfile
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.DietPreferences != nil {
		p.DietPreferences = nonNil(slices.Clone(*patch.DietPreferences))
	}
	if patch.FavoriteCuisine != nil {
		p.FavoriteCuisine = *patch.FavoriteCuisine
	}
	if patch.Allergies != nil {
		p.Allergies = nonNil(slices.Clone(*patch.Allergies))
	}
	if patch.CalorieGoal != nil {
		p.CalorieGoal = *patch.CalorieGoal
	}
	p.UpdatedAt = s.clock()

	s.bundle.UserProfile = p
	s.markDirty(domain.PartitionUserProfile)
	return p, nil
}
