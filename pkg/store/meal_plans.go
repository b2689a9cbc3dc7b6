package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils"
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2/log"
)

func (s *Store) MealPlans() []entities.MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nonNil(slices.Clone(s.bundle.MealPlans))
}

func (s *Store) MealPlanByDate(date string) (entities.MealPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, plan := range s.bundle.MealPlans {
		if plan.Date == date {
			return plan, true
		}
	}
	return entities.MealPlan{}, false
}

// MealPlansInRange returns plans dated from start to end inclusive, comparing
// the ISO date strings.
func (s *Store) MealPlansInRange(start, end string) []entities.MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entities.MealPlan{}
	for _, plan := range s.bundle.MealPlans {
		if plan.Date >= start && plan.Date <= end {
			out = append(out, plan)
		}
	}
	return out
}

// AddMealPlan rejects a second plan for a date that already has one.
func (s *Store) AddMealPlan(draft domain.MealPlanDraft) (entities.MealPlan, error) {
	if err := utils.ValidateStruct(draft); err != nil {
		log.Warnf("store: rejected meal plan for %q: %v", draft.Date, err)
		return entities.MealPlan{}, fmt.Errorf("%w: %v", domain.ErrInvalidMealPlanDate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.MealPlan{}, err
	}
	if s.dateTaken(draft.Date, "") {
		return entities.MealPlan{}, domain.ErrMealPlanExists
	}

	plan := entities.MealPlan{
		ID:    s.newID(),
		Date:  draft.Date,
		Meals: cloneMeals(draft.Meals),
		Notes: draft.Notes,
	}
	s.bundle.MealPlans = append(slices.Clip(s.bundle.MealPlans), plan)
	s.markDirty(domain.PartitionMealPlans)
	return plan, nil
}

func (s *Store) UpdateMealPlan(id string, patch domain.MealPlanPatch) (entities.MealPlan, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		log.Warnf("store: rejected patch for meal plan %s: %v", id, err)
		return entities.MealPlan{}, fmt.Errorf("%w: %v", domain.ErrInvalidMealPlanPatch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.MealPlan{}, err
	}

	i := indexOf(s.bundle.MealPlans, id, mealPlanID)
	if i < 0 {
		return entities.MealPlan{}, domain.ErrMealPlanNotFound
	}

	plan := s.bundle.MealPlans[i]
	if patch.Date != nil {
		if s.dateTaken(*patch.Date, id) {
			return entities.MealPlan{}, domain.ErrMealPlanExists
		}
		plan.Date = *patch.Date
	}
	if patch.Meals != nil {
		plan.Meals = cloneMeals(*patch.Meals)
	}
	if patch.Notes != nil {
		plan.Notes = *patch.Notes
	}

	plans := slices.Clone(s.bundle.MealPlans)
	plans[i] = plan
	s.bundle.MealPlans = plans
	s.markDirty(domain.PartitionMealPlans)
	return plan, nil
}

func (s *Store) DeleteMealPlan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}

	i := indexOf(s.bundle.MealPlans, id, mealPlanID)
	if i < 0 {
		return domain.ErrMealPlanNotFound
	}
	s.bundle.MealPlans = removeAt(s.bundle.MealPlans, i)
	s.markDirty(domain.PartitionMealPlans)
	return nil
}

// dateTaken must be called with s.mu held.
func (s *Store) dateTaken(date, exceptID string) bool {
	for _, plan := range s.bundle.MealPlans {
		if plan.Date == date && plan.ID != exceptID {
			return true
		}
	}
	return false
}

func cloneMeals(m entities.Meals) entities.Meals {
	return entities.Meals{
		Breakfast: cloneRecipe(m.Breakfast),
		Lunch:     cloneRecipe(m.Lunch),
		Dinner:    cloneRecipe(m.Dinner),
		Snacks:    nonNil(slices.Clone(m.Snacks)),
	}
}

func cloneRecipe(r *entities.Recipe) *entities.Recipe {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
