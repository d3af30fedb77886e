package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	eventRepo "wintermarket/database/repository/event"
	"wintermarket/models"
	"wintermarket/utils"
)

// DefaultSelectionService implements SelectionService on top of Redis.
// Each visitor session is a JSON-marshaled Selection stored under a
// prefixed key with a sliding TTL.
type DefaultSelectionService struct {
	Cache        *redis.Client
	Events       eventRepo.EventRepository
	Availability *AvailabilityView
}

// StartSelection creates a new, empty selection session in the given mode
// and stores it in Redis.
func (s *DefaultSelectionService) StartSelection(ctx context.Context, mode models.SelectionMode) (*models.Selection, error) {
	if mode != models.SelectionModeSingle && mode != models.SelectionModeMulti {
		return nil, NewValidationError("mode", "mode must be \"single\" or \"multi\"")
	}
	sel := &models.Selection{
		SessionID: uuid.New().String(),
		Mode:      mode,
		Dates:     []string{},
	}
	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// GetSelection retrieves an existing selection session.
func (s *DefaultSelectionService) GetSelection(ctx context.Context, sessionID string) (*models.Selection, error) {
	data, err := s.Cache.Get(ctx, utils.SelectionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var sel models.Selection
	if err := json.Unmarshal([]byte(data), &sel); err != nil {
		return nil, fmt.Errorf("failed to parse selection session: %w", err)
	}
	return &sel, nil
}

// ToggleDate adds or removes a date. A date already selected is removed;
// an unselected date is appended when bookable. Toggling a non-bookable
// date is a no-op. In single mode the chosen date replaces any previous
// one, since picking a date ends the interaction.
func (s *DefaultSelectionService) ToggleDate(ctx context.Context, sessionID, date string) (*models.Selection, error) {
	sel, err := s.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sel.Mode == models.SelectionModeMulti && sel.Contains(date) {
		sel.Remove(date)
		if err := s.save(ctx, sel); err != nil {
			return nil, err
		}
		return sel, nil
	}

	bookable, err := s.bookable(ctx, date)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return sel, nil
	}

	if sel.Mode == models.SelectionModeSingle {
		sel.Dates = []string{date}
	} else {
		sel.Dates = append(sel.Dates, date)
	}
	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// ClearSelection empties the selection unconditionally.
func (s *DefaultSelectionService) ClearSelection(ctx context.Context, sessionID string) (*models.Selection, error) {
	sel, err := s.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel.Dates = []string{}
	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// SwitchMode changes the selection mode. The selection is always cleared
// so a stale multi-selection cannot leak into single mode or vice versa.
func (s *DefaultSelectionService) SwitchMode(ctx context.Context, sessionID string, mode models.SelectionMode) (*models.Selection, error) {
	if mode != models.SelectionModeSingle && mode != models.SelectionModeMulti {
		return nil, NewValidationError("mode", "mode must be \"single\" or \"multi\"")
	}
	sel, err := s.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel.Mode = mode
	sel.Dates = []string{}
	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *DefaultSelectionService) bookable(ctx context.Context, date string) (bool, error) {
	counts, err := s.Events.AvailableSlotCounts(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch slot counts: %w", err)
	}
	return s.Availability.Bookable(date, counts), nil
}

func (s *DefaultSelectionService) save(ctx context.Context, sel *models.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("failed to marshal selection session: %w", err)
	}
	key := utils.SelectionCachePrefix + sel.SessionID
	if err := s.Cache.Set(ctx, key, data, utils.SelectionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store selection session: %w", err)
	}
	return nil
}
