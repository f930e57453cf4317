package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"turfbook/models"
	"turfbook/services/schedule"
	"turfbook/utils"
)

func cartKey(sessionID string) string {
	return utils.CartSessionPrefix + sessionID
}

// CreateSession starts a new empty cart for the user.
func (s *DefaultBookingSessionService) CreateSession(ctx context.Context, userID string) (string, *models.CartSession, error) {
	now := time.Now()
	session := &models.CartSession{
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	sessionID := uuid.New().String()
	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return "", nil, err
	}
	return sessionID, session, nil
}

// GetSession fetches a cart session from the cache.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.CartSession, error) {
	data, err := s.Cache.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart session: %w", err)
	}
	var session models.CartSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse cart session: %w", err)
	}
	return &session, nil
}

// saveSession caches the session, refreshing its TTL.
func (s *DefaultBookingSessionService) saveSession(ctx context.Context, sessionID string, session *models.CartSession) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}
	if err := s.Cache.Set(ctx, cartKey(sessionID), data, utils.CartSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache cart session: %w", err)
	}
	return nil
}

// AddItem validates a candidate slot, checks its availability against the
// stored bookings around its date, prices it, and appends it to the cart.
func (s *DefaultBookingSessionService) AddItem(ctx context.Context, sessionID string, input CartItemInput) (*models.CartSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ValidateCartItem(input); err != nil {
		return nil, err
	}

	existing, err := s.bookingsAround(input.CourtID, input.Date)
	if err != nil {
		return nil, err
	}
	if !schedule.IsSlotAvailable(input.Date, input.StartTime, input.DurationHours, existing, s.Hours) {
		return nil, &ConflictError{Date: input.Date, StartTime: input.StartTime, CourtID: input.CourtID}
	}

	endTime, err := schedule.EndTimeOf(input.StartTime, input.DurationHours)
	if err != nil {
		return nil, &ValidationError{Field: "startTime", Message: "start time out of range"}
	}

	courtName := "Unknown Court"
	if court, err := s.CourtRepo.GetByID(input.CourtID); err == nil {
		courtName = court.Name
	} else {
		utils.GetLogger().Warn("AddItem: court lookup failed",
			zap.Int("courtID", input.CourtID), zap.Error(err))
	}

	item := models.CartItem{
		ID:            uuid.New().String(),
		CustomerName:  input.CustomerName,
		Sport:         input.Sport,
		PeopleCount:   input.PeopleCount,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       endTime,
		DurationHours: input.DurationHours,
		CourtID:       input.CourtID,
		CourtName:     courtName,
		Price:         schedule.CalculatePrice(input.Date, input.StartTime, input.DurationHours, s.Rates),
	}
	session.Items = append(session.Items, item)

	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RemoveItem drops an item from the cart.
func (s *DefaultBookingSessionService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := session.Items[:0]
	for _, it := range session.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	session.Items = kept

	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CheckAvailability answers the live availability query the booking form
// polls while the customer picks a time.
func (s *DefaultBookingSessionService) CheckAvailability(q SlotQuery) (bool, error) {
	existing, err := s.bookingsAround(q.CourtID, q.Date)
	if err != nil {
		return false, err
	}
	return schedule.IsSlotAvailable(q.Date, q.StartTime, q.DurationHours, existing, s.Hours), nil
}

// QuotePrice returns the live price estimate for a candidate slot.
func (s *DefaultBookingSessionService) QuotePrice(q SlotQuery) int {
	return schedule.CalculatePrice(q.Date, q.StartTime, q.DurationHours, s.Rates)
}

// bookingsAround fetches the non-rejected bookings for the court on the
// candidate date and its neighbours. Midnight-crossing slots can collide
// with bookings a calendar day away in either direction, so the window is
// always three days wide.
func (s *DefaultBookingSessionService) bookingsAround(courtID int, date string) ([]models.Booking, error) {
	prev, err := schedule.ShiftDate(date, -1)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "invalid calendar date"}
	}
	next, err := schedule.ShiftDate(date, 1)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "invalid calendar date"}
	}
	existing, err := s.Repo.GetByCourtAndDates(courtID, []string{prev, date, next})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for conflict check: %w", err)
	}
	return existing, nil
}
