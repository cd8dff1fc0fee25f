package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"

	"gorm.io/gorm"
)

type LogService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewLogService(db *gorm.DB, hub *RealtimeHub, push *PushService) *LogService {
	return &LogService{db: db, hub: hub, push: push}
}

type LogInput struct {
	DishName          string    `json:"dishName" binding:"required"`
	Image             string    `json:"image"`
	Ingredients       []string  `json:"ingredients" binding:"required"`
	PreparationMethod string    `json:"preparationMethod"`
	Servings          int       `json:"servings" binding:"required"`
	Calories          int       `json:"calories" binding:"required"`
	PhysicalFeedback  []string  `json:"physicalFeedback" binding:"required"`
	Tags              []string  `json:"tags" binding:"required"`
	MoodBefore        string    `json:"moodBeforeSelection"`
	MoodAfter         string    `json:"moodAfterSelection"`
	Reflection        string    `json:"reflection"`
	OccurredAt        time.Time `json:"date" binding:"required"`
}

type LogUpdateInput struct {
	DishName          *string    `json:"dishName"`
	Image             *string    `json:"image"`
	Ingredients       []string   `json:"ingredients"`
	PreparationMethod *string    `json:"preparationMethod"`
	Servings          *int       `json:"servings"`
	Calories          *int       `json:"calories"`
	PhysicalFeedback  []string   `json:"physicalFeedback"`
	Tags              []string   `json:"tags"`
	MoodBefore        *string    `json:"moodBeforeSelection"`
	MoodAfter         *string    `json:"moodAfterSelection"`
	Reflection        *string    `json:"reflection"`
	OccurredAt        *time.Time `json:"date"`
}

func (in LogUpdateInput) empty() bool {
	return in.DishName == nil && in.Image == nil && in.Ingredients == nil &&
		in.PreparationMethod == nil && in.Servings == nil && in.Calories == nil &&
		in.PhysicalFeedback == nil && in.Tags == nil && in.MoodBefore == nil &&
		in.MoodAfter == nil && in.Reflection == nil && in.OccurredAt == nil
}

func (s *LogService) Create(ctx context.Context, userID uint, in LogInput) (*models.Log, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	entry := models.Log{
		UserID:            userID,
		DishName:          strings.TrimSpace(in.DishName),
		Image:             in.Image,
		Ingredients:       normalizeSet(in.Ingredients),
		PreparationMethod: strings.TrimSpace(in.PreparationMethod),
		Servings:          in.Servings,
		Calories:          in.Calories,
		PhysicalFeedback:  normalizeSet(in.PhysicalFeedback),
		Tags:              normalizeSet(in.Tags),
		MoodBefore:        in.MoodBefore,
		MoodAfter:         in.MoodAfter,
		Reflection:        strings.TrimSpace(in.Reflection),
		OccurredAt:        in.OccurredAt.UTC(),
	}
	if entry.DishName == "" {
		return nil, fmt.Errorf("%w: dishName is required", ErrInvalidArgument)
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, storeErr(err)
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{"event": "log.created", "log": entry})
	}
	if s.push != nil {
		go s.push.NotifyLogCreated(userID, &entry)
	}
	return &entry, nil
}

func (s *LogService) GetByID(ctx context.Context, userID, logID uint) (*models.Log, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	var entry models.Log
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

// ListByDay returns the user's logs recorded on the given UTC calendar day.
func (s *LogService) ListByDay(ctx context.Context, userID uint, day time.Time) ([]models.Log, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	start := dayStartUTC(day)
	var logs []models.Log
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, start.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}

func (s *LogService) Update(ctx context.Context, userID, logID uint, in LogUpdateInput) (*models.Log, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if in.empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidArgument)
	}

	var entry models.Log
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		return nil, storeErr(err)
	}

	// Identity, owner and creation timestamp are never patchable.
	if in.DishName != nil {
		entry.DishName = strings.TrimSpace(*in.DishName)
	}
	if in.Image != nil {
		entry.Image = *in.Image
	}
	if in.Ingredients != nil {
		entry.Ingredients = normalizeSet(in.Ingredients)
	}
	if in.PreparationMethod != nil {
		entry.PreparationMethod = strings.TrimSpace(*in.PreparationMethod)
	}
	if in.Servings != nil {
		entry.Servings = *in.Servings
	}
	if in.Calories != nil {
		entry.Calories = *in.Calories
	}
	if in.PhysicalFeedback != nil {
		entry.PhysicalFeedback = normalizeSet(in.PhysicalFeedback)
	}
	if in.Tags != nil {
		entry.Tags = normalizeSet(in.Tags)
	}
	if in.MoodBefore != nil {
		entry.MoodBefore = *in.MoodBefore
	}
	if in.MoodAfter != nil {
		entry.MoodAfter = *in.MoodAfter
	}
	if in.Reflection != nil {
		entry.Reflection = strings.TrimSpace(*in.Reflection)
	}
	if in.OccurredAt != nil {
		entry.OccurredAt = in.OccurredAt.UTC()
	}

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (s *LogService) Delete(ctx context.Context, userID, logID uint) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.Log{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LogService) DeleteMany(ctx context.Context, userID uint, logIDs []uint) (int64, error) {
	if userID == 0 {
		return 0, ErrNotAuthenticated
	}
	if len(logIDs) == 0 {
		return 0, fmt.Errorf("%w: logs parameter is required", ErrInvalidArgument)
	}

	res := s.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", logIDs, userID).
		Delete(&models.Log{})
	if res.Error != nil {
		return 0, storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}

// SearchIngredients prefix-matches ingredient names for the typeahead.
// Queries shorter than two characters return nothing.
func (s *LogService) SearchIngredients(ctx context.Context, query string) ([]models.Ingredient, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.Ingredient{}, nil
	}

	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("name ILIKE ?", query+"%").
		Limit(10).
		Find(&ingredients).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return ingredients, nil
}

// normalizeSet trims entries, drops empties and keeps the first occurrence
// of each value. Aggregation downstream assumes clean string sets.
func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
