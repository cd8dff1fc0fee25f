package services

import (
	"context"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"

	"gorm.io/gorm"
)

// LogStore is the read surface the aggregation paths depend on.
type LogStore interface {
	// QueryByOwnerAndRange returns logs with start <= OccurredAt < end,
	// ascending by OccurredAt.
	QueryByOwnerAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.Log, error)
	CountByOwner(ctx context.Context, userID uint) (int64, error)
	CountByOwnerAndRange(ctx context.Context, userID uint, start, end time.Time) (int64, error)
	// CountActiveDays returns the number of distinct UTC calendar days with
	// at least one log in [start, end).
	CountActiveDays(ctx context.Context, userID uint, start, end time.Time) (int64, error)
	ExistsByOwnerAndDay(ctx context.Context, userID uint, day time.Time) (bool, error)
	// MostRecentByOwner returns up to limit logs, newest created first.
	MostRecentByOwner(ctx context.Context, userID uint, limit int) ([]models.Log, error)
}

type GormLogStore struct{ db *gorm.DB }

func NewGormLogStore(db *gorm.DB) *GormLogStore { return &GormLogStore{db: db} }

func (s *GormLogStore) QueryByOwnerAndRange(ctx context.Context, userID uint, start, end time.Time) ([]models.Log, error) {
	var logs []models.Log
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}

func (s *GormLogStore) CountByOwner(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Log{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (s *GormLogStore) CountByOwnerAndRange(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Log{}).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Count(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (s *GormLogStore) CountActiveDays(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Raw(
		`SELECT COUNT(DISTINCT DATE(occurred_at AT TIME ZONE 'UTC')) FROM logs WHERE user_id = ? AND occurred_at >= ? AND occurred_at < ? AND deleted_at IS NULL`,
		userID, start, end,
	).Scan(&n).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (s *GormLogStore) ExistsByOwnerAndDay(ctx context.Context, userID uint, day time.Time) (bool, error) {
	dayStart := dayStartUTC(day)
	n, err := s.CountByOwnerAndRange(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *GormLogStore) MostRecentByOwner(ctx context.Context, userID uint, limit int) ([]models.Log, error) {
	var logs []models.Log
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}
