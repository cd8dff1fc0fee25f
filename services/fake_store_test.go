package services

import (
	"context"
	"sort"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"
)

// fakeStore is an in-memory LogStore for service tests.
type fakeStore struct {
	logs     []models.Log
	failWith error

	existsCalls int
	// when set, ExistsByOwnerAndDay always answers true (streak cap tests)
	alwaysActive bool
}

func (f *fakeStore) QueryByOwnerAndRange(_ context.Context, userID uint, start, end time.Time) ([]models.Log, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Log
	for _, l := range f.logs {
		if l.UserID == userID && !l.OccurredAt.Before(start) && l.OccurredAt.Before(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) CountByOwner(_ context.Context, userID uint) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, l := range f.logs {
		if l.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountByOwnerAndRange(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	logs, err := f.QueryByOwnerAndRange(ctx, userID, start, end)
	if err != nil {
		return 0, err
	}
	return int64(len(logs)), nil
}

func (f *fakeStore) CountActiveDays(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	logs, err := f.QueryByOwnerAndRange(ctx, userID, start, end)
	if err != nil {
		return 0, err
	}
	days := map[time.Time]struct{}{}
	for _, l := range logs {
		days[dayStartUTC(l.OccurredAt)] = struct{}{}
	}
	return int64(len(days)), nil
}

func (f *fakeStore) ExistsByOwnerAndDay(ctx context.Context, userID uint, day time.Time) (bool, error) {
	f.existsCalls++
	if f.failWith != nil {
		return false, f.failWith
	}
	if f.alwaysActive {
		return true, nil
	}
	n, err := f.CountByOwnerAndRange(ctx, userID, dayStartUTC(day), dayStartUTC(day).AddDate(0, 0, 1))
	return n > 0, err
}

func (f *fakeStore) MostRecentByOwner(_ context.Context, userID uint, limit int) ([]models.Log, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Log
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
