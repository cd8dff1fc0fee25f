package services

import (
	"context"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"

	"golang.org/x/sync/errgroup"
)

// streakScanCap bounds the backward day-walk so one summary of a stale
// account can't turn into an unbounded series of existence probes.
const streakScanCap = 366

type SummaryPayload struct {
	MealsToday     int64        `json:"mealsToday"`
	TotalMeals     int64        `json:"totalMeals"`
	Streak         int          `json:"streak"`
	RecentMeals    []models.Log `json:"recentMeals"`
	MealsPerDay    []DayCount   `json:"mealsPerDay"`
	AvgMealsPerDay float64      `json:"avgMealsPerDay"`
}

type DashboardService struct {
	store LogStore
	now   func() time.Time
}

func NewDashboardService(store LogStore) *DashboardService {
	return &DashboardService{store: store, now: time.Now}
}

// Summary assembles the today-focused dashboard view: today's count,
// all-time count, current streak, five most recent entries and the 30-day
// trend. The independent reads fan out; any failure fails the whole call.
func (s *DashboardService) Summary(ctx context.Context, userID uint) (*SummaryPayload, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	now := s.now().UTC()
	today := dayStartUTC(now)

	var (
		mealsToday int64
		totalMeals int64
		streak     int
		recent     []models.Log
		trend      []models.Log
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mealsToday, err = s.store.CountByOwnerAndRange(gctx, userID, today, today.AddDate(0, 0, 1))
		return err
	})
	g.Go(func() error {
		var err error
		totalMeals, err = s.store.CountByOwner(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		streak, err = s.walkStreak(gctx, userID, today)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.store.MostRecentByOwner(gctx, userID, 5)
		return err
	})
	g.Go(func() error {
		var err error
		trend, err = s.store.QueryByOwnerAndRange(gctx, userID, now.AddDate(0, 0, -defaultLookbackDays), now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := bucketByDay(trend)
	mealsPerDay := make([]DayCount, len(buckets))
	totalInTrend := 0
	for i, b := range buckets {
		mealsPerDay[i] = DayCount{Date: b.Day.Format("Jan 02"), Count: b.Count}
		totalInTrend += b.Count
	}

	if recent == nil {
		recent = []models.Log{}
	}

	return &SummaryPayload{
		MealsToday:     mealsToday,
		TotalMeals:     totalMeals,
		Streak:         streak,
		RecentMeals:    recent,
		MealsPerDay:    mealsPerDay,
		AvgMealsPerDay: round1(float64(totalInTrend) / float64(defaultLookbackDays)),
	}, nil
}

// walkStreak probes day-by-day backward from today and stops at the first
// day with no logs.
func (s *DashboardService) walkStreak(ctx context.Context, userID uint, today time.Time) (int, error) {
	streak := 0
	for day := today; streak < streakScanCap; day = day.AddDate(0, 0, -1) {
		ok, err := s.store.ExistsByOwnerAndDay(ctx, userID, day)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		streak++
	}
	return streak, nil
}
