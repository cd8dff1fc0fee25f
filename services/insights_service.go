package services

import (
	"context"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"

	"golang.org/x/sync/errgroup"
)

const defaultLookbackDays = 30

// Reserved meal-period tags counted in the meal distribution. Free-form tags
// still show up in topTags but never here.
var reservedMealTags = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type MealCount struct {
	Meal  string `json:"meal"`
	Count int    `json:"count"`
}

type FeedbackCount struct {
	Feedback string `json:"feedback"`
	Count    int    `json:"count"`
}

type InsightsPayload struct {
	AvgMealsPerDay           float64         `json:"avgMealsPerDay"`
	LongestStreak            int             `json:"longestStreak"`
	CurrentStreak            int             `json:"currentStreak"`
	MostCommonTime           *string         `json:"mostCommonTime"`
	MealsPerDay              []DayCount      `json:"mealsPerDay"`
	MealDistribution         map[string]int  `json:"mealDistribution"`
	TopTags                  []TagCount      `json:"topTags"`
	TopMeals                 []MealCount     `json:"topMeals"`
	TopPhysicalFeedback      []FeedbackCount `json:"topPhysicalFeedback"`
	NoOfDaysLogged           int             `json:"noOfDaysLogged"`
	ConsistencyChangePercent float64         `json:"consistencyChangePercent"`
}

type InsightsService struct {
	store LogStore
	now   func() time.Time
}

func NewInsightsService(store LogStore) *InsightsService {
	return &InsightsService{store: store, now: time.Now}
}

// Insights builds the full insights payload for one user over a trailing
// lookback window, comparing consistency against the equal-length window
// immediately before it. lookbackDays <= 0 falls back to the 30-day default.
// The two store reads are independent and fan out; if either fails the whole
// call fails.
func (s *InsightsService) Insights(ctx context.Context, userID uint, lookbackDays int) (*InsightsPayload, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if lookbackDays <= 0 {
		lookbackDays = defaultLookbackDays
	}

	now := s.now().UTC()
	start := now.AddDate(0, 0, -lookbackDays)
	prevStart := start.AddDate(0, 0, -lookbackDays)

	var (
		logs         []models.Log
		previousDays int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.store.QueryByOwnerAndRange(gctx, userID, start, now)
		return err
	})
	g.Go(func() error {
		var err error
		previousDays, err = s.store.CountActiveDays(gctx, userID, prevStart, start)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := bucketByDay(logs)
	days := make([]time.Time, len(buckets))
	mealsPerDay := make([]DayCount, len(buckets))
	totalMeals := 0
	for i, b := range buckets {
		days[i] = b.Day
		totalMeals += b.Count
		mealsPerDay[i] = DayCount{Date: b.Day.Format("Jan 02"), Count: b.Count}
	}

	currentConsistency := len(buckets)

	// Time-of-day histogram; ties resolve in fixed bucket order.
	timeCounts := make(map[string]int, len(timeOfDayLabels))
	for _, l := range logs {
		timeCounts[timeOfDayBucket(l.OccurredAt.UTC().Hour())]++
	}
	var mostCommonTime *string
	best := 0
	for i := range timeOfDayLabels {
		if timeCounts[timeOfDayLabels[i]] > best {
			best = timeCounts[timeOfDayLabels[i]]
			mostCommonTime = &timeOfDayLabels[i]
		}
	}

	dishes := make([]string, 0, len(logs))
	tags := make([]string, 0, len(logs))
	feedback := make([]string, 0, len(logs))
	distribution := map[string]int{}
	for _, l := range logs {
		dishes = append(dishes, l.DishName)
		for _, t := range l.Tags {
			tags = append(tags, t)
			if reservedMealTags[t] {
				distribution[t]++
			}
		}
		feedback = append(feedback, l.PhysicalFeedback...)
	}

	topMeals := make([]MealCount, 0, 5)
	for _, lc := range countTop(dishes, 5) {
		topMeals = append(topMeals, MealCount{Meal: lc.label, Count: lc.count})
	}
	topTags := make([]TagCount, 0, 5)
	for _, lc := range countTop(tags, 5) {
		topTags = append(topTags, TagCount{Tag: lc.label, Count: lc.count})
	}
	topFeedback := make([]FeedbackCount, 0, 5)
	for _, lc := range countTop(feedback, 5) {
		topFeedback = append(topFeedback, FeedbackCount{Feedback: lc.label, Count: lc.count})
	}

	return &InsightsPayload{
		// Denominator is the requested window length, not active days, so
		// empty days pull the average down.
		AvgMealsPerDay:           round1(float64(totalMeals) / float64(lookbackDays)),
		LongestStreak:            longestStreak(days),
		CurrentStreak:            currentStreak(days),
		MostCommonTime:           mostCommonTime,
		MealsPerDay:              mealsPerDay,
		MealDistribution:         distribution,
		TopTags:                  topTags,
		TopMeals:                 topMeals,
		TopPhysicalFeedback:      topFeedback,
		NoOfDaysLogged:           currentConsistency,
		ConsistencyChangePercent: percentChange(float64(currentConsistency), float64(previousDays)),
	}, nil
}
