package services

import (
	"math"
	"sort"
	"time"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"
)

// All day-boundary math is pinned to UTC.

type DayBucket struct {
	Day   time.Time
	Count int
}

func dayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// bucketByDay groups logs by the UTC calendar day of OccurredAt. Days
// without logs are absent; the result is ascending by day.
func bucketByDay(logs []models.Log) []DayBucket {
	counts := make(map[time.Time]int, len(logs))
	for _, l := range logs {
		counts[dayStartUTC(l.OccurredAt)]++
	}

	out := make([]DayBucket, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayBucket{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// longestStreak returns the longest run of consecutive days. days must be
// sorted ascending; duplicate entries are tolerated and ignored.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		switch {
		case days[i].Equal(days[i-1]):
			// duplicate day
		case days[i].Sub(days[i-1]) == 24*time.Hour:
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// currentStreak returns the run of consecutive days ending at the most
// recent day present, scanning backward until the first gap. days must be
// sorted ascending.
func currentStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		switch {
		case days[i].Equal(days[i-1]):
			// duplicate day
		case days[i].Sub(days[i-1]) == 24*time.Hour:
			streak++
		default:
			return streak
		}
	}
	return streak
}

// percentChange follows the zero-baseline convention: any growth from zero
// reads as +100%, and zero-to-zero as no change.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Time-of-day buckets, in fixed order. The label text rides along to the
// frontend unchanged.
var timeOfDayLabels = []string{
	"Breakfast,5-10 AM",
	"Lunch,10 AM-2 PM",
	"Snack,2-5 PM",
	"Dinner,5-9 PM",
	"Late,9 PM-5 AM",
}

func timeOfDayBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 10:
		return timeOfDayLabels[0]
	case hour >= 10 && hour < 14:
		return timeOfDayLabels[1]
	case hour >= 14 && hour < 17:
		return timeOfDayLabels[2]
	case hour >= 17 && hour < 21:
		return timeOfDayLabels[3]
	default:
		return timeOfDayLabels[4]
	}
}

type labelCount struct {
	label string
	count int
	seen  int
}

// countTop tallies values and returns the top n by count. Ties break by
// first occurrence so repeated calls over identical data stay stable.
func countTop(values []string, n int) []labelCount {
	counts := make(map[string]*labelCount, len(values))
	order := 0
	for _, v := range values {
		if lc, ok := counts[v]; ok {
			lc.count++
		} else {
			counts[v] = &labelCount{label: v, count: 1, seen: order}
			order++
		}
	}

	out := make([]labelCount, 0, len(counts))
	for _, lc := range counts {
		out = append(out, *lc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].seen < out[j].seen
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
