package services

import (
	"errors"
	"math"
	"time"

	"tickoff-app/tickoff/database"
	"tickoff-app/tickoff/models"

	"gorm.io/gorm"
)

// TodoDurationStats reports how long a single todo stayed open, derived
// from its timestamps. No rounding is applied.
type TodoDurationStats struct {
	DurationSeconds float64 `json:"duration_seconds"`
	DurationMinutes float64 `json:"duration_minutes"`
	DurationHours   float64 `json:"duration_hours"`
}

// MonthlyDurationStats is the aggregate over the caller's todos for the
// current calendar month. The field names are kept exactly as clients
// already consume them: TotalMonths carries the day-count of the month,
// AverageDurationByDay holds per-day sums of tier-scaled durations, and
// TotalSeconds is the sum of those scaled values rather than true
// seconds.
type MonthlyDurationStats struct {
	TotalMonths          int   `json:"totalMonths"`
	TotalSeconds         int   `json:"totalSeconds"`
	AverageDurationByDay []int `json:"averageDurationByDay"`
	DaysInMonth          int   `json:"daysInMonth"`
}

type DurationServiceInterface interface {
	TodoAverageDuration(db *database.Database, id uint, userID uint) (TodoDurationStats, error)
	MonthlyAverageDuration(db *database.Database, userID uint, now time.Time) (MonthlyDurationStats, error)
}

type DurationService struct{}

func (s *DurationService) TodoAverageDuration(db *database.Database, id uint, userID uint) (TodoDurationStats, error) {
	var todo models.Todo
	if err := db.DB.First(&todo, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TodoDurationStats{}, ErrTodoNotFound
		}
		return TodoDurationStats{}, err
	}

	seconds := todo.UpdatedAt.Sub(todo.CreatedAt).Seconds()
	minutes := seconds / 60
	hours := minutes / 60

	return TodoDurationStats{
		DurationSeconds: seconds,
		DurationMinutes: minutes,
		DurationHours:   hours,
	}, nil
}

func (s *DurationService) MonthlyAverageDuration(db *database.Database, userID uint, now time.Time) (MonthlyDurationStats, error) {
	var todos []models.Todo
	if err := db.DB.Where("user_id = ?", userID).Find(&todos).Error; err != nil {
		return MonthlyDurationStats{}, err
	}

	return ComputeMonthlyDuration(todos, now), nil
}

// ComputeMonthlyDuration folds the given todos into one day-of-month
// bucket per day of now's month. Only records with both timestamps set
// whose creation falls in now's year and month contribute. Each duration
// is tier-scaled before summing: raw seconds below a minute, minutes
// below an hour, hours beyond that, each rounded up to a whole number.
// A negative duration from inconsistent timestamps is folded in as-is.
func ComputeMonthlyDuration(todos []models.Todo, now time.Time) MonthlyDurationStats {
	days := daysInMonth(now)
	durationByDay := make([]int, days)
	countByDay := make([]int, days)

	for i := range todos {
		todo := &todos[i]
		if todo.CreatedAt.IsZero() || todo.UpdatedAt.IsZero() {
			continue
		}
		if todo.CreatedAt.Year() != now.Year() || todo.CreatedAt.Month() != now.Month() {
			continue
		}

		dayIndex := todo.CreatedAt.Day() - 1
		seconds := todo.UpdatedAt.Sub(todo.CreatedAt).Seconds()

		switch {
		case seconds < 60:
			durationByDay[dayIndex] += int(math.Ceil(seconds))
		case seconds < 3600:
			durationByDay[dayIndex] += int(math.Ceil(seconds / 60))
		default:
			durationByDay[dayIndex] += int(math.Ceil(seconds / 3600))
		}
		countByDay[dayIndex]++
	}

	// Per-day counts are tracked but never divided through; the payload
	// reports the raw per-day sums.
	totalSeconds := 0
	for _, v := range durationByDay {
		totalSeconds += v
	}

	return MonthlyDurationStats{
		TotalMonths:          days,
		TotalSeconds:         totalSeconds,
		AverageDurationByDay: durationByDay,
		DaysInMonth:          days,
	}
}

// daysInMonth returns the number of days in now's calendar month; day
// zero of the following month normalizes to the last day of this one.
func daysInMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}

var DurationServiceInstance DurationServiceInterface = &DurationService{}
