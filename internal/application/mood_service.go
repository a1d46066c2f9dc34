package application

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// WeekOverview is one cell per weekday, Monday first. A nil cell means no
// mood was recorded that day.
type WeekOverview struct {
	Days [7]*domain.MoodEntry
}

// MoodStats summarizes the month containing the reference time.
type MoodStats struct {
	MonthlyAverage float64
	GreatDays      int
	RecordedDays   int
	Streak         int
}

// MoodService manages the mood log. Entries are memory-only; saving a mood
// clears the caller's transient selection, it does not create a durable
// record.
type MoodService struct {
	log   *Collection[domain.MoodEntry]
	clock ports.Clock
}

func NewMoodService(clock ports.Clock) *MoodService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &MoodService{
		log:   NewCollection[domain.MoodEntry](OrderAppend),
		clock: clock,
	}
}

// Log records a mood with an optional note.
func (s *MoodService) Log(score domain.MoodScore, note string) (domain.MoodEntry, error) {
	if !score.Valid() {
		return domain.MoodEntry{}, domain.ErrInvalidMoodScore
	}

	return s.log.Add(domain.MoodEntry{
		ID:         domain.RecordID(uuid.NewString()),
		Score:      score,
		Note:       strings.TrimSpace(note),
		RecordedAt: s.clock.Now(),
	}), nil
}

func (s *MoodService) List() []domain.MoodEntry {
	return s.log.Items()
}

func (s *MoodService) Len() int {
	return s.log.Len()
}

func (s *MoodService) Seed(entries []domain.MoodEntry) {
	s.log.Seed(entries)
}

// Week maps the mood log onto the Monday-first week containing now,
// keeping the latest entry per day.
func (s *MoodService) Week(now time.Time) WeekOverview {
	monday := startOfWeek(now)
	sunday := monday.AddDate(0, 0, 7)

	var overview WeekOverview
	for _, entry := range s.log.Items() {
		if entry.RecordedAt.Before(monday) || !entry.RecordedAt.Before(sunday) {
			continue
		}

		entry := entry
		day := weekdayIndex(entry.RecordedAt)
		if prev := overview.Days[day]; prev == nil || entry.RecordedAt.After(prev.RecordedAt) {
			overview.Days[day] = &entry
		}
	}

	return overview
}

// Stats summarizes the month containing now.
func (s *MoodService) Stats(now time.Time) MoodStats {
	var (
		sum       int
		count     int
		greatDays = map[string]struct{}{}
		days      = map[string]struct{}{}
	)

	for _, entry := range s.log.Items() {
		if entry.RecordedAt.Year() != now.Year() || entry.RecordedAt.Month() != now.Month() {
			continue
		}

		sum += int(entry.Score)
		count++

		day := entry.RecordedAt.Format(time.DateOnly)
		days[day] = struct{}{}
		if entry.Score == domain.MoodGreat {
			greatDays[day] = struct{}{}
		}
	}

	stats := MoodStats{
		GreatDays:    len(greatDays),
		RecordedDays: len(days),
		Streak:       s.streak(now),
	}
	if count > 0 {
		stats.MonthlyAverage = float64(sum) / float64(count)
	}

	return stats
}

// streak counts consecutive recorded days ending today, or yesterday when
// today has no entry yet.
func (s *MoodService) streak(now time.Time) int {
	days := map[string]struct{}{}
	for _, entry := range s.log.Items() {
		days[entry.RecordedAt.Format(time.DateOnly)] = struct{}{}
	}

	day := now
	if _, ok := days[day.Format(time.DateOnly)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day.Format(time.DateOnly)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -weekdayIndex(day))
}

// weekdayIndex is 0 for Monday through 6 for Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
