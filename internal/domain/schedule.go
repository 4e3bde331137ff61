package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SlotStatus mirrors the is_available column.
type SlotStatus int

const (
	SlotBooked    SlotStatus = 0
	SlotAvailable SlotStatus = 1
	SlotDayOff    SlotStatus = 2
)

func (s SlotStatus) String() string {
	switch s {
	case SlotBooked:
		return "booked"
	case SlotAvailable:
		return "available"
	case SlotDayOff:
		return "day off"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

const DateLayout = "2006-01-02"

type ScheduleSlot struct {
	ID          int64      `json:"id"`
	MasterID    int64      `json:"master_id"`
	WorkDate    string     `json:"work_date"`
	WorkTime    string     `json:"work_time"`
	IsAvailable SlotStatus `json:"is_available"`
}

// FullTime is the date+time label stored on the booking that consumes the slot.
func (s *ScheduleSlot) FullTime() string {
	return s.WorkDate + " " + s.WorkTime
}

func (s *ScheduleSlot) Date() (time.Time, error) {
	return time.Parse(DateLayout, s.WorkDate)
}

// DaysIn returns the number of days in month of year (proleptic Gregorian).
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DayOffPolicy decides what happens to booked slots on a day marked off.
type DayOffPolicy string

const (
	DayOffKeepBooked DayOffPolicy = "keep-booked"
	DayOffOverwrite  DayOffPolicy = "overwrite"
	DayOffReject     DayOffPolicy = "reject"
)

func ParseDayOffPolicy(s string) (DayOffPolicy, error) {
	switch v := DayOffPolicy(s); v {
	case DayOffKeepBooked, DayOffOverwrite, DayOffReject:
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown day-off policy %q", ErrValidation, s)
}

// TimeOfDay is the parsed form of a work_time label.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	if t.Hour != o.Hour {
		return t.Hour < o.Hour
	}
	return t.Minute < o.Minute
}

// ParseTimeLabel accepts "H", "HH", "H:MM", "HH:MM" with ':', '.' or '-' as separator.
func ParseTimeLabel(label string) (TimeOfDay, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return TimeOfDay{}, false
	}

	hourPart, minutePart := label, "00"
	if i := strings.IndexAny(label, ":.-"); i >= 0 {
		hourPart, minutePart = label[:i], label[i+1:]
		if len(minutePart) != 2 {
			return TimeOfDay{}, false
		}
	}
	if len(hourPart) == 0 || len(hourPart) > 2 {
		return TimeOfDay{}, false
	}

	h, err := strconv.Atoi(hourPart)
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, false
	}
	m, err := strconv.Atoi(minutePart)
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: h, Minute: m}, true
}

// NormalizeTimeLabels trims labels, rewrites parseable ones as HH:MM and orders them:
// parsed labels chronologically, free-text labels after them in input order.
// Blank labels are dropped; repeated labels are kept.
func NormalizeTimeLabels(labels []string) []string {
	type entry struct {
		label  string
		tod    TimeOfDay
		parsed bool
	}

	entries := make([]entry, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if tod, ok := ParseTimeLabel(l); ok {
			entries = append(entries, entry{label: tod.String(), tod: tod, parsed: true})
			continue
		}
		entries = append(entries, entry{label: l})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.parsed != b.parsed {
			return a.parsed
		}
		if !a.parsed {
			return false
		}
		return a.tod.Before(b.tod)
	})

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.label)
	}
	return out
}
