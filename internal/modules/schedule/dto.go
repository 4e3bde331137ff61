package schedule

import "salonbook/internal/domain"

type GenerateRequest struct {
	MasterID int64 `validate:"gt=0"`
	Year     int   `validate:"gte=1"`
	Month    int   `validate:"min=1,max=12"`
	Times    []string
}

// SlotFailure is a (date, time) pair that could not be stored for a reason other than a duplicate.
type SlotFailure struct {
	Date string
	Time string
	Err  error
}

type GenerateResult struct {
	Created    int
	Duplicates []domain.DuplicateSlotError
	Failures   []SlotFailure
}

type DaysOffRequest struct {
	MasterID int64 `validate:"gt=0"`
	Year     int   `validate:"gte=1"`
	Month    int   `validate:"min=1,max=12"`
	Days     []int
}

// DayOffResult reports one requested day. Err is set when the day was skipped.
type DayOffResult struct {
	Day        int
	Date       string
	Marked     int64
	KeptBooked int64
	Err        error
}
