package calendar

import (
	"fmt"
	"strings"
	"time"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/utils"
)

type ProjectedSlot struct {
	models.Slot
	Start time.Time
	// End is zero when the end timestamp cannot be parsed.
	End time.Time
}

type DayBucket struct {
	Date  time.Time
	Slots []ProjectedSlot
}

type Week struct {
	Offset int
	Start  time.Time
	Days   [DaysPerWeek]DayBucket
}

type InvalidSlot struct {
	SlotID int
	Err    error
}

// ProjectionError lists the slots that were left out of a projection
// because their start timestamp could not be parsed.
type ProjectionError struct {
	Invalid []InvalidSlot
}

func (e *ProjectionError) Error() string {
	parts := make([]string, 0, len(e.Invalid))
	for _, invalid := range e.Invalid {
		parts = append(parts, fmt.Sprintf("slot %d: %v", invalid.SlotID, invalid.Err))
	}
	return fmt.Sprintf("%d slot(s) with unparsable start time: %s", len(e.Invalid), strings.Join(parts, "; "))
}

func (e *ProjectionError) Unwrap() []error {
	errs := make([]error, 0, len(e.Invalid))
	for _, invalid := range e.Invalid {
		errs = append(errs, invalid.Err)
	}
	return errs
}

// Project groups slots into the seven days, Monday to Sunday, of the week
// at offset relative to now. A slot lands in the bucket whose date equals
// the local date of its start. Slots starting outside the week are left
// out. Slots with an unparsable start are reported through a
// *ProjectionError while the returned Week stays complete.
//
// Project does not modify slots and, for a fixed now, always returns the
// same Week.
func Project(slots []models.Slot, offset int, now time.Time) (Week, error) {
	loc := now.Location()
	week := Week{
		Offset: offset,
		Start:  WeekStart(now, offset),
	}
	for i := range week.Days {
		week.Days[i] = DayBucket{
			Date:  addDays(week.Start, i),
			Slots: []ProjectedSlot{},
		}
	}

	var invalid []InvalidSlot
	for _, slot := range slots {
		start, err := utils.ParseTimestamp(slot.StartTime, loc)
		if err != nil {
			invalid = append(invalid, InvalidSlot{SlotID: slot.ID, Err: err})
			continue
		}
		start = start.In(loc)

		projected := ProjectedSlot{Slot: slot, Start: start}
		if end, err := utils.ParseTimestamp(slot.EndTime, loc); err == nil {
			projected.End = end.In(loc)
		}

		for i := range week.Days {
			if sameDate(start, week.Days[i].Date) {
				week.Days[i].Slots = append(week.Days[i].Slots, projected)
				break
			}
		}
	}

	if len(invalid) > 0 {
		return week, &ProjectionError{Invalid: invalid}
	}
	return week, nil
}
