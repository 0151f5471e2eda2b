package calendar

import (
	"errors"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/responses"
)

const dateLayout = "2006-01-02"

// ResolveCategories completes slot categories against the category list.
// Slots carrying only a category name get the matching id, slots carrying
// only an id get the name. The input slice is left untouched.
func ResolveCategories(slots []models.Slot, categories []models.Category) []models.Slot {
	byID := make(map[int]models.Category, len(categories))
	byName := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
		byName[category.Name] = category
	}

	resolved := make([]models.Slot, len(slots))
	for i, slot := range slots {
		switch {
		case slot.Category.ID != 0 && slot.Category.Name == "":
			if category, ok := byID[slot.Category.ID]; ok {
				slot.Category.Name = category.Name
			}
		case slot.Category.ID == 0 && slot.Category.Name != "":
			if category, ok := byName[slot.Category.Name]; ok {
				slot.Category.ID = category.ID
			}
		}
		resolved[i] = slot
	}
	return resolved
}

type ViewOptions struct {
	Viewer  models.Identity
	Prefs   models.PreferenceSet
	Labeler *Labeler
	// ExposeUsers keeps the assigned display name on every slot. Without it
	// only the viewer's own bookings carry a name.
	ExposeUsers bool
}

// BuildView turns a projected week into its response shape. projectionErr
// is the error returned by Project, its slots end up in InvalidSlots.
func BuildView(week Week, projectionErr error, opts ViewOptions) *responses.Calendar {
	view := &responses.Calendar{
		WeekOffset: week.Offset,
		WeekStart:  week.Start.Format(dateLayout),
		Days:       make([]responses.CalendarDay, 0, len(week.Days)),
	}

	for _, day := range week.Days {
		calendarDay := responses.CalendarDay{
			Date:  day.Date.Format(dateLayout),
			Label: opts.Labeler.Day(day.Date),
			Slots: make([]responses.CalendarSlot, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			state := Classify(slot.Slot, opts.Viewer, opts.Prefs)
			calendarSlot := responses.CalendarSlot{
				ID:        slot.ID,
				Category:  responses.Category{ID: slot.Category.ID, Name: slot.Category.Name},
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				State:     string(state),
				Label:     opts.Labeler.FullDate(slot.Start),
				IsMine:    state == StateBookedByMe,
			}
			if opts.ExposeUsers || calendarSlot.IsMine {
				calendarSlot.User = slot.User
			}
			calendarDay.Slots = append(calendarDay.Slots, calendarSlot)
		}
		view.Days = append(view.Days, calendarDay)
	}

	var projectionError *ProjectionError
	if errors.As(projectionErr, &projectionError) {
		for _, invalid := range projectionError.Invalid {
			view.InvalidSlots = append(view.InvalidSlots, responses.InvalidSlot{
				ID:     invalid.SlotID,
				Reason: invalid.Err.Error(),
			})
		}
	}
	return view
}
