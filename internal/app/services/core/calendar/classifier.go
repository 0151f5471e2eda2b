package calendar

import "booking-service/internal/app/models"

type SlotState string

const (
	StateFreePreferred SlotState = "free-and-preferred"
	StateFreeOther     SlotState = "free-and-other"
	StateBookedByMe    SlotState = "booked-by-me"
	StateBookedByOther SlotState = "booked-by-other"
)

func (s SlotState) IsFree() bool {
	return s == StateFreePreferred || s == StateFreeOther
}

// Classify decides how a slot is presented to viewer. Ownership is an exact,
// case sensitive match of the assigned display name against the viewer's
// username. An empty preference set marks every free slot as preferred.
func Classify(slot models.Slot, viewer models.Identity, prefs models.PreferenceSet) SlotState {
	if slot.IsFree() {
		if len(prefs) == 0 || prefs.Contains(slot.Category.ID) {
			return StateFreePreferred
		}
		return StateFreeOther
	}

	if viewer.Authenticated && viewer.Username != "" && *slot.User == viewer.Username {
		return StateBookedByMe
	}
	return StateBookedByOther
}
