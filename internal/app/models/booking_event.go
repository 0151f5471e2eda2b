package models

import "time"

type BookingEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	SlotID       int       `json:"slot_id,omitempty"`
	Actor        string    `json:"actor"`
	TargetUserID *int      `json:"target_user_id,omitempty"`
	CategoryIDs  []int     `json:"category_ids,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
