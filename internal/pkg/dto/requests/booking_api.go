package requests

// Payloads sent to the external booking API.

type APIToken struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type APIRegister struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type APISlotWrite struct {
	CategoryID *int    `json:"category_id,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
}

// APISlotAssign always serializes user_id, a nil UserID unassigns the slot.
type APISlotAssign struct {
	UserID *int `json:"user_id"`
}

type APIPreferences struct {
	CategoriesIDs []int `json:"categories_ids"`
}
