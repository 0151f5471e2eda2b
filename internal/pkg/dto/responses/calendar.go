package responses

type Identity struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	IsAdmin       bool   `json:"is_admin"`
	UserID        *int   `json:"user_id,omitempty"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Preferences struct {
	CategoriesIDs []int      `json:"categories_ids"`
	Categories    []Category `json:"categories"`
}

type Slot struct {
	ID        int      `json:"id"`
	Category  Category `json:"category"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	User      *string  `json:"user"`
}

type Calendar struct {
	WeekOffset   int           `json:"week_offset"`
	WeekStart    string        `json:"week_start"`
	Days         []CalendarDay `json:"days"`
	InvalidSlots []InvalidSlot `json:"invalid_slots,omitempty"`
	Users        []User        `json:"users,omitempty"`
}

type CalendarDay struct {
	Date  string         `json:"date"`
	Label string         `json:"label"`
	Slots []CalendarSlot `json:"slots"`
}

type CalendarSlot struct {
	ID        int      `json:"id"`
	Category  Category `json:"category"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	User      *string  `json:"user"`
	State     string   `json:"state"`
	Label     string   `json:"label"`
	IsMine    bool     `json:"is_mine"`
}

type InvalidSlot struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

type Detail struct {
	Detail string `json:"detail"`
}
