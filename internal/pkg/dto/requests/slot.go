package requests

type CreateSlot struct {
	CategoryID int    `json:"category_id" validate:"required,gt=0"`
	StartTime  string `json:"start_time" validate:"required,datetime_local"`
	EndTime    string `json:"end_time" validate:"required,datetime_local"`
}

// UpdateSlot is a partial edit, absent fields keep their value.
type UpdateSlot struct {
	CategoryID *int    `json:"category_id" validate:"omitempty,gt=0"`
	StartTime  *string `json:"start_time" validate:"omitempty,datetime_local"`
	EndTime    *string `json:"end_time" validate:"omitempty,datetime_local"`
}

type AssignSlot struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

type UpdatePreferences struct {
	CategoriesIDs []int `json:"categories_ids" validate:"required,dive,gt=0"`
}
