package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"
	RegisterSuccessMessage = "registration successful"
	GetIdentitySuccess     = "get identity successfully"

	// Calendar messages
	GetCategoriesSuccess  = "get categories successfully"
	GetCalendarSuccess    = "get calendar successfully"
	GetPreferencesSuccess = "get preferences successfully"
	SetPreferencesSuccess = "preferences saved"
	GetUsersSuccess       = "get users successfully"

	// Slot messages
	SlotBookedSuccess       = "slot booked"
	SlotUnsubscribedSuccess = "booking cancelled"
	SlotCreatedSuccess      = "slot created"
	SlotUpdatedSuccess      = "slot updated"
	SlotDeletedSuccess      = "slot deleted"
	SlotAssignedSuccess     = "user assigned to slot"
	SlotUnassignedSuccess   = "user removed from slot"
)
