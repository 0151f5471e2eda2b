package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
)

const (
	REQUEST_ID_PREFIX = "BKNG_SVC_"
)

// Session cookie and redis key layout.
const (
	SessionCookieName     = "session_id"
	SessionRedisKeyPrefix = "session:"
)

// Paths of the external booking API, relative to its base URL.
const (
	ResourceToken       = "/token/"
	ResourceRegister    = "/register/"
	ResourceCategories  = "/categories/"
	ResourceSlots       = "/slots/"
	ResourcePreferences = "/preferences/"
	ResourceUsers       = "/users/"

	SlotActionBook        = "book/"
	SlotActionUnsubscribe = "unsubscribe/"
)

const (
	URLParamSlotID    = "slotID"
	QueryParamWeek    = "week"
	QueryParamWeekMax = 520
)

const (
	BookingEventSlotBooked       = "slot.booked"
	BookingEventSlotUnsubscribed = "slot.unsubscribed"
	BookingEventSlotCreated      = "slot.created"
	BookingEventSlotUpdated      = "slot.updated"
	BookingEventSlotDeleted      = "slot.deleted"
	BookingEventSlotAssigned     = "slot.assigned"
	BookingEventSlotUnassigned   = "slot.unassigned"
	BookingEventPreferencesSet   = "preferences.updated"
)
