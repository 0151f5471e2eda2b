package constvars

// Messages shown for validator tags.
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"gt":             "must be greater than %s",
	"eqfield":        "must match %s",
	"datetime_local": "must be a date and time such as 2024-06-10T09:00",
	"no_whitespace":  "must not contain whitespace",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"gt":      true,
	"eqfield": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientStartMustBeBeforeEnd          = "start time must be before end time"
	ErrClientBookingServiceUnavailable     = "booking service is unavailable, please try again later"
	ErrClientInvalidWeekOffset             = "week must be an integer"
	ErrClientInvalidSlotID                 = "slot id must be a positive integer"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevURLParamValidation     = "failed to validate url param %s"
	ErrDevQueryParamValidation   = "failed to validate query param %s"
	ErrDevPasswordsDoNotMatch    = "passwords do not match"
	ErrDevStartNotBeforeEnd      = "start_time is not before end_time"
	ErrDevTooManyRequests        = "rate limit exceeded for %s"
	ErrDevUnknownPanic           = "recovered from panic of unknown type"

	// Booking API
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request to booking API"
	ErrDevDecodeResponse       = "failed to decode booking API response of %s"
	ErrDevBookingAPIRejected   = "booking API rejected %s %s with status %d"
	ErrDevBookingAPIUnexpected = "booking API answered %s %s with unexpected status %d"

	// Session
	ErrDevSessionMissing       = "session missing"
	ErrDevSessionNotFound      = "session not found"
	ErrDevSessionUndecodable   = "session credential cannot be decoded"
	ErrDevCredentialUndecoded  = "credential cannot be decoded"
	ErrDevGenerateSessionID    = "failed to generate session id"
	ErrDevRedisGetData         = "failed to get data from redis"
	ErrDevRedisGetNoData       = "no data found in redis for key %s"
	ErrDevRedisSetData         = "failed to set data to redis"
	ErrDevRedisDeleteData      = "failed to delete data from redis"
	ErrDevCalendarEncode       = "failed to encode calendar"
	ErrDevPublishBookingEvent  = "failed to publish booking event %s"
	ErrDevOpenMessagingChannel = "failed to open messaging channel"
)
