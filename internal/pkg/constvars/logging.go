package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingIsClientRequestID  = "is_client_request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingUsernameKey        = "username"
	LoggingSlotIDKey          = "slot_id"
	LoggingWeekOffsetKey      = "week_offset"
	LoggingInvalidSlotsKey    = "invalid_slots"
	LoggingEventTypeKey       = "event_type"
	LoggingErrorKey           = "error"
	LoggingResponseLengthKey  = "response_length"
	LoggingUpstreamURLKey     = "upstream_url"
	LoggingUpstreamStatusKey  = "upstream_status"
	LoggingSessionIDSuffixKey = "session_id_suffix"
)
