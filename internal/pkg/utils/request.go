package utils

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst and validates it.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(dst)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// ParseWeekOffset reads ?week=N. A missing value means the current week.
func ParseWeekOffset(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(constvars.QueryParamWeek)
	if raw == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrQueryParamValidation(err, constvars.QueryParamWeek)
	}
	if offset > constvars.QueryParamWeekMax || offset < -constvars.QueryParamWeekMax {
		return 0, exceptions.ErrQueryParamValidation(errors.New("week offset out of range"), constvars.QueryParamWeek)
	}
	return offset, nil
}

func ParseSlotID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, constvars.URLParamSlotID)
	slotID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, constvars.URLParamSlotID)
	}
	if slotID <= 0 {
		return 0, exceptions.ErrURLParamValidation(errors.New("slot id must be positive"), constvars.URLParamSlotID)
	}
	return slotID, nil
}

// BearerToken returns the credential of an Authorization: Bearer header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
}
