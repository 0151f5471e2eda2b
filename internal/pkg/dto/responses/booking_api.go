package responses

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Payloads received from the external booking API.

type APITokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type APICategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type APIUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type APISlot struct {
	ID         int             `json:"id"`
	Category   APISlotCategory `json:"category"`
	CategoryID *int            `json:"category_id"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	User       *string         `json:"user"`
}

// APISlotCategory accepts both the nested {id,name} shape and the bare
// category name the API emits for string related fields.
type APISlotCategory struct {
	ID   int
	Name string
}

func (c *APISlotCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &c.Name)
	case len(data) > 0 && data[0] == '{':
		var nested APICategory
		if err := json.Unmarshal(data, &nested); err != nil {
			return err
		}
		c.ID, c.Name = nested.ID, nested.Name
		return nil
	default:
		var id int
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("unsupported category value %s", string(data))
		}
		c.ID = id
		return nil
	}
}

type APIPreferences struct {
	Categories []APICategory `json:"categories"`
}

// APIDetail is the error and message body of the API. Detail may be a
// string, a list of strings or absent in favour of per field errors.
type APIDetail struct {
	Detail json.RawMessage `json:"detail"`
}

// Message returns the detail as a single string.
func (d APIDetail) Message() string {
	if len(d.Detail) == 0 {
		return ""
	}
	return flattenMessage(d.Detail)
}

// APIErrorMessage flattens an API error body into one readable message.
func APIErrorMessage(body []byte) string {
	var detail APIDetail
	if err := json.Unmarshal(body, &detail); err == nil {
		if message := detail.Message(); message != "" {
			return message
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var messages []string
	for _, key := range keys {
		if message := flattenMessage(fields[key]); message != "" {
			if key == "non_field_errors" {
				messages = append(messages, message)
				continue
			}
			messages = append(messages, key+": "+message)
		}
	}
	return strings.Join(messages, "; ")
}

func flattenMessage(raw json.RawMessage) string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, " ")
	}
	return ""
}
