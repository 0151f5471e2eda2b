package utils

import (
	"strings"

	"booking-service/internal/pkg/dto/requests"
)

// Passwords are never trimmed, surrounding spaces may be part of them.

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeCreateSlotRequest(input *requests.CreateSlot) {
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
}

func SanitizeUpdateSlotRequest(input *requests.UpdateSlot) {
	if input.StartTime != nil {
		trimmed := strings.TrimSpace(*input.StartTime)
		input.StartTime = &trimmed
	}
	if input.EndTime != nil {
		trimmed := strings.TrimSpace(*input.EndTime)
		input.EndTime = &trimmed
	}
}
