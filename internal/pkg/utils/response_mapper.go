package utils

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/responses"
)

func ConvertIdentityToResponse(identity models.Identity) responses.Identity {
	return responses.Identity{
		Authenticated: identity.Authenticated,
		Username:      identity.Username,
		IsAdmin:       identity.IsAdmin,
		UserID:        identity.UserID,
	}
}

func ConvertCategoryToResponse(category models.Category) responses.Category {
	return responses.Category{ID: category.ID, Name: category.Name}
}

func ConvertCategoriesToResponse(categories []models.Category) []responses.Category {
	result := make([]responses.Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, ConvertCategoryToResponse(category))
	}
	return result
}

func ConvertUsersToResponse(users []models.User) []responses.User {
	result := make([]responses.User, 0, len(users))
	for _, user := range users {
		result = append(result, responses.User{ID: user.ID, Username: user.Username})
	}
	return result
}

func ConvertSlotToResponse(slot models.Slot) responses.Slot {
	return responses.Slot{
		ID:        slot.ID,
		Category:  ConvertCategoryToResponse(slot.Category),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		User:      slot.User,
	}
}

// ConvertPreferencesToResponse keeps ids and categories in the order the
// booking API returned them.
func ConvertPreferencesToResponse(categories []models.Category) *responses.Preferences {
	preferences := &responses.Preferences{
		CategoriesIDs: make([]int, 0, len(categories)),
		Categories:    ConvertCategoriesToResponse(categories),
	}
	for _, category := range categories {
		preferences.CategoriesIDs = append(preferences.CategoriesIDs, category.ID)
	}
	return preferences
}
