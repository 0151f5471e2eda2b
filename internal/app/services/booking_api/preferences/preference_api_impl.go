package preferences

import (
	"context"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
)

type preferenceAPIClient struct {
	client *apiclient.Client
}

func NewPreferenceAPIClient(client *apiclient.Client) contracts.PreferenceAPIClient {
	return &preferenceAPIClient{client: client}
}

func (c *preferenceAPIClient) Get(ctx context.Context, credential string) ([]models.Category, error) {
	var result responses.APIPreferences
	err := c.client.Do(ctx, constvars.MethodGet, constvars.ResourcePreferences, credential, nil, &result)
	if err != nil {
		return nil, err
	}
	return toCategories(result), nil
}

func (c *preferenceAPIClient) Update(ctx context.Context, credential string, request *requests.APIPreferences) ([]models.Category, error) {
	var result responses.APIPreferences
	err := c.client.Do(ctx, constvars.MethodPatch, constvars.ResourcePreferences, credential, request, &result)
	if err != nil {
		return nil, err
	}
	return toCategories(result), nil
}

func toCategories(result responses.APIPreferences) []models.Category {
	categories := make([]models.Category, 0, len(result.Categories))
	for _, category := range result.Categories {
		categories = append(categories, models.Category{ID: category.ID, Name: category.Name})
	}
	return categories
}
