package categories

import (
	"context"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
)

type categoryAPIClient struct {
	client *apiclient.Client
}

func NewCategoryAPIClient(client *apiclient.Client) contracts.CategoryAPIClient {
	return &categoryAPIClient{client: client}
}

func (c *categoryAPIClient) FindAll(ctx context.Context, credential string) ([]models.Category, error) {
	var result []responses.APICategory
	err := c.client.Do(ctx, constvars.MethodGet, constvars.ResourceCategories, credential, nil, &result)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(result))
	for _, category := range result {
		categories = append(categories, models.Category{ID: category.ID, Name: category.Name})
	}
	return categories, nil
}
