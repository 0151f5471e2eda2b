package users

import (
	"context"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
)

type userAPIClient struct {
	client *apiclient.Client
}

func NewUserAPIClient(client *apiclient.Client) contracts.UserAPIClient {
	return &userAPIClient{client: client}
}

func (c *userAPIClient) FindAll(ctx context.Context, credential string) ([]models.User, error) {
	var result []responses.APIUser
	err := c.client.Do(ctx, constvars.MethodGet, constvars.ResourceUsers, credential, nil, &result)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(result))
	for _, user := range result {
		users = append(users, models.User{ID: user.ID, Username: user.Username})
	}
	return users, nil
}
