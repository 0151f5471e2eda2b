package auth

import (
	"context"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
)

type authAPIClient struct {
	client *apiclient.Client
}

func NewAuthAPIClient(client *apiclient.Client) contracts.AuthAPIClient {
	return &authAPIClient{client: client}
}

func (c *authAPIClient) ObtainToken(ctx context.Context, request *requests.APIToken) (*responses.APITokenPair, error) {
	pair := new(responses.APITokenPair)
	err := c.client.Do(ctx, constvars.MethodPost, constvars.ResourceToken, "", request, pair)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (c *authAPIClient) Register(ctx context.Context, request *requests.APIRegister) (string, error) {
	var detail responses.APIDetail
	err := c.client.Do(ctx, constvars.MethodPost, constvars.ResourceRegister, "", request, &detail)
	if err != nil {
		return "", err
	}
	return detail.Message(), nil
}
