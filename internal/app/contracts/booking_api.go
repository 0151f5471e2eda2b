package contracts

import (
	"context"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
)

// Clients of the external booking API. Every call that needs authentication
// takes the caller's access credential explicitly.

type AuthAPIClient interface {
	ObtainToken(ctx context.Context, request *requests.APIToken) (*responses.APITokenPair, error)
	Register(ctx context.Context, request *requests.APIRegister) (string, error)
}

type CategoryAPIClient interface {
	FindAll(ctx context.Context, credential string) ([]models.Category, error)
}

type SlotAPIClient interface {
	FindByWeek(ctx context.Context, credential string, weekOffset int) ([]models.Slot, error)
	Create(ctx context.Context, credential string, request *requests.APISlotWrite) (*models.Slot, error)
	Update(ctx context.Context, credential string, slotID int, request *requests.APISlotWrite) (*models.Slot, error)
	Delete(ctx context.Context, credential string, slotID int) error
	SetUser(ctx context.Context, credential string, slotID int, request *requests.APISlotAssign) (*models.Slot, error)
	Book(ctx context.Context, credential string, slotID int) (string, error)
	Unsubscribe(ctx context.Context, credential string, slotID int) (string, error)
}

type PreferenceAPIClient interface {
	Get(ctx context.Context, credential string) ([]models.Category, error)
	Update(ctx context.Context, credential string, request *requests.APIPreferences) ([]models.Category, error)
}

type UserAPIClient interface {
	FindAll(ctx context.Context, credential string) ([]models.User, error)
}
