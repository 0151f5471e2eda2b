package contracts

import (
	"context"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.Session, *responses.Identity, error)
	Register(ctx context.Context, request *requests.Register) (*responses.Detail, error)
	Logout(ctx context.Context, principal models.Principal) error
	ResolveSession(ctx context.Context, sessionID string) (models.Principal, error)
	ResolveCredential(credential string) (models.Principal, error)
}
