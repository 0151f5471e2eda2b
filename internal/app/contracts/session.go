package contracts

import (
	"context"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/responses"
)

type SessionService interface {
	CreateSession(ctx context.Context, username string, tokens *responses.APITokenPair) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type IdentityDecoder interface {
	DecodeIdentity(credential string) models.Identity
}
