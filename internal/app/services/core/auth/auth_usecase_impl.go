package auth

import (
	"context"
	"sync"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthAPIClient   contracts.AuthAPIClient
	SessionService  contracts.SessionService
	IdentityDecoder contracts.IdentityDecoder
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	authAPIClient contracts.AuthAPIClient,
	sessionService contracts.SessionService,
	identityDecoder contracts.IdentityDecoder,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthAPIClient:   authAPIClient,
			SessionService:  sessionService,
			IdentityDecoder: identityDecoder,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.Session, *responses.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	tokens, err := uc.AuthAPIClient.ObtainToken(ctx, &requests.APIToken{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Login error obtaining token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	identity := uc.IdentityDecoder.DecodeIdentity(tokens.Access)
	if !identity.Authenticated {
		uc.Log.Error("authUsecase.Login issued credential cannot be decoded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil, exceptions.ErrCredentialUndecoded(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, identity.Username, tokens)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := utils.ConvertIdentityToResponse(identity)
	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, identity.Username),
	)
	return session, &response, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Detail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	if request.Password != request.PasswordConfirmation {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	detail, err := uc.AuthAPIClient.Register(ctx, &requests.APIRegister{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Register error registering user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Detail{Detail: detail}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, principal models.Principal) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DeleteSession(ctx, principal.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// ResolveSession loads the principal behind a session cookie. A stored
// credential that no longer decodes removes the session.
func (uc *authUsecase) ResolveSession(ctx context.Context, sessionID string) (models.Principal, error) {
	session, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		return models.Principal{}, err
	}

	principal, err := uc.ResolveCredential(session.Access)
	if err != nil {
		deleteErr := uc.SessionService.DeleteSession(ctx, sessionID)
		if deleteErr != nil {
			uc.Log.Warn("authUsecase.ResolveSession error deleting undecodable session",
				zap.Error(deleteErr),
			)
		}
		return models.Principal{}, exceptions.ErrSessionUndecodable(nil)
	}

	principal.SessionID = session.SessionID
	return principal, nil
}

func (uc *authUsecase) ResolveCredential(credential string) (models.Principal, error) {
	identity := uc.IdentityDecoder.DecodeIdentity(credential)
	if !identity.Authenticated {
		return models.Principal{}, exceptions.ErrCredentialUndecoded(nil)
	}
	return models.Principal{Credential: credential, Identity: identity}, nil
}
