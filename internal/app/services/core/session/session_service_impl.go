package session

import (
	"context"
	"time"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		TTL:             ttl,
		now:             time.Now,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, username string, tokens *responses.APITokenPair) (*models.Session, error) {
	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return nil, exceptions.ErrGenerateSessionID(err)
	}

	createdAt := svc.now()
	session := &models.Session{
		SessionID: sessionID,
		Access:    tokens.Access,
		Refresh:   tokens.Refresh,
		Username:  username,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(svc.TTL),
	}

	err = svc.RedisRepository.Set(ctx, redisKey(sessionID), session, svc.TTL)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, exceptions.ErrSessionMissing(nil)
	}

	sessionData, err := svc.RedisRepository.Get(ctx, redisKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return svc.RedisRepository.Delete(ctx, redisKey(sessionID))
}

func redisKey(sessionID string) string {
	return constvars.SessionRedisKeyPrefix + sessionID
}
