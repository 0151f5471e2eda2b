package jwtmanager

import (
	"math"
	"strconv"
	"strings"

	"booking-service/internal/app/models"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const (
	claimUsername = "username"
	claimIsStaff  = "is_staff"
	claimUserID   = "user_id"
	claimSubject  = "sub"
)

// JWTManager reads identities out of access credentials issued by the
// booking API. It never verifies signatures or expiry, the booking API is
// the authority on both and re-checks them on every call.
type JWTManager struct {
	log    *zap.Logger
	parser *jwt.Parser
}

func NewJWTManager(log *zap.Logger) *JWTManager {
	return &JWTManager{
		log:    log,
		parser: jwt.NewParser(),
	}
}

// DecodeIdentity never fails: any credential it cannot read yields the
// unauthenticated zero Identity.
func (m *JWTManager) DecodeIdentity(credential string) (identity models.Identity) {
	defer func() {
		if rec := recover(); rec != nil {
			m.log.Warn("jwtManager.DecodeIdentity recovered from panic", zap.Any("panic", rec))
			identity = models.Identity{}
		}
	}()

	credential = strings.TrimSpace(credential)
	if credential == "" {
		return models.Identity{}
	}

	claims := jwt.MapClaims{}
	_, _, err := m.parser.ParseUnverified(credential, claims)
	if err != nil {
		m.log.Debug("jwtManager.DecodeIdentity cannot parse credential", zap.Error(err))
		return models.Identity{}
	}

	username := stringClaim(claims, claimUsername)
	if username == "" {
		m.log.Debug("jwtManager.DecodeIdentity credential carries no username")
		return models.Identity{}
	}

	identity = models.Identity{
		Authenticated: true,
		Username:      username,
		IsAdmin:       boolClaim(claims, claimIsStaff),
	}
	if userID, ok := intClaim(claims, claimUserID); ok {
		identity.UserID = &userID
	} else if userID, ok := intClaim(claims, claimSubject); ok {
		identity.UserID = &userID
	}
	return identity
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return strings.TrimSpace(value)
}

func boolClaim(claims jwt.MapClaims, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		return err == nil && parsed
	case float64:
		return value != 0
	default:
		return false
	}
}

func intClaim(claims jwt.MapClaims, key string) (int, bool) {
	switch value := claims[key].(type) {
	case float64:
		if value != math.Trunc(value) || value > math.MaxInt32 || value < math.MinInt32 {
			return 0, false
		}
		return int(value), true
	case string:
		parsed, err := strconv.Atoi(value)
		return parsed, err == nil
	default:
		return 0, false
	}
}
