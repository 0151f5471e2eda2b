package utils

import (
	"context"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
)

func ContextWithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_PRINCIPAL_KEY, principal)
}

// PrincipalFromContext returns the anonymous zero Principal when the
// request carried no usable session.
func PrincipalFromContext(ctx context.Context) models.Principal {
	principal, _ := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(models.Principal)
	return principal
}
