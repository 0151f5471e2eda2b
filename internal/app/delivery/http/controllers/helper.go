package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// requestContext bounds the work of one request. It keeps the request id
// and principal set by the middlewares.
func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
