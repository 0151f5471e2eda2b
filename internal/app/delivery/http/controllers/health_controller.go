package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Checks  map[string]HealthCheck
	Timeout time.Duration
}

func NewHealthController(logger *zap.Logger, checks map[string]HealthCheck, timeout time.Duration) *HealthController {
	return &HealthController{
		Log:     logger,
		Checks:  checks,
		Timeout: timeout,
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := healthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	statusCode := constvars.StatusOK
	for _, name := range names {
		if err := ctrl.Checks[name](ctx); err != nil {
			ctrl.Log.Warn("health check failed", zap.String("check", name), zap.Error(err))
			response.Checks[name] = err.Error()
			response.Status = "degraded"
			statusCode = constvars.StatusServiceUnavailable
			continue
		}
		response.Checks[name] = "ok"
	}

	if statusCode == constvars.StatusOK {
		utils.BuildSuccessResponse(w, statusCode, response.Status, response)
		return
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(responses.ResponseDTO{Success: false, Message: response.Status, Data: response})
}
