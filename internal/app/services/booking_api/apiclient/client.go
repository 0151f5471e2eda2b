package apiclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client performs JSON calls against the booking API. It holds no caller
// state: the credential travels with each call.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClient(baseUrl string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        log,
	}
}

// Do sends body as JSON to path and decodes a successful answer into out.
// Either of body and out may be nil. 4xx answers keep their status and
// carry the API's own message, everything else becomes a 502.
func (c *Client) Do(ctx context.Context, method, path, credential string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.BaseUrl + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if credential != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+credential)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("booking API call completed",
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamURLKey, url),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(respBody)),
	)

	if resp.StatusCode >= constvars.StatusBadRequest {
		return statusError(resp.StatusCode, respBody, method, path)
	}

	if out == nil || resp.StatusCode == constvars.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}

func statusError(statusCode int, body []byte, method, path string) error {
	switch statusCode {
	case constvars.StatusBadRequest,
		constvars.StatusUnauthorized,
		constvars.StatusForbidden,
		constvars.StatusNotFound,
		constvars.StatusConflict,
		constvars.StatusTooManyRequests:
		return exceptions.ErrBookingAPIRejected(statusCode, responses.APIErrorMessage(body), method, path)
	default:
		return exceptions.ErrBookingAPIUnexpected(statusCode, method, path)
	}
}
