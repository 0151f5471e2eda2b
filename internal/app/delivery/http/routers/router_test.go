package routers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts/mocks"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router  *chi.Mux
	auth    *mocks.AuthUsecase
	booking *mocks.BookingUsecase
	admin   *mocks.AdminUsecase
}

var (
	alice = models.Principal{Credential: "alice-token", Identity: models.Identity{Authenticated: true, Username: "alice"}}
	staff = models.Principal{Credential: "staff-token", Identity: models.Identity{Authenticated: true, Username: "staff", IsAdmin: true}}
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			AllowedOrigins:             []string{"*"},
			MaxRequests:                1000,
			AuthMaxRequestsPerMinute:   100,
			AuthBlockTimeInMinutes:     1,
			RequestBodyLimitInMegabyte: 1,
		},
	}
}

func newTestServer(t *testing.T, checks map[string]controllers.HealthCheck) *testServer {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := testInternalConfig()

	s := &testServer{
		router:  chi.NewRouter(),
		auth:    new(mocks.AuthUsecase),
		booking: new(mocks.BookingUsecase),
		admin:   new(mocks.AdminUsecase),
	}
	s.auth.On("ResolveCredential", "alice-token").Return(alice, nil).Maybe()
	s.auth.On("ResolveCredential", "staff-token").Return(staff, nil).Maybe()

	timeout := 2 * time.Second
	SetupRoutes(
		s.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, s.auth, internalConfig),
		controllers.NewAuthController(logger, s.auth, utils.CookieOptions{}, timeout),
		controllers.NewBookingController(logger, s.booking, timeout),
		controllers.NewAdminController(logger, s.admin, timeout),
		controllers.NewHealthController(logger, checks, timeout),
	)
	return s
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) responses.ResponseDTO {
	t.Helper()
	envelope := struct {
		responses.ResponseDTO
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
	return envelope.ResponseDTO
}

func TestAuthRoutes(t *testing.T) {
	t.Run("login sets the session cookie", func(t *testing.T) {
		s := newTestServer(t, nil)
		expires := time.Now().Add(time.Hour)
		s.auth.On("Login", mock.Anything, &requests.Login{Username: "alice", Password: "secret"}).
			Return(&models.Session{SessionID: "sid-1", ExpiresAt: expires}, &responses.Identity{Authenticated: true, Username: "alice"}, nil)

		rec := s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":" alice ","password":"secret"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var identity responses.Identity
		envelope := decodeEnvelope(t, rec, &identity)
		assert.True(t, envelope.Success)
		assert.Equal(t, "alice", identity.Username)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constvars.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "sid-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("login without password never calls the API", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password")
		s.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("register rejects a short password", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/v1/auth/register", "", `{"username":"bob","password":"short","password_confirmation":"short"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("register forwards the detail", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.On("Register", mock.Anything, mock.Anything).Return(&responses.Detail{Detail: "User created."}, nil)

		rec := s.do(http.MethodPost, "/api/v1/auth/register", "", `{"username":"bob","password":"password1","password_confirmation":"password1"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "User created.")
	})

	t.Run("me is 200 for anonymous callers", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodGet, "/api/v1/auth/me", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var identity responses.Identity
		decodeEnvelope(t, rec, &identity)
		assert.False(t, identity.Authenticated)
		assert.False(t, identity.IsAdmin)
	})

	t.Run("me reports the admin hint", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodGet, "/api/v1/auth/me", "staff-token", "")

		var identity responses.Identity
		decodeEnvelope(t, rec, &identity)
		assert.True(t, identity.IsAdmin)
	})

	t.Run("logout expires the cookie", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.On("Logout", mock.Anything, alice).Return(nil)

		rec := s.do(http.MethodPost, "/api/v1/auth/logout", "alice-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].MaxAge < 0)
	})
}

func TestBookingRoutes(t *testing.T) {
	t.Run("session is required", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodGet, "/api/v1/calendar", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ErrClientNotLoggedIn)
	})

	t.Run("calendar passes the week offset", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("GetCalendar", mock.Anything, alice, -1).
			Return(&responses.Calendar{WeekOffset: -1, WeekStart: "2024-06-03"}, nil)

		rec := s.do(http.MethodGet, "/api/v1/calendar?week=-1", "alice-token", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var view responses.Calendar
		decodeEnvelope(t, rec, &view)
		assert.Equal(t, "2024-06-03", view.WeekStart)
	})

	t.Run("non numeric week is rejected", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodGet, "/api/v1/calendar?week=next", "alice-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.booking.AssertNotCalled(t, "GetCalendar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ics export is text/calendar", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("ExportCalendar", mock.Anything, alice, 0, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(3).(io.Writer).Write([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
			}).Return(nil)

		rec := s.do(http.MethodGet, "/api/v1/calendar.ics", "alice-token", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "BEGIN:VCALENDAR"))
	})

	t.Run("book maps the slot id", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("BookSlot", mock.Anything, alice, 12).Return(&responses.Detail{Detail: "Booked."}, nil)

		rec := s.do(http.MethodPost, "/api/v1/slots/12/book", "alice-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Booked.")
	})

	t.Run("invalid slot id", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/v1/slots/abc/unsubscribe", "alice-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("preferences require positive ids", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPut, "/api/v1/preferences", "alice-token", `{"categories_ids":[0]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.booking.AssertNotCalled(t, "UpdatePreferences", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("usecase deadline becomes 504", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.booking.On("ListCategories", mock.Anything, alice).Return(nil, context.DeadlineExceeded)

		rec := s.do(http.MethodGet, "/api/v1/categories", "alice-token", "")

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("non admin callers are forwarded, the API decides", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.admin.On("ListUsers", mock.Anything, alice).Return([]responses.User{}, nil)

		rec := s.do(http.MethodGet, "/api/v1/admin/users", "alice-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		s.admin.AssertExpectations(t)
	})

	t.Run("create requires category and times", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/v1/admin/slots", "staff-token", `{"start_time":"2024-06-10T10:00","end_time":"2024-06-10T11:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "category_id")
		s.admin.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("create rejects malformed datetime", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/v1/admin/slots", "staff-token", `{"category_id":1,"start_time":"10:00","end_time":"2024-06-10T11:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.admin.On("CreateSlot", mock.Anything, staff, &requests.CreateSlot{CategoryID: 1, StartTime: "2024-06-10T10:00", EndTime: "2024-06-10T11:00"}).
			Return(&responses.Slot{ID: 4}, nil)

		rec := s.do(http.MethodPost, "/api/v1/admin/slots", "staff-token", `{"category_id":1,"start_time":"2024-06-10T10:00","end_time":"2024-06-10T11:00"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("assign requires a user", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.do(http.MethodPost, "/api/v1/admin/slots/3/assign", "staff-token", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.admin.AssertNotCalled(t, "AssignSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unassign and delete", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.admin.On("UnassignSlot", mock.Anything, staff, 3).Return(&responses.Slot{ID: 3}, nil)
		s.admin.On("DeleteSlot", mock.Anything, staff, 3).Return(nil)

		assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/admin/slots/3/unassign", "staff-token", "").Code)
		assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/v1/admin/slots/3", "staff-token", "").Code)
	})

	t.Run("partial edit", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.admin.On("UpdateSlot", mock.Anything, staff, 3, mock.MatchedBy(func(request *requests.UpdateSlot) bool {
			return request.CategoryID != nil && *request.CategoryID == 2 && request.StartTime == nil
		})).Return(&responses.Slot{ID: 3}, nil)

		rec := s.do(http.MethodPatch, "/api/v1/admin/slots/3", "staff-token", `{"category_id":2}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := newTestServer(t, map[string]controllers.HealthCheck{
			"redis": func(ctx context.Context) error { return nil },
		})

		rec := s.do(http.MethodGet, "/api/v1/healthz", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("degraded", func(t *testing.T) {
		s := newTestServer(t, map[string]controllers.HealthCheck{
			"redis": func(ctx context.Context) error { return errors.New("connection refused") },
		})

		rec := s.do(http.MethodGet, "/api/v1/healthz", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}

func TestBodyLimit(t *testing.T) {
	s := newTestServer(t, nil)
	huge := `{"categories_ids":[` + strings.Repeat("1,", 1<<20) + `1]}`

	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences", bytes.NewBufferString(huge))
	req.Header.Set("Authorization", "Bearer alice-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGlobalMiddlewares_RecoverCoversLaterMiddlewares(t *testing.T) {
	internalConfig := testInternalConfig()
	m := middlewares.NewMiddlewares(zap.NewNop(), new(mocks.AuthUsecase), internalConfig)
	chain := globalMiddlewares(internalConfig, m)

	panicking := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("middleware failed")
		})
	}

	for i := 2; i < len(chain); i++ {
		list := append([]func(http.Handler) http.Handler{}, chain...)
		list[i] = panicking
		handler := chi.Chain(list...).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil))
		}, "middleware %d", i)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, "middleware %d", i)
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID), "middleware %d", i)
	}
}
