package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, handler http.HandlerFunc) *authAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAuthAPIClient(apiclient.NewClient(server.URL, time.Second, zap.NewNop())).(*authAPIClient)
}

func TestAuthAPIClient_ObtainToken(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"alice","password":"secret"}`, string(body))
		w.Write([]byte(`{"access":"a.b.c","refresh":"d.e.f"}`))
	})

	pair, err := client.ObtainToken(context.Background(), &requests.APIToken{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", pair.Access)
	assert.Equal(t, "d.e.f", pair.Refresh)
}

func TestAuthAPIClient_ObtainToken_BadCredentials(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
	})

	pair, err := client.ObtainToken(context.Background(), &requests.APIToken{Username: "alice", Password: "wrong"})

	assert.Nil(t, pair)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, "No active account found with the given credentials", customErr.ClientMessage)
}

func TestAuthAPIClient_Register(t *testing.T) {
	t.Run("success detail", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/register/", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"detail":"User created successfully."}`))
		})

		detail, err := client.Register(context.Background(), &requests.APIRegister{Username: "bob", Password: "password1"})

		require.NoError(t, err)
		assert.Equal(t, "User created successfully.", detail)
	})

	t.Run("detail list is joined", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":["This password is too common.","This password is entirely numeric."]}`))
		})

		_, err := client.Register(context.Background(), &requests.APIRegister{Username: "bob", Password: "12345678"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "This password is too common. This password is entirely numeric.", customErr.ClientMessage)
	})
}
