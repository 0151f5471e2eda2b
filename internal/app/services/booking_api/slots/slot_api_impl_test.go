package slots

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *slotAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &slotAPIClient{client: apiclient.NewClient(server.URL, time.Second, zap.NewNop())}
}

func TestSlotAPIClient_FindByWeek(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/slots/", r.URL.Path)
		assert.Equal(t, "-2", r.URL.Query().Get("week"))
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"id":1,"category":{"id":4,"name":"Yoga"},"start_time":"2024-05-06T10:00:00+02:00","end_time":"2024-05-06T11:00:00+02:00","user":null},
			{"id":2,"category":"Pilates","category_id":5,"start_time":"2024-05-07T10:00:00+02:00","end_time":"2024-05-07T11:00:00+02:00","user":"alice"}
		]`))
	})

	slots, err := client.FindByWeek(context.Background(), "access", -2)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 4, slots[0].Category.ID)
	assert.Equal(t, "Yoga", slots[0].Category.Name)
	assert.True(t, slots[0].IsFree())
	assert.Equal(t, 5, slots[1].Category.ID)
	assert.Equal(t, "Pilates", slots[1].Category.Name)
	require.NotNil(t, slots[1].User)
	assert.Equal(t, "alice", *slots[1].User)
}

func TestSlotAPIClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/slots/9/", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"start_time":"2024-05-06T09:00"}`, string(body))
		w.Write([]byte(`{"id":9,"category":{"id":1,"name":"Yoga"},"start_time":"2024-05-06T09:00:00+02:00","end_time":"2024-05-06T11:00:00+02:00","user":null}`))
	})

	start := "2024-05-06T09:00"
	slot, err := client.Update(context.Background(), "access", 9, &requests.APISlotWrite{StartTime: &start})

	require.NoError(t, err)
	assert.Equal(t, 9, slot.ID)
	assert.Equal(t, "2024-05-06T09:00:00+02:00", slot.StartTime)
}

func TestSlotAPIClient_SetUser(t *testing.T) {
	t.Run("nil user unassigns", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"user_id":null}`, string(body))
			w.Write([]byte(`{"id":3,"category":{"id":1,"name":"Yoga"},"start_time":"","end_time":"","user":null}`))
		})

		slot, err := client.SetUser(context.Background(), "access", 3, &requests.APISlotAssign{})

		require.NoError(t, err)
		assert.True(t, slot.IsFree())
	})
}

func TestSlotAPIClient_BookAndUnsubscribe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		switch r.URL.Path {
		case "/slots/7/book/":
			w.Write([]byte(`{"detail":"Booked."}`))
		case "/slots/7/unsubscribe/":
			w.Write([]byte(`{"detail":"Unsubscribed."}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	detail, err := client.Book(context.Background(), "access", 7)
	require.NoError(t, err)
	assert.Equal(t, "Booked.", detail)

	detail, err = client.Unsubscribe(context.Background(), "access", 7)
	require.NoError(t, err)
	assert.Equal(t, "Unsubscribed.", detail)
}

func TestSlotAPIClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/slots/4/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Delete(context.Background(), "access", 4))
}
