package preferences

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-service/internal/app/models"
	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPreferenceAPIClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/preferences/", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"categories":[{"id":1,"name":"Yoga"}]}`))
		case http.MethodPatch:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"categories_ids":[2,3]}`, string(body))
			w.Write([]byte(`{"categories":[{"id":2,"name":"Pilates"},{"id":3,"name":"Boxing"}]}`))
		}
	}))
	defer server.Close()

	client := NewPreferenceAPIClient(apiclient.NewClient(server.URL, time.Second, zap.NewNop()))

	current, err := client.Get(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 1, Name: "Yoga"}}, current)

	updated, err := client.Update(context.Background(), "access", &requests.APIPreferences{CategoriesIDs: []int{2, 3}})
	require.NoError(t, err)
	assert.Len(t, updated, 2)
	assert.Equal(t, "Boxing", updated[1].Name)
}
