package bookings

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"booking-service/internal/app/contracts/mocks"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/core/calendar"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	uc          *bookingUsecase
	slots       *mocks.SlotAPIClient
	categories  *mocks.CategoryAPIClient
	preferences *mocks.PreferenceAPIClient
	events      *mocks.BookingEventPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	labeler, err := calendar.NewLabeler("en")
	require.NoError(t, err)

	f := fixture{
		slots:       new(mocks.SlotAPIClient),
		categories:  new(mocks.CategoryAPIClient),
		preferences: new(mocks.PreferenceAPIClient),
		events:      new(mocks.BookingEventPublisher),
	}
	f.uc = &bookingUsecase{
		SlotAPIClient:       f.slots,
		CategoryAPIClient:   f.categories,
		PreferenceAPIClient: f.preferences,
		EventPublisher:      f.events,
		Clock:               calendar.FixedClock(time.Date(2024, 6, 12, 9, 0, 0, 0, loc)),
		Labeler:             labeler,
		ICS:                 ICSSettings{ProductID: "-//booking//EN", CalendarName: "Bookings", UIDDomain: "booking.test"},
		Log:                 zap.NewNop(),
	}
	return f
}

var alice = models.Principal{
	SessionID:  "sid",
	Credential: "access-alice",
	Identity:   models.Identity{Authenticated: true, Username: "alice"},
}

func weekSlots() []models.Slot {
	bob := "bob"
	return []models.Slot{
		{ID: 1, Category: models.Category{Name: "Yoga"}, StartTime: "2024-06-10T10:00:00+02:00", EndTime: "2024-06-10T11:00:00+02:00"},
		{ID: 2, Category: models.Category{ID: 2, Name: "Pilates"}, StartTime: "2024-06-11T10:00:00+02:00", EndTime: "2024-06-11T11:00:00+02:00", User: &bob},
		{ID: 3, Category: models.Category{ID: 2, Name: "Pilates"}, StartTime: "broken"},
	}
}

func TestBookingUsecase_GetCalendar(t *testing.T) {
	t.Run("combines slots, categories and preferences", func(t *testing.T) {
		f := newFixture(t)
		f.slots.On("FindByWeek", mock.Anything, "access-alice", 0).Return(weekSlots(), nil)
		f.categories.On("FindAll", mock.Anything, "access-alice").Return([]models.Category{{ID: 1, Name: "Yoga"}, {ID: 2, Name: "Pilates"}}, nil)
		f.preferences.On("Get", mock.Anything, "access-alice").Return([]models.Category{{ID: 2, Name: "Pilates"}}, nil)

		view, err := f.uc.GetCalendar(context.Background(), alice, 0)

		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", view.WeekStart)

		monday := view.Days[0].Slots
		require.Len(t, monday, 1)
		assert.Equal(t, 1, monday[0].Category.ID, "string category resolved against the list")
		assert.Equal(t, string(calendar.StateFreeOther), monday[0].State)

		tuesday := view.Days[1].Slots
		require.Len(t, tuesday, 1)
		assert.Equal(t, string(calendar.StateBookedByOther), tuesday[0].State)

		require.Len(t, view.InvalidSlots, 1)
		assert.Equal(t, 3, view.InvalidSlots[0].ID)
	})

	t.Run("any failed fetch fails the view", func(t *testing.T) {
		f := newFixture(t)
		f.slots.On("FindByWeek", mock.Anything, mock.Anything, 1).Return(weekSlots(), nil)
		f.categories.On("FindAll", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrBookingAPIUnexpected(http.StatusInternalServerError, "GET", "/categories/"))
		f.preferences.On("Get", mock.Anything, mock.Anything).Return([]models.Category{}, nil)

		_, err := f.uc.GetCalendar(context.Background(), alice, 1)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})
}

func TestBookingUsecase_ExportCalendar(t *testing.T) {
	f := newFixture(t)
	f.slots.On("FindByWeek", mock.Anything, mock.Anything, 0).Return(weekSlots(), nil)
	f.categories.On("FindAll", mock.Anything, mock.Anything).Return([]models.Category{{ID: 1, Name: "Yoga"}}, nil)
	f.preferences.On("Get", mock.Anything, mock.Anything).Return([]models.Category{}, nil)

	var buf bytes.Buffer
	err := f.uc.ExportCalendar(context.Background(), alice, 0, &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "slot-1@booking.test")
	assert.Contains(t, out, "PRODID:-//booking//EN")
	assert.Contains(t, out, "booked")
	assert.NotContains(t, out, "bob")
}

func TestBookingUsecase_BookSlot(t *testing.T) {
	t.Run("publishes an event after booking", func(t *testing.T) {
		f := newFixture(t)
		f.slots.On("Book", mock.Anything, "access-alice", 5).Return("Booked.", nil)
		f.events.On("Publish", mock.Anything, mock.MatchedBy(func(event models.BookingEvent) bool {
			return event.Type == constvars.BookingEventSlotBooked && event.SlotID == 5 && event.Actor == "alice"
		})).Return(nil)

		detail, err := f.uc.BookSlot(context.Background(), alice, 5)

		require.NoError(t, err)
		assert.Equal(t, "Booked.", detail.Detail)
		f.events.AssertExpectations(t)
	})

	t.Run("publish failures do not fail the booking", func(t *testing.T) {
		f := newFixture(t)
		f.slots.On("Book", mock.Anything, mock.Anything, 5).Return("Booked.", nil)
		f.events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker gone"))

		_, err := f.uc.BookSlot(context.Background(), alice, 5)

		assert.NoError(t, err)
	})

	t.Run("taken slot keeps the API message", func(t *testing.T) {
		f := newFixture(t)
		f.slots.On("Book", mock.Anything, mock.Anything, 5).
			Return("", exceptions.ErrBookingAPIRejected(http.StatusBadRequest, "Slot already taken.", "POST", "/slots/5/book/"))

		_, err := f.uc.BookSlot(context.Background(), alice, 5)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, "Slot already taken.", customErr.ClientMessage)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_UnsubscribeSlot(t *testing.T) {
	f := newFixture(t)
	f.slots.On("Unsubscribe", mock.Anything, "access-alice", 8).Return("Unsubscribed.", nil)
	f.events.On("Publish", mock.Anything, mock.MatchedBy(func(event models.BookingEvent) bool {
		return event.Type == constvars.BookingEventSlotUnsubscribed
	})).Return(nil)

	detail, err := f.uc.UnsubscribeSlot(context.Background(), alice, 8)

	require.NoError(t, err)
	assert.Equal(t, "Unsubscribed.", detail.Detail)
}

func TestBookingUsecase_Preferences(t *testing.T) {
	f := newFixture(t)
	f.preferences.On("Get", mock.Anything, "access-alice").Return([]models.Category{{ID: 1, Name: "Yoga"}}, nil)
	f.preferences.On("Update", mock.Anything, "access-alice", &requests.APIPreferences{CategoriesIDs: []int{2}}).
		Return([]models.Category{{ID: 2, Name: "Pilates"}}, nil)
	f.events.On("Publish", mock.Anything, mock.Anything).Return(nil)

	current, err := f.uc.GetPreferences(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, current.CategoriesIDs)

	updated, err := f.uc.UpdatePreferences(context.Background(), alice, &requests.UpdatePreferences{CategoriesIDs: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, updated.CategoriesIDs)
	assert.Equal(t, "Pilates", updated.Categories[0].Name)
}

func TestBookingUsecase_ListCategories(t *testing.T) {
	f := newFixture(t)
	f.categories.On("FindAll", mock.Anything, "access-alice").Return([]models.Category{{ID: 1, Name: "Yoga"}}, nil)

	categories, err := f.uc.ListCategories(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Yoga", categories[0].Name)
}
