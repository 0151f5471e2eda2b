package bookings

import (
	"context"
	"io"
	"sync"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/core/calendar"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ICSSettings names the exported calendar.
type ICSSettings struct {
	ProductID    string
	CalendarName string
	UIDDomain    string
}

type bookingUsecase struct {
	SlotAPIClient       contracts.SlotAPIClient
	CategoryAPIClient   contracts.CategoryAPIClient
	PreferenceAPIClient contracts.PreferenceAPIClient
	EventPublisher      contracts.BookingEventPublisher
	Clock               calendar.Clock
	Labeler             *calendar.Labeler
	ICS                 ICSSettings
	Log                 *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	slotAPIClient contracts.SlotAPIClient,
	categoryAPIClient contracts.CategoryAPIClient,
	preferenceAPIClient contracts.PreferenceAPIClient,
	eventPublisher contracts.BookingEventPublisher,
	clock calendar.Clock,
	labeler *calendar.Labeler,
	ics ICSSettings,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			SlotAPIClient:       slotAPIClient,
			CategoryAPIClient:   categoryAPIClient,
			PreferenceAPIClient: preferenceAPIClient,
			EventPublisher:      eventPublisher,
			Clock:               clock,
			Labeler:             labeler,
			ICS:                 ics,
			Log:                 logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) ListCategories(ctx context.Context, principal models.Principal) ([]responses.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	categories, err := uc.CategoryAPIClient.FindAll(ctx, principal.Credential)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListCategories error fetching categories",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.ConvertCategoriesToResponse(categories), nil
}

// weekData is everything a week view needs, fetched concurrently.
type weekData struct {
	slots      []models.Slot
	categories []models.Category
	prefs      []models.Category
}

func (uc *bookingUsecase) fetchWeek(ctx context.Context, principal models.Principal, weekOffset int) (*weekData, error) {
	data := new(weekData)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slots, err := uc.SlotAPIClient.FindByWeek(gctx, principal.Credential, weekOffset)
		data.slots = slots
		return err
	})
	g.Go(func() error {
		categories, err := uc.CategoryAPIClient.FindAll(gctx, principal.Credential)
		data.categories = categories
		return err
	})
	g.Go(func() error {
		prefs, err := uc.PreferenceAPIClient.Get(gctx, principal.Credential)
		data.prefs = prefs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	data.slots = calendar.ResolveCategories(data.slots, data.categories)
	return data, nil
}

func (uc *bookingUsecase) project(ctx context.Context, data *weekData, weekOffset int) (calendar.Week, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	week, err := calendar.Project(data.slots, weekOffset, uc.Clock.Now())
	if err != nil {
		uc.Log.Warn("bookingUsecase projection skipped slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingWeekOffsetKey, weekOffset),
			zap.Error(err),
		)
	}
	return week, err
}

func (uc *bookingUsecase) GetCalendar(ctx context.Context, principal models.Principal, weekOffset int) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWeekOffsetKey, weekOffset),
	)

	data, err := uc.fetchWeek(ctx, principal, weekOffset)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetCalendar error fetching week",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	week, projectionErr := uc.project(ctx, data, weekOffset)
	return calendar.BuildView(week, projectionErr, calendar.ViewOptions{
		Viewer:  principal.Identity,
		Prefs:   preferenceSet(data.prefs),
		Labeler: uc.Labeler,
	}), nil
}

func (uc *bookingUsecase) ExportCalendar(ctx context.Context, principal models.Principal, weekOffset int, w io.Writer) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ExportCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWeekOffsetKey, weekOffset),
	)

	data, err := uc.fetchWeek(ctx, principal, weekOffset)
	if err != nil {
		uc.Log.Error("bookingUsecase.ExportCalendar error fetching week",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	week, _ := uc.project(ctx, data, weekOffset)
	err = calendar.EncodeICS(w, week, calendar.ICSOptions{
		ProductID:    uc.ICS.ProductID,
		CalendarName: uc.ICS.CalendarName,
		UIDDomain:    uc.ICS.UIDDomain,
		Stamp:        uc.Clock.Now(),
		Viewer:       principal.Identity,
		Prefs:        preferenceSet(data.prefs),
		Labeler:      uc.Labeler,
	})
	if err != nil {
		return exceptions.ErrCalendarEncode(err)
	}
	return nil
}

func (uc *bookingUsecase) GetPreferences(ctx context.Context, principal models.Principal) (*responses.Preferences, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	prefs, err := uc.PreferenceAPIClient.Get(ctx, principal.Credential)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetPreferences error fetching preferences",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.ConvertPreferencesToResponse(prefs), nil
}

func (uc *bookingUsecase) UpdatePreferences(ctx context.Context, principal models.Principal, request *requests.UpdatePreferences) (*responses.Preferences, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UpdatePreferences called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Ints("categories_ids", request.CategoriesIDs),
	)

	prefs, err := uc.PreferenceAPIClient.Update(ctx, principal.Credential, &requests.APIPreferences{
		CategoriesIDs: request.CategoriesIDs,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.UpdatePreferences error saving preferences",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:        constvars.BookingEventPreferencesSet,
		Actor:       principal.Identity.Username,
		CategoryIDs: request.CategoriesIDs,
	})
	return utils.ConvertPreferencesToResponse(prefs), nil
}

func (uc *bookingUsecase) BookSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Detail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.BookSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
	)

	detail, err := uc.SlotAPIClient.Book(ctx, principal.Credential, slotID)
	if err != nil {
		uc.Log.Error("bookingUsecase.BookSlot error booking slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:   constvars.BookingEventSlotBooked,
		SlotID: slotID,
		Actor:  principal.Identity.Username,
	})
	return &responses.Detail{Detail: detail}, nil
}

func (uc *bookingUsecase) UnsubscribeSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Detail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UnsubscribeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
	)

	detail, err := uc.SlotAPIClient.Unsubscribe(ctx, principal.Credential, slotID)
	if err != nil {
		uc.Log.Error("bookingUsecase.UnsubscribeSlot error cancelling booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:   constvars.BookingEventSlotUnsubscribed,
		SlotID: slotID,
		Actor:  principal.Identity.Username,
	})
	return &responses.Detail{Detail: detail}, nil
}

// publish never fails the request, the mutation already happened upstream.
func (uc *bookingUsecase) publish(ctx context.Context, event models.BookingEvent) {
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("bookingUsecase failed to publish booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}

func preferenceSet(categories []models.Category) models.PreferenceSet {
	ids := make([]int, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
	}
	return models.NewPreferenceSet(ids...)
}
