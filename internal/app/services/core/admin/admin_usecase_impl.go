package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

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

// adminUsecase forwards every mutation with the caller's own credential.
// Whether the caller may perform it is decided by the booking API.
type adminUsecase struct {
	SlotAPIClient     contracts.SlotAPIClient
	CategoryAPIClient contracts.CategoryAPIClient
	UserAPIClient     contracts.UserAPIClient
	EventPublisher    contracts.BookingEventPublisher
	Clock             calendar.Clock
	Labeler           *calendar.Labeler
	Log               *zap.Logger
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	slotAPIClient contracts.SlotAPIClient,
	categoryAPIClient contracts.CategoryAPIClient,
	userAPIClient contracts.UserAPIClient,
	eventPublisher contracts.BookingEventPublisher,
	clock calendar.Clock,
	labeler *calendar.Labeler,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			SlotAPIClient:     slotAPIClient,
			CategoryAPIClient: categoryAPIClient,
			UserAPIClient:     userAPIClient,
			EventPublisher:    eventPublisher,
			Clock:             clock,
			Labeler:           labeler,
			Log:               logger,
		}
	})
	return adminUsecaseInstance
}

// GetCalendar returns the week with every assignee visible, together with
// the user list the assign form picks from.
func (uc *adminUsecase) GetCalendar(ctx context.Context, principal models.Principal, weekOffset int) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWeekOffsetKey, weekOffset),
	)

	var (
		slots      []models.Slot
		categories []models.Category
		users      []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		slots, err = uc.SlotAPIClient.FindByWeek(gctx, principal.Credential, weekOffset)
		return err
	})
	g.Go(func() (err error) {
		categories, err = uc.CategoryAPIClient.FindAll(gctx, principal.Credential)
		return err
	})
	g.Go(func() (err error) {
		users, err = uc.UserAPIClient.FindAll(gctx, principal.Credential)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.Log.Error("adminUsecase.GetCalendar error fetching week",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	week, projectionErr := calendar.Project(calendar.ResolveCategories(slots, categories), weekOffset, uc.Clock.Now())
	if projectionErr != nil {
		uc.Log.Warn("adminUsecase.GetCalendar projection skipped slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingWeekOffsetKey, weekOffset),
			zap.Error(projectionErr),
		)
	}

	view := calendar.BuildView(week, projectionErr, calendar.ViewOptions{
		Viewer:      principal.Identity,
		Labeler:     uc.Labeler,
		ExposeUsers: true,
	})
	view.Users = utils.ConvertUsersToResponse(users)
	return view, nil
}

func (uc *adminUsecase) ListUsers(ctx context.Context, principal models.Principal) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	users, err := uc.UserAPIClient.FindAll(ctx, principal.Credential)
	if err != nil {
		uc.Log.Error("adminUsecase.ListUsers error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.ConvertUsersToResponse(users), nil
}

func (uc *adminUsecase) CreateSlot(ctx context.Context, principal models.Principal, request *requests.CreateSlot) (*responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	start, end, err := uc.normalizeRange(&request.StartTime, &request.EndTime)
	if err != nil {
		return nil, err
	}

	slot, err := uc.SlotAPIClient.Create(ctx, principal.Credential, &requests.APISlotWrite{
		CategoryID: &request.CategoryID,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		uc.Log.Error("adminUsecase.CreateSlot error creating slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:        constvars.BookingEventSlotCreated,
		SlotID:      slot.ID,
		Actor:       principal.Identity.Username,
		CategoryIDs: []int{request.CategoryID},
	})
	response := utils.ConvertSlotToResponse(*slot)
	return &response, nil
}

func (uc *adminUsecase) UpdateSlot(ctx context.Context, principal models.Principal, slotID int, request *requests.UpdateSlot) (*responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.UpdateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
	)

	start, end, err := uc.normalizeRange(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	slot, err := uc.SlotAPIClient.Update(ctx, principal.Credential, slotID, &requests.APISlotWrite{
		CategoryID: request.CategoryID,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		uc.Log.Error("adminUsecase.UpdateSlot error updating slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:   constvars.BookingEventSlotUpdated,
		SlotID: slotID,
		Actor:  principal.Identity.Username,
	})
	response := utils.ConvertSlotToResponse(*slot)
	return &response, nil
}

func (uc *adminUsecase) DeleteSlot(ctx context.Context, principal models.Principal, slotID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
	)

	err := uc.SlotAPIClient.Delete(ctx, principal.Credential, slotID)
	if err != nil {
		uc.Log.Error("adminUsecase.DeleteSlot error deleting slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:   constvars.BookingEventSlotDeleted,
		SlotID: slotID,
		Actor:  principal.Identity.Username,
	})
	return nil
}

func (uc *adminUsecase) AssignSlot(ctx context.Context, principal models.Principal, slotID int, request *requests.AssignSlot) (*responses.Slot, error) {
	userID := request.UserID
	return uc.setUser(ctx, principal, slotID, &userID, constvars.BookingEventSlotAssigned)
}

func (uc *adminUsecase) UnassignSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Slot, error) {
	return uc.setUser(ctx, principal, slotID, nil, constvars.BookingEventSlotUnassigned)
}

func (uc *adminUsecase) setUser(ctx context.Context, principal models.Principal, slotID int, userID *int, eventType string) (*responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.setUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)

	slot, err := uc.SlotAPIClient.SetUser(ctx, principal.Credential, slotID, &requests.APISlotAssign{UserID: userID})
	if err != nil {
		uc.Log.Error("adminUsecase.setUser error updating slot user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, models.BookingEvent{
		Type:         eventType,
		SlotID:       slotID,
		Actor:        principal.Identity.Username,
		TargetUserID: userID,
	})
	response := utils.ConvertSlotToResponse(*slot)
	return &response, nil
}

// normalizeRange truncates the given datetime-local values to minutes and
// rejects a range whose start is not before its end. Either bound may be
// absent, the order is then left to the booking API.
func (uc *adminUsecase) normalizeRange(start, end *string) (*string, *string, error) {
	loc := uc.Clock.Now().Location()

	var startTime, endTime time.Time
	var normalizedStart, normalizedEnd *string
	if start != nil {
		parsed, err := utils.ParseDateTimeLocal(*start, loc)
		if err != nil {
			return nil, nil, exceptions.ErrInputValidation(err)
		}
		startTime = parsed
		formatted := parsed.Format(utils.DateTimeLocalLayout)
		normalizedStart = &formatted
	}
	if end != nil {
		parsed, err := utils.ParseDateTimeLocal(*end, loc)
		if err != nil {
			return nil, nil, exceptions.ErrInputValidation(err)
		}
		endTime = parsed
		formatted := parsed.Format(utils.DateTimeLocalLayout)
		normalizedEnd = &formatted
	}

	if start != nil && end != nil && !startTime.Before(endTime) {
		return nil, nil, exceptions.ErrStartNotBeforeEnd(fmt.Errorf("start %s, end %s", *normalizedStart, *normalizedEnd))
	}
	return normalizedStart, normalizedEnd, nil
}

func (uc *adminUsecase) publish(ctx context.Context, event models.BookingEvent) {
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("adminUsecase failed to publish booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}
