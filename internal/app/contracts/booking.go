package contracts

import (
	"context"
	"io"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	ListCategories(ctx context.Context, principal models.Principal) ([]responses.Category, error)
	GetCalendar(ctx context.Context, principal models.Principal, weekOffset int) (*responses.Calendar, error)
	ExportCalendar(ctx context.Context, principal models.Principal, weekOffset int, w io.Writer) error
	GetPreferences(ctx context.Context, principal models.Principal) (*responses.Preferences, error)
	UpdatePreferences(ctx context.Context, principal models.Principal, request *requests.UpdatePreferences) (*responses.Preferences, error)
	BookSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Detail, error)
	UnsubscribeSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Detail, error)
}

type AdminUsecase interface {
	GetCalendar(ctx context.Context, principal models.Principal, weekOffset int) (*responses.Calendar, error)
	ListUsers(ctx context.Context, principal models.Principal) ([]responses.User, error)
	CreateSlot(ctx context.Context, principal models.Principal, request *requests.CreateSlot) (*responses.Slot, error)
	UpdateSlot(ctx context.Context, principal models.Principal, slotID int, request *requests.UpdateSlot) (*responses.Slot, error)
	DeleteSlot(ctx context.Context, principal models.Principal, slotID int) error
	AssignSlot(ctx context.Context, principal models.Principal, slotID int, request *requests.AssignSlot) (*responses.Slot, error)
	UnassignSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Slot, error)
}
