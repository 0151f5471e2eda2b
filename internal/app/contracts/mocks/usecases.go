package mocks

import (
	"context"
	"io"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*models.Session, *responses.Identity, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*models.Session)
	identity, _ := args.Get(1).(*responses.Identity)
	return session, identity, args.Error(2)
}

func (m *AuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Detail, error) {
	args := m.Called(ctx, request)
	detail, _ := args.Get(0).(*responses.Detail)
	return detail, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, principal models.Principal) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}

func (m *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (models.Principal, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.Principal), args.Error(1)
}

func (m *AuthUsecase) ResolveCredential(credential string) (models.Principal, error) {
	args := m.Called(credential)
	return args.Get(0).(models.Principal), args.Error(1)
}

type BookingUsecase struct {
	mock.Mock
}

func (m *BookingUsecase) ListCategories(ctx context.Context, principal models.Principal) ([]responses.Category, error) {
	args := m.Called(ctx, principal)
	categories, _ := args.Get(0).([]responses.Category)
	return categories, args.Error(1)
}

func (m *BookingUsecase) GetCalendar(ctx context.Context, principal models.Principal, weekOffset int) (*responses.Calendar, error) {
	args := m.Called(ctx, principal, weekOffset)
	view, _ := args.Get(0).(*responses.Calendar)
	return view, args.Error(1)
}

func (m *BookingUsecase) ExportCalendar(ctx context.Context, principal models.Principal, weekOffset int, w io.Writer) error {
	args := m.Called(ctx, principal, weekOffset, w)
	return args.Error(0)
}

func (m *BookingUsecase) GetPreferences(ctx context.Context, principal models.Principal) (*responses.Preferences, error) {
	args := m.Called(ctx, principal)
	prefs, _ := args.Get(0).(*responses.Preferences)
	return prefs, args.Error(1)
}

func (m *BookingUsecase) UpdatePreferences(ctx context.Context, principal models.Principal, request *requests.UpdatePreferences) (*responses.Preferences, error) {
	args := m.Called(ctx, principal, request)
	prefs, _ := args.Get(0).(*responses.Preferences)
	return prefs, args.Error(1)
}

func (m *BookingUsecase) BookSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Detail, error) {
	args := m.Called(ctx, principal, slotID)
	detail, _ := args.Get(0).(*responses.Detail)
	return detail, args.Error(1)
}

func (m *BookingUsecase) UnsubscribeSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Detail, error) {
	args := m.Called(ctx, principal, slotID)
	detail, _ := args.Get(0).(*responses.Detail)
	return detail, args.Error(1)
}

type AdminUsecase struct {
	mock.Mock
}

func (m *AdminUsecase) GetCalendar(ctx context.Context, principal models.Principal, weekOffset int) (*responses.Calendar, error) {
	args := m.Called(ctx, principal, weekOffset)
	view, _ := args.Get(0).(*responses.Calendar)
	return view, args.Error(1)
}

func (m *AdminUsecase) ListUsers(ctx context.Context, principal models.Principal) ([]responses.User, error) {
	args := m.Called(ctx, principal)
	users, _ := args.Get(0).([]responses.User)
	return users, args.Error(1)
}

func (m *AdminUsecase) CreateSlot(ctx context.Context, principal models.Principal, request *requests.CreateSlot) (*responses.Slot, error) {
	args := m.Called(ctx, principal, request)
	slot, _ := args.Get(0).(*responses.Slot)
	return slot, args.Error(1)
}

func (m *AdminUsecase) UpdateSlot(ctx context.Context, principal models.Principal, slotID int, request *requests.UpdateSlot) (*responses.Slot, error) {
	args := m.Called(ctx, principal, slotID, request)
	slot, _ := args.Get(0).(*responses.Slot)
	return slot, args.Error(1)
}

func (m *AdminUsecase) DeleteSlot(ctx context.Context, principal models.Principal, slotID int) error {
	args := m.Called(ctx, principal, slotID)
	return args.Error(0)
}

func (m *AdminUsecase) AssignSlot(ctx context.Context, principal models.Principal, slotID int, request *requests.AssignSlot) (*responses.Slot, error) {
	args := m.Called(ctx, principal, slotID, request)
	slot, _ := args.Get(0).(*responses.Slot)
	return slot, args.Error(1)
}

func (m *AdminUsecase) UnassignSlot(ctx context.Context, principal models.Principal, slotID int) (*responses.Slot, error) {
	args := m.Called(ctx, principal, slotID)
	slot, _ := args.Get(0).(*responses.Slot)
	return slot, args.Error(1)
}
