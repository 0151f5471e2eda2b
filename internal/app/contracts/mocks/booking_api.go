// Package mocks holds testify mocks of the contracts shared by several
// test packages.
package mocks

import (
	"context"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type SlotAPIClient struct {
	mock.Mock
}

func (m *SlotAPIClient) FindByWeek(ctx context.Context, credential string, weekOffset int) ([]models.Slot, error) {
	args := m.Called(ctx, credential, weekOffset)
	slots, _ := args.Get(0).([]models.Slot)
	return slots, args.Error(1)
}

func (m *SlotAPIClient) Create(ctx context.Context, credential string, request *requests.APISlotWrite) (*models.Slot, error) {
	args := m.Called(ctx, credential, request)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *SlotAPIClient) Update(ctx context.Context, credential string, slotID int, request *requests.APISlotWrite) (*models.Slot, error) {
	args := m.Called(ctx, credential, slotID, request)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *SlotAPIClient) Delete(ctx context.Context, credential string, slotID int) error {
	args := m.Called(ctx, credential, slotID)
	return args.Error(0)
}

func (m *SlotAPIClient) SetUser(ctx context.Context, credential string, slotID int, request *requests.APISlotAssign) (*models.Slot, error) {
	args := m.Called(ctx, credential, slotID, request)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *SlotAPIClient) Book(ctx context.Context, credential string, slotID int) (string, error) {
	args := m.Called(ctx, credential, slotID)
	return args.String(0), args.Error(1)
}

func (m *SlotAPIClient) Unsubscribe(ctx context.Context, credential string, slotID int) (string, error) {
	args := m.Called(ctx, credential, slotID)
	return args.String(0), args.Error(1)
}

type CategoryAPIClient struct {
	mock.Mock
}

func (m *CategoryAPIClient) FindAll(ctx context.Context, credential string) ([]models.Category, error) {
	args := m.Called(ctx, credential)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

type PreferenceAPIClient struct {
	mock.Mock
}

func (m *PreferenceAPIClient) Get(ctx context.Context, credential string) ([]models.Category, error) {
	args := m.Called(ctx, credential)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *PreferenceAPIClient) Update(ctx context.Context, credential string, request *requests.APIPreferences) ([]models.Category, error) {
	args := m.Called(ctx, credential, request)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

type UserAPIClient struct {
	mock.Mock
}

func (m *UserAPIClient) FindAll(ctx context.Context, credential string) ([]models.User, error) {
	args := m.Called(ctx, credential)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

type BookingEventPublisher struct {
	mock.Mock
}

func (m *BookingEventPublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *BookingEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
