package slots

import (
	"context"
	"fmt"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/booking_api/apiclient"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
)

type slotAPIClient struct {
	client *apiclient.Client
}

func NewSlotAPIClient(client *apiclient.Client) contracts.SlotAPIClient {
	return &slotAPIClient{client: client}
}

func (c *slotAPIClient) FindByWeek(ctx context.Context, credential string, weekOffset int) ([]models.Slot, error) {
	var result []responses.APISlot
	path := fmt.Sprintf("%s?%s=%d", constvars.ResourceSlots, constvars.QueryParamWeek, weekOffset)
	err := c.client.Do(ctx, constvars.MethodGet, path, credential, nil, &result)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0, len(result))
	for _, slot := range result {
		slots = append(slots, toSlot(slot))
	}
	return slots, nil
}

func (c *slotAPIClient) Create(ctx context.Context, credential string, request *requests.APISlotWrite) (*models.Slot, error) {
	var result responses.APISlot
	err := c.client.Do(ctx, constvars.MethodPost, constvars.ResourceSlots, credential, request, &result)
	if err != nil {
		return nil, err
	}
	slot := toSlot(result)
	return &slot, nil
}

func (c *slotAPIClient) Update(ctx context.Context, credential string, slotID int, request *requests.APISlotWrite) (*models.Slot, error) {
	var result responses.APISlot
	err := c.client.Do(ctx, constvars.MethodPatch, slotPath(slotID, ""), credential, request, &result)
	if err != nil {
		return nil, err
	}
	slot := toSlot(result)
	return &slot, nil
}

func (c *slotAPIClient) Delete(ctx context.Context, credential string, slotID int) error {
	return c.client.Do(ctx, constvars.MethodDelete, slotPath(slotID, ""), credential, nil, nil)
}

func (c *slotAPIClient) SetUser(ctx context.Context, credential string, slotID int, request *requests.APISlotAssign) (*models.Slot, error) {
	var result responses.APISlot
	err := c.client.Do(ctx, constvars.MethodPatch, slotPath(slotID, ""), credential, request, &result)
	if err != nil {
		return nil, err
	}
	slot := toSlot(result)
	return &slot, nil
}

func (c *slotAPIClient) Book(ctx context.Context, credential string, slotID int) (string, error) {
	var detail responses.APIDetail
	err := c.client.Do(ctx, constvars.MethodPost, slotPath(slotID, constvars.SlotActionBook), credential, nil, &detail)
	if err != nil {
		return "", err
	}
	return detail.Message(), nil
}

func (c *slotAPIClient) Unsubscribe(ctx context.Context, credential string, slotID int) (string, error) {
	var detail responses.APIDetail
	err := c.client.Do(ctx, constvars.MethodPost, slotPath(slotID, constvars.SlotActionUnsubscribe), credential, nil, &detail)
	if err != nil {
		return "", err
	}
	return detail.Message(), nil
}

func slotPath(slotID int, action string) string {
	return fmt.Sprintf("%s%d/%s", constvars.ResourceSlots, slotID, action)
}

// toSlot prefers the nested category id and falls back to category_id when
// the API serialized the category as its name only.
func toSlot(slot responses.APISlot) models.Slot {
	category := models.Category{ID: slot.Category.ID, Name: slot.Category.Name}
	if category.ID == 0 && slot.CategoryID != nil {
		category.ID = *slot.CategoryID
	}
	return models.Slot{
		ID:        slot.ID,
		Category:  category,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		User:      slot.User,
	}
}
