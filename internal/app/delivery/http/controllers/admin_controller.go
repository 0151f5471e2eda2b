package controllers

import (
	"net/http"
	"time"

	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log            *zap.Logger
	AdminUsecase   contracts.AdminUsecase
	RequestTimeout time.Duration
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase, requestTimeout time.Duration) *AdminController {
	return &AdminController{
		Log:            logger,
		AdminUsecase:   adminUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *AdminController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	weekOffset, err := utils.ParseWeekOffset(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AdminUsecase.GetCalendar(ctx, utils.PrincipalFromContext(r.Context()), weekOffset)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalendarSuccess, response)
}

func (ctrl *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AdminUsecase.ListUsers(ctx, utils.PrincipalFromContext(r.Context()))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccess, response)
}

func (ctrl *AdminController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateSlot)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeCreateSlotRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AdminUsecase.CreateSlot(ctx, utils.PrincipalFromContext(r.Context()), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SlotCreatedSuccess, response)
}

func (ctrl *AdminController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := utils.ParseSlotID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.UpdateSlot)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeUpdateSlotRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AdminUsecase.UpdateSlot(ctx, utils.PrincipalFromContext(r.Context()), slotID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotUpdatedSuccess, response)
}

func (ctrl *AdminController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := utils.ParseSlotID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.AdminUsecase.DeleteSlot(ctx, utils.PrincipalFromContext(r.Context()), slotID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotDeletedSuccess, nil)
}

func (ctrl *AdminController) AssignSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := utils.ParseSlotID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AssignSlot)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AdminUsecase.AssignSlot(ctx, utils.PrincipalFromContext(r.Context()), slotID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotAssignedSuccess, response)
}

func (ctrl *AdminController) UnassignSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := utils.ParseSlotID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AdminUsecase.UnassignSlot(ctx, utils.PrincipalFromContext(r.Context()), slotID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotUnassignedSuccess, response)
}
