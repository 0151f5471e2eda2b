package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	RequestTimeout time.Duration
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, requestTimeout time.Duration) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *BookingController) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.ListCategories(ctx, utils.PrincipalFromContext(r.Context()))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCategoriesSuccess, response)
}

func (ctrl *BookingController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	weekOffset, err := utils.ParseWeekOffset(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.GetCalendar(ctx, utils.PrincipalFromContext(r.Context()), weekOffset)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalendarSuccess, response)
}

// ExportCalendar renders into a buffer first so a failure can still be
// answered with the JSON error envelope.
func (ctrl *BookingController) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	weekOffset, err := utils.ParseWeekOffset(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	var buf bytes.Buffer
	err = ctrl.BookingUsecase.ExportCalendar(ctx, utils.PrincipalFromContext(r.Context()), weekOffset, &buf)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCalendarCharsetUTF8)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="week_%d.ics"`, weekOffset))
	w.WriteHeader(constvars.StatusOK)
	buf.WriteTo(w)
}

func (ctrl *BookingController) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.GetPreferences(ctx, utils.PrincipalFromContext(r.Context()))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPreferencesSuccess, response)
}

func (ctrl *BookingController) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePreferences)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.UpdatePreferences(ctx, utils.PrincipalFromContext(r.Context()), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetPreferencesSuccess, response)
}

func (ctrl *BookingController) BookSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := utils.ParseSlotID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.BookSlot(ctx, utils.PrincipalFromContext(r.Context()), slotID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotBookedSuccess, response)
}

func (ctrl *BookingController) UnsubscribeSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := utils.ParseSlotID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.UnsubscribeSlot(ctx, utils.PrincipalFromContext(r.Context()), slotID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotUnsubscribedSuccess, response)
}
