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

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	CookieOptions  utils.CookieOptions
	RequestTimeout time.Duration
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, cookieOptions utils.CookieOptions, requestTimeout time.Duration) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		CookieOptions:  cookieOptions,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	session, identity, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.SetSessionCookie(w, session.SessionID, session.ExpiresAt, ctrl.CookieOptions)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, identity)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Register)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeRegisterRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.Register(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, response)
}

// Logout always expires the cookie, even when the stored session could not
// be removed.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	principal := utils.PrincipalFromContext(r.Context())

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	utils.ClearSessionCookie(w, ctrl.CookieOptions)
	err := ctrl.AuthUsecase.Logout(ctx, principal)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

// Me reports the caller's identity. Anonymous callers get 200 with
// authenticated set to false.
func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	principal := utils.PrincipalFromContext(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIdentitySuccess, utils.ConvertIdentityToResponse(principal.Identity))
}
