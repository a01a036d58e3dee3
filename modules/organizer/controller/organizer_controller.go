package controller

import (
	"equimeet/core/constants"
	"equimeet/core/controller"
	"equimeet/core/errors"
	"equimeet/core/utils"
	"equimeet/modules/organizer/dto"
	"equimeet/modules/organizer/service"

	"github.com/labstack/echo/v4"
)

// OrganizerController handles account HTTP requests.
type OrganizerController struct {
	controller.BaseController
	OrganizerService service.OrganizerServiceInterface
}

func NewOrganizerController(svc service.OrganizerServiceInterface) *OrganizerController {
	return &OrganizerController{
		BaseController:   controller.NewBaseController(),
		OrganizerService: svc,
	}
}

// Register handles POST /auth/register
func (c *OrganizerController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.OrganizerService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Organizer registered successfully")
}

// Login handles POST /auth/login
func (c *OrganizerController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.OrganizerService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Profile handles GET /me
func (c *OrganizerController) Profile(ctx echo.Context) error {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if tokenData == nil || !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.OrganizerService.Profile(ctx.Request().Context(), claims.OrganizerID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
