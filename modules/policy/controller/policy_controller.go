package controller

import (
	"equimeet/core/constants"
	"equimeet/core/controller"
	"equimeet/core/errors"
	"equimeet/core/utils"
	"equimeet/modules/policy/dto"
	"equimeet/modules/policy/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PolicyController handles working-hours policy HTTP requests.
type PolicyController struct {
	controller.BaseController
	PolicyService service.PolicyServiceInterface
}

func NewPolicyController(svc service.PolicyServiceInterface) *PolicyController {
	return &PolicyController{
		BaseController: controller.NewBaseController(),
		PolicyService:  svc,
	}
}

func (c *PolicyController) organizerID(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims.OrganizerID, nil
}

// UpsertPolicy handles PUT /policies/:country
func (c *PolicyController) UpsertPolicy(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.PolicyRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.PolicyService.UpsertCustomPolicy(ctx.Request().Context(), organizerID, ctx.Param("country"), &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Policy saved")
}

// ListPolicies handles GET /policies
func (c *PolicyController) ListPolicies(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.PolicyService.ListCustomPolicies(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetEffectivePolicy handles GET /policies/:country
func (c *PolicyController) GetEffectivePolicy(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.PolicyService.EffectivePolicy(ctx.Request().Context(), organizerID, ctx.Param("country"))
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// DeletePolicy handles DELETE /policies/:country
func (c *PolicyController) DeletePolicy(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.PolicyService.DeleteCustomPolicy(ctx.Request().Context(), organizerID, ctx.Param("country")); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Policy deleted")
}
