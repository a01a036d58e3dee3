package controller

import (
	"equimeet/core/constants"
	"equimeet/core/controller"
	"equimeet/core/errors"
	"equimeet/core/utils"
	"equimeet/modules/participant/dto"
	"equimeet/modules/participant/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParticipantController handles roster HTTP requests.
type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: svc,
	}
}

func (c *ParticipantController) organizerID(ctx echo.Context) (uuid.UUID, error) {
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

// CreateParticipant handles POST /participants
func (c *ParticipantController) CreateParticipant(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ParticipantService.Create(ctx.Request().Context(), organizerID, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Participant created successfully")
}

// GetParticipant handles GET /participants/:id
func (c *ParticipantController) GetParticipant(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	result, appErr := c.ParticipantService.GetByID(ctx.Request().Context(), organizerID, id)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListParticipants handles GET /participants
func (c *ParticipantController) ListParticipants(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ParticipantService.List(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateParticipant handles PUT /participants/:id
func (c *ParticipantController) UpdateParticipant(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	var req dto.UpdateParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ParticipantService.Update(ctx.Request().Context(), organizerID, id, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Participant updated successfully")
}

// DeleteParticipant handles DELETE /participants/:id
func (c *ParticipantController) DeleteParticipant(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	if appErr := c.ParticipantService.Delete(ctx.Request().Context(), organizerID, id); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Participant deleted successfully")
}
