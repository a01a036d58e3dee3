package controller

import (
	"strconv"

	"equimeet/core/constants"
	"equimeet/core/controller"
	"equimeet/core/errors"
	"equimeet/core/utils"
	"equimeet/modules/meeting/dto"
	"equimeet/modules/meeting/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting HTTP requests.
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

func (c *MeetingController) organizerID(ctx echo.Context) (uuid.UUID, error) {
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

func (c *MeetingController) meetingID(ctx echo.Context) (uuid.UUID, *echo.HTTPError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}
	return id, nil
}

// CreateMeeting handles POST /meetings
func (c *MeetingController) CreateMeeting(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.Create(ctx.Request().Context(), organizerID, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting created successfully")
}

// GetMeeting handles GET /meetings/:id
func (c *MeetingController) GetMeeting(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.MeetingService.GetByID(ctx.Request().Context(), organizerID, id)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMeetings handles GET /meetings
func (c *MeetingController) ListMeetings(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.MeetingService.List(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMeeting handles PUT /meetings/:id
func (c *MeetingController) UpdateMeeting(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.UpdateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.Update(ctx.Request().Context(), organizerID, id, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting updated successfully")
}

// DeleteMeeting handles DELETE /meetings/:id
func (c *MeetingController) DeleteMeeting(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	if appErr := c.MeetingService.Delete(ctx.Request().Context(), organizerID, id); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Meeting deleted successfully")
}

// AddParticipant handles POST /meetings/:id/participants
func (c *MeetingController) AddParticipant(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.AddParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	if appErr := c.MeetingService.AddParticipant(ctx.Request().Context(), organizerID, id, participantID); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Participant added successfully")
}

// RemoveParticipant handles DELETE /meetings/:id/participants/:participantId
func (c *MeetingController) RemoveParticipant(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	participantID, err := uuid.Parse(ctx.Param("participantId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	if appErr := c.MeetingService.RemoveParticipant(ctx.Request().Context(), organizerID, id, participantID); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Participant removed successfully")
}

// ScoreCandidate handles POST /meetings/:id/score
func (c *MeetingController) ScoreCandidate(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.ScoreRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.ScoreCandidate(ctx.Request().Context(), organizerID, id, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetHeatmap handles GET /meetings/:id/heatmap?date=YYYY-MM-DD&top=N
func (c *MeetingController) GetHeatmap(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	req := dto.HeatmapRequest{TargetDate: ctx.QueryParam("date")}
	if top := ctx.QueryParam("top"); top != "" {
		n, err := strconv.Atoi(top)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "top must be an integer")
		}
		req.TopN = n
	}

	result, appErr := c.MeetingService.Heatmap(ctx.Request().Context(), organizerID, id, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SelectSlot handles POST /meetings/:id/select-slot
func (c *MeetingController) SelectSlot(ctx echo.Context) error {
	organizerID, err := c.organizerID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, httpErr := c.meetingID(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.SelectSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.SelectSlot(ctx.Request().Context(), organizerID, id, &req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting scheduled successfully")
}

// GetSharedMeeting handles GET /public/meetings/:shareCode
func (c *MeetingController) GetSharedMeeting(ctx echo.Context) error {
	result, appErr := c.MeetingService.SharedMeeting(ctx.Request().Context(), ctx.Param("shareCode"))
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
