package router

import (
	"equimeet/core/middleware"
	"equimeet/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter registers meeting routes.
type MeetingRouter struct {
	MeetingController *controller.MeetingController
}

func NewMeetingRouter(meetingController *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{MeetingController: meetingController}
}

// Setup registers meeting routes.
func (r *MeetingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.GET("/meetings/:shareCode", r.MeetingController.GetSharedMeeting)

	privateRoutes := v1.Group("/private")
	meetingRoutes := privateRoutes.Group("/meetings", mw.AuthMiddleware())

	meetingRoutes.POST("", r.MeetingController.CreateMeeting)
	meetingRoutes.GET("", r.MeetingController.ListMeetings)
	meetingRoutes.GET("/:id", r.MeetingController.GetMeeting)
	meetingRoutes.PUT("/:id", r.MeetingController.UpdateMeeting)
	meetingRoutes.DELETE("/:id", r.MeetingController.DeleteMeeting)

	meetingRoutes.POST("/:id/participants", r.MeetingController.AddParticipant)
	meetingRoutes.DELETE("/:id/participants/:participantId", r.MeetingController.RemoveParticipant)

	meetingRoutes.POST("/:id/score", r.MeetingController.ScoreCandidate)
	meetingRoutes.GET("/:id/heatmap", r.MeetingController.GetHeatmap)
	meetingRoutes.POST("/:id/select-slot", r.MeetingController.SelectSlot)
}
