package router

import (
	"equimeet/core/middleware"
	"equimeet/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

// ParticipantRouter registers roster routes.
type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{ParticipantController: participantController}
}

// Setup registers participant routes.
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	participantRoutes := privateRoutes.Group("/participants", mw.AuthMiddleware())

	participantRoutes.POST("", r.ParticipantController.CreateParticipant)
	participantRoutes.GET("", r.ParticipantController.ListParticipants)
	participantRoutes.GET("/:id", r.ParticipantController.GetParticipant)
	participantRoutes.PUT("/:id", r.ParticipantController.UpdateParticipant)
	participantRoutes.DELETE("/:id", r.ParticipantController.DeleteParticipant)
}
