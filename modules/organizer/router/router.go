package router

import (
	"equimeet/core/middleware"
	"equimeet/modules/organizer/controller"

	"github.com/labstack/echo/v4"
)

// OrganizerRouter registers account routes.
type OrganizerRouter struct {
	OrganizerController *controller.OrganizerController
}

func NewOrganizerRouter(organizerController *controller.OrganizerController) *OrganizerRouter {
	return &OrganizerRouter{OrganizerController: organizerController}
}

// Setup registers account routes.
func (r *OrganizerRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.POST("/register", r.OrganizerController.Register)
	authRoutes.POST("/login", r.OrganizerController.Login)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.GET("/me", r.OrganizerController.Profile)
}
