package organizer

import (
	"equimeet/core/config"
	"equimeet/core/database"
	"equimeet/core/middleware"
	"equimeet/modules/organizer/controller"
	"equimeet/modules/organizer/repository"
	"equimeet/modules/organizer/router"
	"equimeet/modules/organizer/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the organizer module.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, authCfg config.AuthConfig) {
	repo := repository.NewOrganizerRepository(db)
	svc := service.NewOrganizerService(repo, authCfg)
	ctrl := controller.NewOrganizerController(svc)

	rtr := router.NewOrganizerRouter(ctrl)
	rtr.Setup(e, mw)
}
