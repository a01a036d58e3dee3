package participant

import (
	"equimeet/core/database"
	"equimeet/core/middleware"
	"equimeet/modules/participant/controller"
	"equimeet/modules/participant/repository"
	"equimeet/modules/participant/router"
	"equimeet/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the participant module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewParticipantRepository(db)
	svc := service.NewParticipantService(repo)
	ctrl := controller.NewParticipantController(svc)
	rtr := router.NewParticipantRouter(ctrl)

	rtr.Setup(e, mw)
}
