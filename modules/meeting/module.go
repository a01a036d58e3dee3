package meeting

import (
	"equimeet/core/database"
	"equimeet/core/middleware"
	holidayservice "equimeet/modules/holiday/service"
	"equimeet/modules/meeting/controller"
	"equimeet/modules/meeting/repository"
	"equimeet/modules/meeting/router"
	"equimeet/modules/meeting/service"
	participantrepository "equimeet/modules/participant/repository"
	policyservice "equimeet/modules/policy/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module. The policy service and holiday
// cache come from their own modules; the scheduling engine runs on top
// of both.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, policySvc policyservice.PolicyServiceInterface, holidayCache holidayservice.HolidayCacheInterface) {
	repo := repository.NewMeetingRepository(db)
	participantRepo := participantrepository.NewParticipantRepository(db)

	svc := service.NewMeetingService(repo, participantRepo, policySvc, holidayCache)
	ctrl := controller.NewMeetingController(svc)

	rtr := router.NewMeetingRouter(ctrl)
	rtr.Setup(e, mw)
}
