package policy

import (
	"equimeet/core/database"
	"equimeet/core/middleware"
	"equimeet/modules/policy/controller"
	"equimeet/modules/policy/repository"
	"equimeet/modules/policy/router"
	"equimeet/modules/policy/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the policy module and registers routes. The returned
// service is shared with the meeting module for policy resolution.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.PolicyServiceInterface {
	repo := repository.NewPolicyRepository(db)
	svc := service.NewPolicyService(repo)
	ctrl := controller.NewPolicyController(svc)
	rtr := router.NewPolicyRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
