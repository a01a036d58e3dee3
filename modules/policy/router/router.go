package router

import (
	"equimeet/core/middleware"
	"equimeet/modules/policy/controller"

	"github.com/labstack/echo/v4"
)

// PolicyRouter registers working-hours policy routes.
type PolicyRouter struct {
	PolicyController *controller.PolicyController
}

func NewPolicyRouter(policyController *controller.PolicyController) *PolicyRouter {
	return &PolicyRouter{PolicyController: policyController}
}

// Setup registers policy routes.
func (r *PolicyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	policyRoutes := privateRoutes.Group("/policies", mw.AuthMiddleware())

	policyRoutes.GET("", r.PolicyController.ListPolicies)
	policyRoutes.GET("/:country", r.PolicyController.GetEffectivePolicy)
	policyRoutes.PUT("/:country", r.PolicyController.UpsertPolicy)
	policyRoutes.DELETE("/:country", r.PolicyController.DeletePolicy)
}
