package router

import (
	"equimeet/core/middleware"
	"equimeet/modules/holiday/controller"

	"github.com/labstack/echo/v4"
)

// HolidayRouter registers holiday routes.
type HolidayRouter struct {
	HolidayController *controller.HolidayController
}

func NewHolidayRouter(holidayController *controller.HolidayController) *HolidayRouter {
	return &HolidayRouter{HolidayController: holidayController}
}

// Setup registers holiday routes.
func (r *HolidayRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	holidayRoutes := privateRoutes.Group("/holidays", mw.AuthMiddleware())

	holidayRoutes.GET("/:country/:year", r.HolidayController.GetHolidays)
}
