package controller

import (
	"regexp"
	"strconv"

	"equimeet/core/controller"
	"equimeet/core/errors"
	"equimeet/modules/holiday/dto"
	"equimeet/modules/holiday/service"

	"github.com/labstack/echo/v4"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// HolidayController exposes the holiday cache over HTTP.
type HolidayController struct {
	controller.BaseController
	Cache service.HolidayCacheInterface
}

func NewHolidayController(cache service.HolidayCacheInterface) *HolidayController {
	return &HolidayController{
		BaseController: controller.NewBaseController(),
		Cache:          cache,
	}
}

// GetHolidays handles GET /holidays/:country/:year
func (c *HolidayController) GetHolidays(ctx echo.Context) error {
	countryCode := ctx.Param("country")
	if !countryCodeRe.MatchString(countryCode) {
		return c.BadRequest(errors.ErrInvalidCountryCode, "Country code must be ISO-3166-1 alpha-2")
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil || year < 1900 || year > 2200 {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid year")
	}

	holidays, degraded := c.Cache.Holidays(ctx.Request().Context(), countryCode, year)

	return c.SuccessResponse(ctx, &dto.HolidaysResponse{
		CountryCode: countryCode,
		Year:        year,
		Degraded:    degraded,
		Holidays:    holidays,
	}, "Success")
}
