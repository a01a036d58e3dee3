package holiday

import (
	"equimeet/core/config"
	"equimeet/core/database"
	"equimeet/core/middleware"
	"equimeet/modules/holiday/controller"
	"equimeet/modules/holiday/repository"
	"equimeet/modules/holiday/router"
	"equimeet/modules/holiday/service"
	"equimeet/modules/holiday/worker"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// TypeHolidaySweep is re-exported for scheduler registration.
const TypeHolidaySweep = worker.TypeHolidaySweep

// Init initializes the holiday module: routes, the cache service and
// the background refresh handlers. The returned cache is shared with
// the meeting module.
func Init(e *echo.Echo, mux *asynq.ServeMux, client *asynq.Client, db database.Database, rdb *redis.Client, cfg config.HolidayConfig, mw *middleware.Middleware) service.HolidayCacheInterface {
	var store repository.HolidayStore
	switch cfg.Store {
	case "redis":
		store = repository.NewRedisStore(rdb)
	default:
		store = repository.NewPostgresStore(db)
	}

	fetcher := service.NewProviderClient(cfg.ProviderURL, service.DefaultRetryPolicy())
	cache := service.NewHolidayCache(store, fetcher)

	ctrl := controller.NewHolidayController(cache)
	rtr := router.NewHolidayRouter(ctrl)
	rtr.Setup(e, mw)

	worker.NewHandler(cache, client).Register(mux)

	return cache
}
