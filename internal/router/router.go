package router

import (
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/config"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/handler"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/middleware"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/service"

	"github.com/bsm/redislock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// New is the composition root: repositories, services and handlers are wired
// here and nowhere else.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, locker *redislock.Client, log zerolog.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.FrontendOrigin),
		middleware.RateLimiter(300, time.Minute),
	)

	r.GET("/health", handler.Health(db, rdb))

	productoRepo := repository.NewProductoRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	inventarioSvc := service.NewInventarioService(productoRepo, inventarioRepo, log)
	cajaSvc := service.NewCajaService(cajaRepo, locker, log)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, inventarioSvc, cajaSvc, log)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, productoRepo, inventarioSvc, log)
	productoSvc := service.NewProductoService(productoRepo, log)
	proveedorSvc := service.NewProveedorService(proveedorRepo, log)
	dashboardSvc := service.NewDashboardService(dashboardRepo, log)

	api := r.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))

	handler.NewInventarioHandler(inventarioSvc).Register(api)
	handler.NewCajaHandler(cajaSvc).Register(api)
	handler.NewVentaHandler(ventaSvc).Register(api)
	handler.NewCompraHandler(compraSvc).Register(api)
	handler.NewProductoHandler(productoSvc).Register(api)
	handler.NewProveedorHandler(proveedorSvc).Register(api)
	handler.NewDashboardHandler(dashboardSvc).Register(api)

	return r
}
