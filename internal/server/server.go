package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"wedding-registry-backend/internal/handler"
	appmiddleware "wedding-registry-backend/internal/middleware"
	"wedding-registry-backend/internal/service"
)

type Server struct {
	echo                *echo.Echo
	mercadoPagoHandler  *handler.MercadoPagoHandler
	mercadoLivreHandler *handler.MercadoLivreHandler
	contentHandler      *handler.ContentHandler
	presentHandler      *handler.PresentHandler
	saleHandler         *handler.SaleHandler
	authHandler         *handler.AuthHandler
	jwtSecret           string
}

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewServer(
	log *logrus.Logger,
	jwtSecret string,
	reconcileService service.ReconcileService,
	webhookService service.WebhookService,
	checkoutService service.CheckoutService,
	contentService service.ContentService,
	presentService service.PresentService,
	authService service.AuthService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validator: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			})
			if v.Error != nil {
				entry.WithField("error", v.Error.Error()).Warn("request")
			} else {
				entry.Info("request")
			}
			return nil
		},
	}))

	s := &Server{
		echo:                e,
		mercadoPagoHandler:  handler.NewMercadoPagoHandler(reconcileService, webhookService, checkoutService),
		mercadoLivreHandler: handler.NewMercadoLivreHandler(reconcileService),
		contentHandler:      handler.NewContentHandler(contentService),
		presentHandler:      handler.NewPresentHandler(presentService),
		saleHandler:         handler.NewSaleHandler(reconcileService),
		authHandler:         handler.NewAuthHandler(authService),
		jwtSecret:           jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	admin := appmiddleware.RequireAdmin(s.jwtSecret)

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/auth/login", s.authHandler.Login)

	// -------- presents --------
	api.GET("/presents", s.presentHandler.List)
	api.GET("/presents/:id", s.presentHandler.Get)
	api.POST("/presents", s.presentHandler.Create, admin)
	api.PUT("/presents/:id", s.presentHandler.Update, admin)
	api.DELETE("/presents/:id", s.presentHandler.Delete, admin)

	// -------- sales ledger --------
	api.GET("/sales", s.saleHandler.List, admin)

	// -------- content --------
	api.GET("/content/:section", s.contentHandler.GetSection)
	api.PUT("/content/:section", s.contentHandler.UpdateSection, admin)

	// -------- mercado pago --------
	mercadopago := api.Group("/mercadopago")
	mercadopago.GET("/payments", s.mercadoPagoHandler.SyncPayments)
	mercadopago.GET("/merchant-orders", s.mercadoPagoHandler.SyncMerchantOrders)
	mercadopago.POST("/webhook", s.mercadoPagoHandler.Webhook)
	mercadopago.POST("/create-preference", s.mercadoPagoHandler.CreatePreference)
	mercadopago.POST("/create-cart-preference", s.mercadoPagoHandler.CreateCartPreference)
	mercadopago.GET("/order/:id", s.mercadoPagoHandler.GetOrder)
	mercadopago.GET("/cart/:id", s.mercadoPagoHandler.GetCart)

	// -------- mercado livre --------
	mercadolivre := api.Group("/mercadolivre")
	mercadolivre.GET("/orders", s.mercadoLivreHandler.SyncOrders)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
