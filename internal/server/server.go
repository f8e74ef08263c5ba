package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/innovationlabs/trackify/internal/catalog"
	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
	"github.com/innovationlabs/trackify/internal/config"
	"github.com/innovationlabs/trackify/internal/donation"
	donationdomain "github.com/innovationlabs/trackify/internal/donation/domain"
	"github.com/innovationlabs/trackify/internal/observability"
	obslogger "github.com/innovationlabs/trackify/internal/observability/logger"
	obsmetrics "github.com/innovationlabs/trackify/internal/observability/metrics"
	"github.com/innovationlabs/trackify/internal/payment"
	paymentdomain "github.com/innovationlabs/trackify/internal/payment/domain"
	"github.com/innovationlabs/trackify/internal/pricing"
	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
	"github.com/innovationlabs/trackify/internal/rates"
	"github.com/innovationlabs/trackify/internal/reports"
	reportsdomain "github.com/innovationlabs/trackify/internal/reports/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	rates.Module,
	catalog.Module,
	pricing.Module,
	payment.Module,
	donation.Module,
	reports.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

type EngineParams struct {
	fx.In

	Log         *zap.Logger
	ObsCfg      observability.Config
	HTTPMetrics *obsmetrics.HTTPMetrics
	Registry    *prometheus.Registry
}

func NewEngine(p EngineParams) *gin.Engine {
	if !p.ObsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Log:   p.Log,
		Debug: p.ObsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(p.HTTPMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	return r
}

type Params struct {
	fx.In

	Engine      *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	PricingSvc  pricingdomain.Service
	PaymentSvc  paymentdomain.Service
	DonationSvc donationdomain.Service
	CatalogSvc  catalogdomain.Service
	ReportsSvc  reportsdomain.Service
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	pricingSvc  pricingdomain.Service
	paymentSvc  paymentdomain.Service
	donationSvc donationdomain.Service
	catalogSvc  catalogdomain.Service
	reportsSvc  reportsdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		engine:      p.Engine,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		pricingSvc:  p.PricingSvc,
		paymentSvc:  p.PaymentSvc,
		donationSvc: p.DonationSvc,
		catalogSvc:  p.CatalogSvc,
		reportsSvc:  p.ReportsSvc,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")

	api.POST("/pricing/quote", s.Quote)

	api.POST("/payments", s.CreatePayment)
	api.GET("/payments", s.ListPayments)
	api.GET("/payments/:id", s.GetPayment)
	api.PATCH("/payments/:id/status", s.UpdatePaymentStatus)

	api.POST("/donations", s.CreateDonation)
	api.GET("/donations", s.ListDonations)
	api.GET("/donations/:id", s.GetDonation)

	api.GET("/tools", s.ListTools)
	api.GET("/components", s.ListComponents)

	api.GET("/admin/reports", s.AdminReports)
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
