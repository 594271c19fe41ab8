package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridianmobile/careline/internal/billing"
	billingdomain "github.com/meridianmobile/careline/internal/billing/domain"
	"github.com/meridianmobile/careline/internal/config"
	"github.com/meridianmobile/careline/internal/customer"
	customerdomain "github.com/meridianmobile/careline/internal/customer/domain"
	"github.com/meridianmobile/careline/internal/knowledge"
	knowledgedomain "github.com/meridianmobile/careline/internal/knowledge/domain"
	"github.com/meridianmobile/careline/internal/product"
	productdomain "github.com/meridianmobile/careline/internal/product/domain"
	"github.com/meridianmobile/careline/internal/promotion"
	promotiondomain "github.com/meridianmobile/careline/internal/promotion/domain"
	"github.com/meridianmobile/careline/internal/security"
	securitydomain "github.com/meridianmobile/careline/internal/security/domain"
	"github.com/meridianmobile/careline/internal/subscription"
	subscriptiondomain "github.com/meridianmobile/careline/internal/subscription/domain"
	"github.com/meridianmobile/careline/internal/support"
	supportdomain "github.com/meridianmobile/careline/internal/support/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	customer.Module,
	subscription.Module,
	billing.Module,
	product.Module,
	promotion.Module,
	security.Module,
	support.Module,
	knowledge.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
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

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	customerSvc     customerdomain.Service
	subscriptionSvc subscriptiondomain.Service
	billingSvc      billingdomain.Service
	productSvc      productdomain.Service
	promotionSvc    promotiondomain.Service
	securitySvc     securitydomain.Service
	supportSvc      supportdomain.Service
	knowledgeSvc    knowledgedomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	CustomerSvc     customerdomain.Service
	SubscriptionSvc subscriptiondomain.Service
	BillingSvc      billingdomain.Service
	ProductSvc      productdomain.Service
	PromotionSvc    promotiondomain.Service
	SecuritySvc     securitydomain.Service
	SupportSvc      supportdomain.Service
	KnowledgeSvc    knowledgedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		customerSvc:     p.CustomerSvc,
		subscriptionSvc: p.SubscriptionSvc,
		billingSvc:      p.BillingSvc,
		productSvc:      p.ProductSvc,
		promotionSvc:    p.PromotionSvc,
		securitySvc:     p.SecuritySvc,
		supportSvc:      p.SupportSvc,
		knowledgeSvc:    p.KnowledgeSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.GET("/customers/:id/orders", s.ListCustomerOrders)
	api.GET("/customers/:id/billing", s.GetBillingSummary)
	api.GET("/customers/:id/promotions", s.ListEligiblePromotions)
	api.GET("/customers/:id/security_logs", s.ListSecurityLogs)
	api.POST("/customers/:id/unlock", s.UnlockAccount)
	api.GET("/customers/:id/tickets", s.ListSupportTickets)
	api.POST("/customers/:id/tickets", s.CreateSupportTicket)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)

	// -------- Subscriptions --------
	api.GET("/subscriptions/:id", s.GetSubscriptionByID)
	api.PATCH("/subscriptions/:id", s.UpdateSubscription)
	api.GET("/subscriptions/:id/usage", s.GetDataUsage)

	// -------- Invoices --------
	api.GET("/invoices/:id/payments", s.ListInvoicePayments)
	api.POST("/invoices/:id/payments", s.PayInvoice)

	// -------- Promotions --------
	api.GET("/promotions", s.ListPromotions)

	// -------- Knowledge base --------
	api.POST("/knowledge/search", s.SearchKnowledge)
}
