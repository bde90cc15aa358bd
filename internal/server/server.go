package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paperbill/paperbill/internal/bankinfo"
	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
	"github.com/paperbill/paperbill/internal/config"
	"github.com/paperbill/paperbill/internal/customer"
	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"
	customereditor "github.com/paperbill/paperbill/internal/customer/editor"
	"github.com/paperbill/paperbill/internal/draft"
	"github.com/paperbill/paperbill/internal/invoice"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"github.com/paperbill/paperbill/internal/providers/pdf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	customer.Module,
	bankinfo.Module,
	invoice.Module,
	draft.Module,
	pdf.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterAPIRoutes()
	}),
	fx.Invoke(RunHTTP),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
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
	db              *gorm.DB
	log             *zap.Logger
	customerSvc     customerdomain.Service
	customerEditors *customereditor.Manager
	bankInfoSvc     bankinfodomain.Service
	invoiceSvc      invoicedomain.Service
	drafts          *draft.Manager
	pdf             pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	Log             *zap.Logger
	CustomerSvc     customerdomain.Service
	CustomerEditors *customereditor.Manager
	BankInfoSvc     bankinfodomain.Service
	InvoiceSvc      invoicedomain.Service
	Drafts          *draft.Manager
	PDF             pdf.Provider
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		log:             p.Log.Named("http"),
		customerSvc:     p.CustomerSvc,
		customerEditors: p.CustomerEditors,
		bankInfoSvc:     p.BankInfoSvc,
		invoiceSvc:      p.InvoiceSvc,
		drafts:          p.Drafts,
		pdf:             p.PDF,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api", s.OwnerRequired())

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	// -------- Customer inline editor --------
	api.POST("/customers/:id/edit", s.StartCustomerEdit)
	api.PATCH("/customers/edit", s.ChangeCustomerEdit)
	api.POST("/customers/edit/save", s.SaveCustomerEdit)
	api.POST("/customers/edit/cancel", s.CancelCustomerEdit)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.GET("/invoices/:id/pdf", s.GetInvoicePDF)
	api.DELETE("/invoices/:id", s.DeleteInvoice)

	// -------- Bank info --------
	api.GET("/bank-info", s.GetBankInfo)
	api.PUT("/bank-info", s.UpsertBankInfo)

	// -------- Invoice draft --------
	api.GET("/draft", s.GetDraft)
	api.PUT("/draft", s.UpdateDraft)
	api.PUT("/draft/input", s.SetDraftInput)
	api.POST("/draft/items", s.AddDraftItem)
	api.DELETE("/draft/items/:id", s.DeleteDraftItem)
	api.POST("/draft/items/:id/edit", s.StartDraftEdit)
	api.PATCH("/draft/edit", s.ChangeDraftEdit)
	api.POST("/draft/edit/save", s.SaveDraftEdit)
	api.POST("/draft/edit/cancel", s.CancelDraftEdit)
	api.POST("/draft/submit", s.SubmitDraft)
	api.DELETE("/draft", s.DiscardDraft)
}
