package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"funnel-checkout/internal/checkout"
	"funnel-checkout/internal/config"
	"funnel-checkout/internal/notify"
	"funnel-checkout/internal/ratelimit"
	"funnel-checkout/pkg/gateway"
)

const (
	webhookSubPath = "/webhook"
	webhookPath    = "/api" + webhookSubPath
)

// FormCreator is the single gateway operation the handlers need.
type FormCreator interface {
	CreateForm(ctx context.Context, form gateway.FormRequest) (*gateway.Order, error)
	Configured() bool
}

// Server wires the HTTP handlers to their collaborators. Every field is set
// once at startup and treated as immutable afterwards.
type Server struct {
	cfg       *config.Config
	prices    checkout.PriceTable
	gw        FormCreator
	invoiceGW FormCreator
	limiter   *ratelimit.Limiter
	notifier  notify.Notifier
	logger    *zap.Logger
}

func New(
	cfg *config.Config,
	prices checkout.PriceTable,
	gw FormCreator,
	invoiceGW FormCreator,
	limiter *ratelimit.Limiter,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Server {
	return &Server{
		cfg:       cfg,
		prices:    prices,
		gw:        gw,
		invoiceGW: invoiceGW,
		limiter:   limiter,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	// ClientIP keys the rate limiter, so forwarding headers must not be
	// trusted: a spoofed X-Forwarded-For would mint a fresh key per request.
	_ = r.SetTrustedProxies(nil)

	// Origins are matched exactly against the configured allow-list; a
	// preflight from anywhere else is rejected with 403. The gateway's
	// server-to-server status callback carries no browser origin and is
	// exempt from the allow-list.
	browserCORS := cors.New(cors.Config{
		AllowOrigins: s.cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	})
	r.Use(func(c *gin.Context) {
		if c.Request.URL.Path != webhookPath {
			browserCORS(c)
		}
	})

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		fail(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/create_checkout", s.handleCreateCheckout)
	api.POST("/create_invoice_checkout", s.handleCreateInvoice)
	api.POST("/send_lead", s.handleSendLead)
	api.POST(webhookSubPath, s.handleWebhook)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
