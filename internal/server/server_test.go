package server_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"funnel-checkout/internal/checkout"
	"funnel-checkout/internal/config"
	"funnel-checkout/internal/ratelimit"
	"funnel-checkout/internal/server"
	"funnel-checkout/pkg/gateway"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Stub gateway ---

type stubGateway struct {
	order    *gateway.Order
	err      error
	notSetUp bool
	calls    int
	lastForm gateway.FormRequest
}

func (s *stubGateway) CreateForm(_ context.Context, form gateway.FormRequest) (*gateway.Order, error) {
	s.calls++
	s.lastForm = form
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func (s *stubGateway) Configured() bool {
	return !s.notSetUp
}

// --- Recording notifier ---

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Send(_ context.Context, text string) {
	n.messages = append(n.messages, text)
}

// --- Harness ---

type fixture struct {
	cfg      *config.Config
	prices   checkout.PriceTable
	gw       *stubGateway
	invoice  *stubGateway
	notifier *recordingNotifier
	window   time.Duration
}

func newFixture() *fixture {
	return &fixture{
		cfg: &config.Config{
			AllowedOrigins:  []string{"https://allowed.example"},
			PaymentCurrency: "EUR",
			PaymentMethod:   "card",
			WebhookURL:      "https://shop.example/api/webhook",
			LeadLanding:     "lp-003sl",
			LeadRedirectURL: "../lp-003sl/thankyou.html",
		},
		prices:   checkout.PriceTable{"lp-01": 1999},
		gw:       &stubGateway{order: &gateway.Order{OrderID: "X1", RedirectURL: "https://pay/X1"}},
		invoice:  &stubGateway{order: &gateway.Order{OrderID: "I1", RedirectURL: "https://pay/I1"}},
		notifier: &recordingNotifier{},
	}
}

func (f *fixture) router() *gin.Engine {
	limiter := ratelimit.New(ratelimit.NewMemoryStore(), f.window, zap.NewNop())
	srv := server.New(f.cfg, f.prices, f.gw, f.invoice, limiter, f.notifier, zap.NewNop())
	return srv.Router()
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
