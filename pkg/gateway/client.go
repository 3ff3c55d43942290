package gateway

// PAYMENT GATEWAY CLIENT

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const createFormPath = "/api/payment/createForm"

// Sentinel errors let handlers map gateway failures onto API error codes.
var (
	ErrBadStatus = errors.New("gateway returned non-success status")
	ErrBadJSON   = errors.New("gateway returned non-JSON body")
)

// FormRequest is the body of a createForm call. Amount is a fixed-point
// decimal string with exactly two fraction digits, never a float.
type FormRequest struct {
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
	WebhookURL    string `json:"webhook_url"`
}

// Order is the gateway's answer: where to redirect the buyer to pay.
type Order struct {
	OrderID     string
	RedirectURL string
}

type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *zap.Logger
}

func NewClient(baseURL, clientID, clientSecret string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Configured reports whether the credentials needed for CreateForm are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.clientID != "" && c.clientSecret != ""
}

// CreateForm requests a hosted payment-collection form from the gateway with
// a single authenticated POST. An empty OrderID or RedirectURL in a decoded
// response is left for the caller to judge: the checkout flow requires both,
// the invoice flow tolerates a missing order id.
func (c *Client) CreateForm(ctx context.Context, form FormRequest) (*Order, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+createFormPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// The body is decoded before the status is judged, so an upstream that
	// answers a non-JSON error page is reported as invalid JSON rather than
	// as a bad status. Older gateway deployments answer with orderId
	// instead of order_id.
	var payload struct {
		OrderID     string `json:"order_id"`
		OrderIDAlt  string `json:"orderId"`
		RedirectURL string `json:"redirect_url"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Error("Payment gateway returned invalid JSON",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return nil, ErrBadJSON
	}

	if resp.StatusCode >= 300 {
		c.logger.Error("Payment gateway error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	orderID := payload.OrderID
	if orderID == "" {
		orderID = payload.OrderIDAlt
	}

	return &Order{
		OrderID:     strings.TrimSpace(orderID),
		RedirectURL: strings.TrimSpace(payload.RedirectURL),
	}, nil
}
