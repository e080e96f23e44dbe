package providers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campus-connect/eventhub/internal/models/dtos"
)

const defaultRazorpayBaseURL = "https://api.razorpay.com/v1"

// RazorpayProvider talks to the Razorpay Orders API and verifies
// checkout signatures.
type RazorpayProvider struct {
	BaseURL   string
	keyID     string
	keySecret string
	Client    *http.Client
}

var _ PaymentGateway = (*RazorpayProvider)(nil)

// NewRazorpayProvider creates a provider for the given key pair. An
// empty baseURL selects the production endpoint.
func NewRazorpayProvider(keyID, keySecret, baseURL string) *RazorpayProvider {
	if baseURL == "" {
		baseURL = defaultRazorpayBaseURL
	}
	return &RazorpayProvider{
		BaseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *RazorpayProvider) KeyID() string {
	return p.keyID
}

type createOrderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder posts to /orders with basic auth and decodes the order
// object the gateway returns.
func (p *RazorpayProvider) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*dtos.GatewayOrder, error) {
	if amountPaise <= 0 {
		return nil, fmt.Errorf("order amount must be positive, got %d", amountPaise)
	}

	body, err := json.Marshal(createOrderReq{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.SetBasicAuth(p.keyID, p.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Message:    string(msg),
		}
	}

	var order dtos.GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &order, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with
// the key secret and compares in constant time.
func (p *RazorpayProvider) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(p.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
