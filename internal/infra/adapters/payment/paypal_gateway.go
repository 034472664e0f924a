// File: internal/infra/adapters/payment/paypal_gateway.go
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"quiz-platform/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*PayPalGateway)(nil)

// PayPalGateway implements adapter.PaymentGateway against the Orders v2 REST API.
// Orders are created with CAPTURE intent; the payer approves via the returned
// link and the server captures afterwards.
type PayPalGateway struct {
	clientID  string
	secret    string
	base      string
	returnURL string
	cancelURL string
	client    *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExp    time.Time
}

func NewPayPalGateway(clientID, secret, returnURL, cancelURL string, sandbox bool) (*PayPalGateway, error) {
	if clientID == "" || secret == "" {
		return nil, errors.New("paypal credentials empty")
	}
	if _, err := url.Parse(returnURL); err != nil {
		return nil, fmt.Errorf("invalid return url: %w", err)
	}
	base := "https://api-m.paypal.com"
	if sandbox {
		base = "https://api-m.sandbox.paypal.com"
	}
	return &PayPalGateway{
		clientID:  clientID,
		secret:    secret,
		base:      base,
		returnURL: returnURL,
		cancelURL: cancelURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (g *PayPalGateway) Name() string { return "paypal" }

// SetBaseURL overrides the API host. Used by tests.
func (g *PayPalGateway) SetBaseURL(base string) { g.base = base }

// token returns a cached OAuth2 access token, refreshing when it is within a
// minute of expiry.
func (g *PayPalGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.accessToken != "" && time.Until(g.tokenExp) > time.Minute {
		return g.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.clientID, g.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token http %d", resp.StatusCode)
	}
	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", errors.New("paypal token response empty")
	}
	g.accessToken = out.AccessToken
	g.tokenExp = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	return g.accessToken, nil
}

// CreateOrder calls /v2/checkout/orders and returns the order id plus the
// payer-facing approval link.
func (g *PayPalGateway) CreateOrder(ctx context.Context, amountCents int64, currency, description string) (*adapter.CreatedOrder, error) {
	tok, err := g.token(ctx)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"amount": map[string]any{
				"currency_code": currency,
				"value":         FormatCents(amountCents),
			},
			"description": description,
		}},
		"application_context": map[string]any{
			"return_url": g.returnURL,
			"cancel_url": g.cancelURL,
		},
	}
	b, _ := json.Marshal(payload)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, g.base+"/v2/checkout/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paypal create order http %d", resp.StatusCode)
	}
	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Links  []struct {
			Href string `json:"href"`
			Rel  string `json:"rel"`
		} `json:"links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errors.New("paypal create order: missing id")
	}
	created := &adapter.CreatedOrder{OrderID: out.ID}
	for _, l := range out.Links {
		if l.Rel == "approve" {
			created.ApproveURL = l.Href
			break
		}
	}
	return created, nil
}

// CaptureOrder settles an approved order and returns the capture details plus
// the raw payload for auditing.
func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (*adapter.CaptureResult, error) {
	tok, err := g.token(ctx)
	if err != nil {
		return nil, err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, g.base+"/v2/checkout/orders/"+orderID+"/capture", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Prefer", "return=representation")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paypal capture http %d", resp.StatusCode)
	}
	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Payer  struct {
			PayerID string `json:"payer_id"`
			Email   string `json:"email_address"`
			Name    struct {
				Given   string `json:"given_name"`
				Surname string `json:"surname"`
			} `json:"name"`
		} `json:"payer"`
		PurchaseUnits []struct {
			Payments struct {
				Captures []struct {
					ID     string `json:"id"`
					Status string `json:"status"`
					Amount struct {
						CurrencyCode string `json:"currency_code"`
						Value        string `json:"value"`
					} `json:"amount"`
				} `json:"captures"`
			} `json:"payments"`
		} `json:"purchase_units"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out.Status != "COMPLETED" {
		return nil, fmt.Errorf("paypal capture status %q", out.Status)
	}

	res := &adapter.CaptureResult{
		PayerID:    out.Payer.PayerID,
		PayerEmail: out.Payer.Email,
		PayerName:  strings.TrimSpace(out.Payer.Name.Given + " " + out.Payer.Name.Surname),
		Raw:        raw,
	}
	if len(out.PurchaseUnits) > 0 && len(out.PurchaseUnits[0].Payments.Captures) > 0 {
		c := out.PurchaseUnits[0].Payments.Captures[0]
		res.CaptureID = c.ID
		res.Currency = c.Amount.CurrencyCode
		cents, err := ParseAmount(c.Amount.Value)
		if err != nil {
			return nil, fmt.Errorf("paypal capture amount %q: %w", c.Amount.Value, err)
		}
		res.AmountCents = cents
	}
	if res.CaptureID == "" {
		return nil, errors.New("paypal capture: missing capture id")
	}
	return res, nil
}
