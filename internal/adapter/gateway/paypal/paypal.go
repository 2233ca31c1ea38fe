package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/govalues/decimal"
	"github.com/rgladkov/shopcheckout/internal/adapter/config"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"go.uber.org/zap"
)

// Client talks to the payment provider's order API. Authorize creates an
// order with intent CAPTURE, Capture converts the hold into a charge (the
// provider treats a repeated capture of the same order as a no-op, so the
// call is safe to retry), Void cancels an uncaptured hold.
type Client struct {
	logger *zap.Logger
	host   string

	clientID string
	secret   string
	http     *http.Client

	mu           sync.Mutex
	accessToken  string
	tokenExpires time.Time
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:   log,
		host:     cfg.HostString,
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		http:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpires) {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.host+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad response %v for token request", resp.StatusCode)
	}

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("error on token decode: %w", err)
	}

	c.accessToken = result.AccessToken
	// renew slightly early so in-flight requests never carry a stale token
	c.tokenExpires = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - 30*time.Second)

	return c.accessToken, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return fmt.Errorf("error on %s : %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("unexpected status for gateway request",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseItem struct {
	Name       string `json:"name"`
	UnitAmount amount `json:"unit_amount"`
	Quantity   string `json:"quantity"`
	SKU        string `json:"sku"`
}

type purchaseUnit struct {
	Amount amount         `json:"amount"`
	Items  []purchaseItem `json:"items"`
}

type orderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type orderResponse struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

func (c *Client) Authorize(ctx context.Context, basket *domain.ProcessedBasket, currency string) (*port.Authorization, error) {
	items := make([]purchaseItem, 0, len(basket.Items))
	for _, item := range basket.Items {
		items = append(items, purchaseItem{
			Name: item.Name,
			UnitAmount: amount{
				CurrencyCode: currency,
				Value:        item.Price.String(),
			},
			Quantity: strconv.Itoa(int(item.Quantity)),
			SKU:      strconv.FormatUint(item.ProductID, 10),
		})
	}
	request := orderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			Amount: amount{
				CurrencyCode: currency,
				Value:        basket.TotalCost.String(),
			},
			Items: items,
		}},
	}

	var result orderResponse
	if err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", request, &result); err != nil {
		return nil, err
	}

	return &port.Authorization{
		ID:     result.ID,
		Status: result.Status,
		Total: domain.Money{
			Currency: currency,
			Value:    basket.TotalCost,
		},
	}, nil
}

func (c *Client) GetAuthorization(ctx context.Context, authorizationID string) (*port.Authorization, error) {
	var result orderResponse
	if err := c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+authorizationID, nil, &result); err != nil {
		return nil, err
	}

	if len(result.PurchaseUnits) != 1 {
		return nil, fmt.Errorf("expected a single purchase unit, got %d", len(result.PurchaseUnits))
	}
	unit := result.PurchaseUnits[0]

	total, err := decimal.Parse(unit.Amount.Value)
	if err != nil {
		return nil, fmt.Errorf("error on amount decode: %w", err)
	}

	items := make([]port.AuthorizationItem, 0, len(unit.Items))
	for _, item := range unit.Items {
		sku, err := strconv.ParseUint(item.SKU, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error on sku decode: %w", err)
		}
		price, err := decimal.Parse(item.UnitAmount.Value)
		if err != nil {
			return nil, fmt.Errorf("error on unit amount decode: %w", err)
		}
		quantity, err := strconv.ParseInt(item.Quantity, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("error on quantity decode: %w", err)
		}
		items = append(items, port.AuthorizationItem{
			SKU:       sku,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  int32(quantity),
		})
	}

	return &port.Authorization{
		ID:     result.ID,
		Status: result.Status,
		Items:  items,
		Total: domain.Money{
			Currency: unit.Amount.CurrencyCode,
			Value:    total,
		},
	}, nil
}

func (c *Client) Capture(ctx context.Context, authorizationID string) (*port.CaptureResult, error) {
	var result orderResponse
	err := c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+authorizationID+"/capture", nil, &result)
	if err != nil {
		return nil, err
	}

	return &port.CaptureResult{
		Status:        result.Status,
		TransactionID: result.ID,
	}, nil
}

func (c *Client) Void(ctx context.Context, authorizationID string) error {
	return c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+authorizationID+"/void", nil, nil)
}
