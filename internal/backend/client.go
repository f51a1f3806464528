// Package backend is the HTTP client for the external shop API. The backend
// owns products, categories, orders and payments; this client never caches
// and never retries; callers decide what a failure means.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

const maxErrorBody = 2048

// Client talks to the shop backend under <baseURL>/api.
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
	metrics    *telemetry.BusinessMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAdminToken sets the Authorization token attached to admin payment
// endpoints.
func WithAdminToken(token string) Option {
	return func(c *Client) { c.adminToken = token }
}

// WithMetrics attaches a failure counter per backend operation.
func WithMetrics(m *telemetry.BusinessMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for the given backend origin, e.g.
// "https://shop.partyland.uz".
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// paginated is the DRF list envelope. Results stays raw so each caller can
// decode its own element type.
type paginated struct {
	Count    int             `json:"count"`
	Next     string          `json:"next"`
	Previous string          `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// ListProducts fetches the product list, optionally filtered by category
// slug. The backend may answer with either a bare array or a paginated
// envelope.
func (c *Client) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	const op = "backend.products.list"

	path := "/api/products/"
	if categorySlug != "" {
		path += "?category__slug=" + url.QueryEscape(categorySlug)
	}

	body, err := c.get(ctx, op, path)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := decodeListOrEnvelope(body, &products); err != nil {
		return nil, domain.Internal(err, op, "failed to decode product list")
	}
	return products, nil
}

// GetProduct fetches one product. Detail responses expand category into an
// object, which domain.Product carries as raw JSON.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "backend.products.get"

	body, err := c.get(ctx, op, fmt.Sprintf("/api/products/%d/", id))
	if err != nil {
		return nil, err
	}

	var p domain.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, domain.Internal(err, op, "failed to decode product")
	}
	return &p, nil
}

// ListCategories collects the complete category set, following next links
// across pages and de-duplicating by id. The walk stops when the backend
// stops handing out next links or a page yields nothing new.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "backend.categories.list"

	var all []domain.Category
	seen := make(map[int64]bool)

	path := "/api/categories/?page_size=100"
	for path != "" {
		body, err := c.get(ctx, op, path)
		if err != nil {
			return nil, err
		}

		var env paginated
		var page []domain.Category
		if err := json.Unmarshal(body, &env); err == nil && env.Results != nil {
			if err := json.Unmarshal(env.Results, &page); err != nil {
				return nil, domain.Internal(err, op, "failed to decode category page")
			}
		} else if err := json.Unmarshal(body, &page); err != nil {
			return nil, domain.Internal(err, op, "failed to decode category list")
		}

		added := 0
		for _, cat := range page {
			if seen[cat.ID] {
				continue
			}
			seen[cat.ID] = true
			all = append(all, cat)
			added++
		}
		if added == 0 && env.Next != "" {
			// A page of pure duplicates means the pagination is looping.
			break
		}

		path = c.nextPath(env.Next)
	}

	return all, nil
}

// nextPath converts a DRF next link (often absolute, pointing at the
// backend's own host) into a path request against our configured origin.
func (c *Client) nextPath(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	path := u.Path
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	if !strings.HasPrefix(path, "/api/") {
		return ""
	}
	return path
}

// CreateCheckout submits an order. A non-2xx answer surfaces the backend's
// own error text so the customer sees why the order was refused.
func (c *Client) CreateCheckout(ctx context.Context, payload domain.CheckoutPayload) (*domain.CheckoutResponse, error) {
	const op = "backend.checkout.create"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to encode checkout payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/checkout/", bytes.NewReader(body))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build checkout request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(op)
		return nil, domain.Unavailable(err, op, "Shop backend is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.fail(op)
		msg := readErrorBody(resp.Body)
		code := domain.EUNAVAILABLE
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			code = domain.EINVALID
		}
		if msg == "" {
			msg = "Failed to create checkout"
		}
		return nil, domain.Errorf(code, op, "%s", msg)
	}

	var out domain.CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, domain.Internal(err, op, "failed to decode checkout response")
	}
	return &out, nil
}

// ListPayments fetches the admin moderation queue for a status.
func (c *Client) ListPayments(ctx context.Context, status string) ([]domain.AdminPayment, error) {
	const op = "backend.payments.list"

	path := "/api/admin/payments/"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	body, err := c.getAdmin(ctx, op, path)
	if err != nil {
		return nil, err
	}

	var payments []domain.AdminPayment
	if err := decodeListOrEnvelope(body, &payments); err != nil {
		return nil, domain.Internal(err, op, "failed to decode payment list")
	}
	return payments, nil
}

// GetPaymentDetail fetches one payment plus its order.
func (c *Client) GetPaymentDetail(ctx context.Context, id int64) (*domain.AdminPaymentDetail, error) {
	const op = "backend.payments.get"

	body, err := c.getAdmin(ctx, op, fmt.Sprintf("/api/admin/payments/%d/", id))
	if err != nil {
		return nil, err
	}

	var detail domain.AdminPaymentDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, domain.Internal(err, op, "failed to decode payment detail")
	}
	return &detail, nil
}

// ApprovePayment marks a payment approved.
func (c *Client) ApprovePayment(ctx context.Context, id int64) (*domain.AdminPayment, error) {
	const op = "backend.payments.approve"
	return c.postPaymentAction(ctx, op, fmt.Sprintf("/api/admin/payments/%d/approve/", id), nil)
}

// RejectPayment marks a payment rejected with a reason.
func (c *Client) RejectPayment(ctx context.Context, id int64, reason string) (*domain.AdminPayment, error) {
	const op = "backend.payments.reject"
	return c.postPaymentAction(ctx, op, fmt.Sprintf("/api/admin/payments/%d/reject/", id), map[string]string{"reason": reason})
}

func (c *Client) postPaymentAction(ctx context.Context, op, path string, payload any) (*domain.AdminPayment, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(op)
		return nil, domain.Unavailable(err, op, "Shop backend is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.fail(op)
		return nil, c.statusError(op, resp)
	}

	var payment domain.AdminPayment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, domain.Internal(err, op, "failed to decode payment")
	}
	return &payment, nil
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	return c.doGet(ctx, op, path, false)
}

func (c *Client) getAdmin(ctx context.Context, op, path string) ([]byte, error) {
	return c.doGet(ctx, op, path, true)
}

func (c *Client) doGet(ctx context.Context, op, path string, admin bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if admin {
		c.authorize(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(op)
		return nil, domain.Unavailable(err, op, "Shop backend is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.fail(op)
		return nil, c.statusError(op, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to read response")
	}
	return body, nil
}

// fail records a backend call failure for the operation.
func (c *Client) fail(op string) {
	if c.metrics != nil {
		c.metrics.BackendErrors.WithLabelValues(op).Inc()
	}
}

func (c *Client) authorize(req *http.Request) {
	if c.adminToken != "" {
		req.Header.Set("Authorization", "Token "+c.adminToken)
	}
}

func (c *Client) statusError(op string, resp *http.Response) error {
	msg := readErrorBody(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.Errorf(domain.ENOTFOUND, op, "Not found")
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.Unauthorized(op, "Shop backend rejected admin credentials")
	}
	if msg == "" {
		msg = fmt.Sprintf("Shop backend returned status %d", resp.StatusCode)
	}
	return domain.Errorf(domain.EUNAVAILABLE, op, "%s", msg)
}

func readErrorBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// decodeListOrEnvelope handles the backend's two list shapes: a bare JSON
// array or a paginated envelope with results.
func decodeListOrEnvelope(body []byte, out any) error {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(body, out)
	}
	var env paginated
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if env.Results == nil {
		return fmt.Errorf("response has neither array nor results field")
	}
	return json.Unmarshal(env.Results, out)
}
