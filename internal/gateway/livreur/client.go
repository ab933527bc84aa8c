// Package livreur is the REST gateway to the delivery backend. Every call
// carries a bearer token; a 401 triggers one token refresh and one retry.
// Status codes map onto apperr sentinels so callers branch with errors.Is.
package livreur

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"service-livreur-client/internal/apperr"
	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/logx"
)

// Client calls the livreur backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logx.Logger
}

// NewClient creates a gateway client. A zero timeout defaults to 15s.
func NewClient(baseURL string, tokens TokenSource, logger logx.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("livreur gateway: marshal %s %s: %w", method, path, err)
		}
		payload = b
	}

	resp, err := c.send(ctx, method, path, query, payload, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("livreur gateway: %s %s: %w", method, path, err)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("livreur gateway: decode %s %s: %w", method, path, err)
	}
	return nil
}

// send issues the request once, refreshing the token and retrying a single
// time on 401.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, retried bool) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("livreur gateway: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("livreur gateway: token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", apperr.ErrNetwork, method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if _, err := c.tokens.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("livreur gateway: refresh token: %w", apperr.ErrUnauthorized)
		}
		c.logger.Debug("token refreshed, retrying request",
			logx.String("method", method),
			logx.String("path", path),
		)
		return c.send(ctx, method, path, query, payload, true)
	}
	return resp, nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusConflict:
		return apperr.ErrConflict
	case code == http.StatusNotFound:
		return apperr.ErrNotFound
	case code == http.StatusUnauthorized:
		return apperr.ErrUnauthorized
	case code >= 500:
		return fmt.Errorf("%w: status %d", apperr.ErrNetwork, code)
	default:
		return fmt.Errorf("%w: status %d", apperr.ErrInvalid, code)
	}
}

func idPath(parts ...string) string {
	out := ""
	for _, p := range parts {
		out += "/" + p
	}
	return out
}

func i64(v int64) string { return strconv.FormatInt(v, 10) }

// OrdersByDay fetches the orders visible to the driver for one calendar day.
func (c *Client) OrdersByDay(ctx context.Context, date string, driverID int64) ([]domain.Order, error) {
	q := url.Values{"date": {date}, "livreurId": {i64(driverID)}}
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/livreur/commandes/by-day", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderDetails fetches one order with its line items populated.
func (c *Client) OrderDetails(ctx context.Context, id int64) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodGet, idPath("livreur", "commande", i64(id), "details"), nil, nil, &out)
	return out, err
}

// AcceptOrder claims the order for the driver. A 409 maps to
// apperr.ErrConflict: another driver won.
func (c *Client) AcceptOrder(ctx context.Context, id, driverID int64) (domain.Order, error) {
	q := url.Values{"livreurId": {i64(driverID)}}
	var out domain.Order
	err := c.do(ctx, http.MethodPost, idPath("livreur", "commande", i64(id), "accept"), q, nil, &out)
	return out, err
}

// UpdateOrderStatus advances an order the driver owns.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	q := url.Values{"statut": {string(status)}}
	return c.do(ctx, http.MethodPut, idPath("livreur", "commande", i64(id), "statut"), q, nil, nil)
}

// History lists the driver's past orders between two dates (inclusive,
// either may be empty).
func (c *Client) History(ctx context.Context, driverID int64, startDate, endDate string) ([]domain.Order, error) {
	q := url.Values{"livreurId": {i64(driverID)}}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/livreur/commandes/historique-dynamique", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByDay returns how many confirmed orders exist for a calendar day.
func (c *Client) CountByDay(ctx context.Context, date string) (int, error) {
	q := url.Values{"date": {date}}
	var out int
	err := c.do(ctx, http.MethodGet, "/livreur/commandes/count-by-day", q, nil, &out)
	return out, err
}

// CountByType returns how many orders of a delivery type the driver handled.
func (c *Client) CountByType(ctx context.Context, driverID int64, t domain.DeliveryType) (int, error) {
	q := url.Values{"livreurId": {i64(driverID)}, "type": {string(t)}}
	var out int
	err := c.do(ctx, http.MethodGet, "/livreur/commandes/count-by-type", q, nil, &out)
	return out, err
}

// Bundles lists the grouped-order bundles visible to the driver.
func (c *Client) Bundles(ctx context.Context, driverID int64) ([]domain.Bundle, error) {
	q := url.Values{"livreurId": {i64(driverID)}}
	var out []domain.Bundle
	if err := c.do(ctx, http.MethodGet, "/livreur/grandes-commandes", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BundleByID fetches one bundle with its member orders.
func (c *Client) BundleByID(ctx context.Context, id int64) (domain.Bundle, error) {
	var out domain.Bundle
	err := c.do(ctx, http.MethodGet, idPath("livreur", "grande-commande", i64(id)), nil, nil, &out)
	return out, err
}

// AcceptBundle claims a bundle; the backend assigns every member order
// atomically and returns the accepted bundle.
func (c *Client) AcceptBundle(ctx context.Context, id, driverID int64) (domain.Bundle, error) {
	q := url.Values{"livreurId": {i64(driverID)}}
	var out domain.Bundle
	err := c.do(ctx, http.MethodPost, idPath("livreur", "grande-commande", i64(id), "accept"), q, nil, &out)
	return out, err
}

// AcceptedRequests lists delivery requests open for claiming.
func (c *Client) AcceptedRequests(ctx context.Context, driverID int64) ([]domain.DeliveryRequest, error) {
	q := url.Values{}
	if driverID != 0 {
		q.Set("livreurId", i64(driverID))
	}
	var out []domain.DeliveryRequest
	if err := c.do(ctx, http.MethodGet, "/api/demandes/acceptees", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyRequests lists the delivery requests assigned to the driver.
func (c *Client) MyRequests(ctx context.Context, driverID int64) ([]domain.DeliveryRequest, error) {
	var out []domain.DeliveryRequest
	if err := c.do(ctx, http.MethodGet, idPath("api", "demandes", "mes-livraisons", i64(driverID)), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestByID fetches one delivery request.
func (c *Client) RequestByID(ctx context.Context, id int64) (domain.DeliveryRequest, error) {
	var out domain.DeliveryRequest
	err := c.do(ctx, http.MethodGet, idPath("api", "demandes", i64(id)), nil, nil, &out)
	return out, err
}

// AcceptRequest claims a delivery request for the driver.
func (c *Client) AcceptRequest(ctx context.Context, id, driverID int64) (domain.DeliveryRequest, error) {
	q := url.Values{"livreurId": {i64(driverID)}}
	var out domain.DeliveryRequest
	err := c.do(ctx, http.MethodPost, idPath("api", "demandes", i64(id), "accepter"), q, nil, &out)
	return out, err
}

// UpdateRequestStatus advances a delivery request the driver owns.
func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	q := url.Values{"statut": {string(status)}}
	return c.do(ctx, http.MethodPut, idPath("api", "demandes", i64(id), "statut"), q, nil, nil)
}

// Profile fetches the driver profile (cash balance, ceiling, transport).
func (c *Client) Profile(ctx context.Context, driverID int64) (domain.DriverProfile, error) {
	var out domain.DriverProfile
	err := c.do(ctx, http.MethodGet, idPath("livreur", i64(driverID), "infos"), nil, nil, &out)
	return out, err
}

// UpdateOnline flips the driver's online flag.
func (c *Client) UpdateOnline(ctx context.Context, driverID int64, online bool) error {
	q := url.Values{"livreurId": {i64(driverID)}, "online": {strconv.FormatBool(online)}}
	return c.do(ctx, http.MethodPut, "/livreur/status", q, nil, nil)
}

// ProductByID fetches a catalog product, used to resolve its shop.
func (c *Client) ProductByID(ctx context.Context, id int64) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodGet, idPath("livreur", "produit", i64(id)), nil, nil, &out)
	return out, err
}

// ShopByID fetches a shop, used to resolve its address.
func (c *Client) ShopByID(ctx context.Context, id int64) (domain.Shop, error) {
	var out domain.Shop
	err := c.do(ctx, http.MethodGet, idPath("livreur", "boutique", i64(id)), nil, nil, &out)
	return out, err
}

// AddressByID fetches an address with its coordinates.
func (c *Client) AddressByID(ctx context.Context, id int64) (domain.Address, error) {
	var out domain.Address
	err := c.do(ctx, http.MethodGet, idPath("livreur", "adresse", i64(id)), nil, nil, &out)
	return out, err
}
