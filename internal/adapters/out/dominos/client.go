package dominos

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/core/domain/model/tracking"
	"pizzaorder/internal/core/ports"
	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/logger"
)

const (
	storeLocatorPath  = "/power/store-locator"
	validateOrderPath = "/power/validate-order"
	priceOrderPath    = "/power/price-order"
	placeOrderPath    = "/power/place-order"
	trackerPath       = "/orderstorage/GetTrackerData"

	maxReplySize = 4 << 20
)

var _ ports.PizzaAPI = (*Client)(nil)

// Config holds the connection settings of a Client.
type Config struct {
	BaseURL string
	// ConnectTimeout bounds dialing and the TLS handshake.
	ConnectTimeout time.Duration
	// ReadTimeout bounds the wait for response headers once the request is sent.
	ReadTimeout time.Duration
	UserAgent   string
}

// Client talks to the ordering service over HTTP. Each method is one request;
// nothing is retried.
//
// Example:
//
//	client, err := dominos.NewClient(dominos.Config{
//	    BaseURL:        "https://order.dominos.ca",
//	    ConnectTimeout: 10 * time.Second,
//	    ReadTimeout:    10 * time.Second,
//	}, log)
//	if err != nil {
//	    return err
//	}
//
//	lookup, err := client.FindStores(ctx, query)
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	timeout   time.Duration
	userAgent string
	log       logger.Logger
}

// NewClient validates cfg and builds a client with its own transport.
func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errs.NewValueIsRequiredError("base url")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("base url", err)
	}
	if cfg.ConnectTimeout <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("connect timeout", cfg.ConnectTimeout, time.Nanosecond, "unbounded")
	}
	if cfg.ReadTimeout <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("read timeout", cfg.ReadTimeout, time.Nanosecond, "unbounded")
	}
	if log == nil {
		log = logger.NewNop()
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		MaxIdleConns:          4,
		IdleConnTimeout:       30 * time.Second,
	}

	return &Client{
		baseURL:   base,
		http:      &http.Client{Transport: transport},
		timeout:   cfg.ConnectTimeout + cfg.ReadTimeout,
		userAgent: cfg.UserAgent,
		log:       log.With("component", "dominos"),
	}, nil
}

// FindStores calls the store locator with the delivery address.
func (c *Client) FindStores(ctx context.Context, query store.Query) (store.Lookup, error) {
	const op = "store-locator"

	if err := query.Validate(); err != nil {
		return store.Lookup{}, err
	}

	params := url.Values{}
	params.Set("type", store.DeliveryType)
	params.Set("c", query.CityLine())
	params.Set("s", query.Street())

	body, err := c.do(ctx, op, http.MethodGet, storeLocatorPath, params, nil)
	if err != nil {
		return store.Lookup{}, err
	}

	var reply storeLocatorDTO
	if err = json.Unmarshal(body, &reply); err != nil {
		return store.Lookup{}, &RemoteRejectionError{Operation: op, StatusCode: http.StatusOK, Cause: err}
	}

	lookup, err := reply.toDomain()
	if err != nil {
		return store.Lookup{}, &RemoteRejectionError{Operation: op, StatusCode: http.StatusOK, Cause: err}
	}
	return lookup, nil
}

func (c *Client) ValidateOrder(ctx context.Context, envelope order.Envelope) error {
	_, err := c.postOrder(ctx, "validate-order", validateOrderPath, envelope)
	return err
}

// PriceOrder returns the priced order. A reply without a Payment amount is
// treated as unreadable.
func (c *Client) PriceOrder(ctx context.Context, envelope order.Envelope) (order.PriceResponse, error) {
	const op = "price-order"

	body, err := c.postOrder(ctx, op, priceOrderPath, envelope)
	if err != nil {
		return order.PriceResponse{}, err
	}

	var reply priceReplyDTO
	if err = json.Unmarshal(body, &reply); err != nil {
		return order.PriceResponse{}, &RemoteRejectionError{Operation: op, StatusCode: http.StatusOK, Cause: err}
	}
	if _, ok := reply.Order.Amounts.Payment(); !ok {
		return order.PriceResponse{}, &RemoteRejectionError{
			Operation:  op,
			StatusCode: http.StatusOK,
			Cause:      errs.NewValueIsRequiredError("Order.Amounts.Payment"),
		}
	}

	return order.PriceResponse{Order: reply.Order}, nil
}

func (c *Client) PlaceOrder(ctx context.Context, envelope order.Envelope) error {
	_, err := c.postOrder(ctx, "place-order", placeOrderPath, envelope)
	return err
}

// TrackOrders reads the SOAP tracker reply for a phone number.
func (c *Client) TrackOrders(ctx context.Context, phone string) ([]tracking.OrderStatus, error) {
	const op = "order-tracker"

	if strings.TrimSpace(phone) == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	params := url.Values{}
	params.Set("Phone", phone)

	body, err := c.do(ctx, op, http.MethodGet, trackerPath, params, nil)
	if err != nil {
		return nil, err
	}

	var reply trackerEnvelopeDTO
	if err = xml.Unmarshal(body, &reply); err != nil {
		return nil, &RemoteRejectionError{Operation: op, StatusCode: http.StatusOK, Cause: err}
	}
	return reply.toDomain(), nil
}

// postOrder sends the envelope and checks the reply's Status field.
func (c *Client) postOrder(ctx context.Context, op, path string, envelope order.Envelope) ([]byte, error) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("%s: encode order: %w", op, err)
	}

	body, err := c.do(ctx, op, http.MethodPost, path, nil, payload)
	if err != nil {
		return nil, err
	}

	var status statusDTO
	if err = json.Unmarshal(body, &status); err != nil {
		return nil, &RemoteRejectionError{Operation: op, StatusCode: http.StatusOK, Cause: err}
	}
	if status.rejected() {
		return nil, &RemoteRejectionError{Operation: op, StatusCode: http.StatusOK, Codes: status.codes()}
	}
	return body, nil
}

// do performs one request and returns the body of a 2xx reply.
func (c *Client) do(
	ctx context.Context,
	op, method, path string,
	params url.Values,
	payload []byte,
) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, text/xml")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("remote call failed",
			"op", op, "method", method, "path", path,
			"duration", time.Since(started), "error", err,
		)
		return nil, &TransportError{Operation: op, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return nil, &TransportError{Operation: op, Cause: err}
	}

	c.log.Infow("remote call",
		"op", op, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(started), "bytes", len(body),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		rejection := &RemoteRejectionError{Operation: op, StatusCode: resp.StatusCode}
		var status statusDTO
		if json.Unmarshal(body, &status) == nil {
			rejection.Codes = status.codes()
		}
		return nil, rejection
	}

	return body, nil
}
