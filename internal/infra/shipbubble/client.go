// Package shipbubble implements the logistics provider against the Shipbubble REST API.
package shipbubble

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rocktea/config"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 20 * time.Second

// Client implements service.LogisticsProvider against the Shipbubble REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient is the constructor for the Shipbubble client.
func NewClient(cfg *config.Config) service.LogisticsProvider {
	timeout := cfg.Shipbubble.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    cfg.Shipbubble.BaseURL,
		apiKey:     cfg.Shipbubble.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is Shipbubble's uniform response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ValidateAddress canonicalizes a free-form address string.
func (c *Client) ValidateAddress(ctx context.Context, phone, email, name, address string) (*service.AddressValidation, error) {
	body := map[string]any{
		"phone":   phone,
		"email":   email,
		"name":    name,
		"address": address,
	}

	data, _, err := c.do(ctx, http.MethodPost, "/shipping/address/validate", body)
	if err != nil {
		return nil, err
	}

	var validation service.AddressValidation
	if err := json.Unmarshal(data, &validation); err != nil {
		return nil, errors.Wrap(err, "failed to decode address validation")
	}

	return &validation, nil
}

// FetchRates quotes couriers for a prospective shipment. The second return
// value is the request token that binds a later reservation to this quote.
func (c *Client) FetchRates(ctx context.Context, req *service.RateRequest) ([]service.ShippingRate, string, error) {
	body := map[string]any{
		"sender_address_code":   req.SenderAddressCode,
		"reciever_address_code": req.ReceiverAddressCode, // Provider spells it this way.
		"pickup_date":           req.PickupDate,
		"package_weight":        req.PackageWeightKG,
	}

	data, _, err := c.do(ctx, http.MethodPost, "/shipping/fetch_rates", body)
	if err != nil {
		return nil, "", err
	}

	var decoded struct {
		RequestToken string `json:"request_token"`
		Couriers     []struct {
			CourierID   string  `json:"courier_id"`
			CourierName string  `json:"courier_name"`
			Total       float64 `json:"total"`
			ServiceCode string  `json:"service_code"`
		} `json:"couriers"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, "", errors.Wrap(err, "failed to decode shipping rates")
	}

	rates := make([]service.ShippingRate, 0, len(decoded.Couriers))
	for _, courier := range decoded.Couriers {
		rates = append(rates, service.ShippingRate{
			CourierID:    courier.CourierID,
			CourierName:  courier.CourierName,
			Amount:       courier.Total,
			RequestToken: decoded.RequestToken,
			ServiceCode:  courier.ServiceCode,
		})
	}

	return rates, decoded.RequestToken, nil
}

// ReserveShipment pre-purchases a label for an accepted rate. The raw JSON
// response body is returned verbatim so it can be cached for the order
// finalizer without this client deciding what is relevant in it.
func (c *Client) ReserveShipment(ctx context.Context, requestToken, serviceCode, courierID string) (string, error) {
	body := map[string]any{
		"request_token": requestToken,
		"service_code":  serviceCode,
		"courier_id":    courierID,
	}

	_, raw, err := c.do(ctx, http.MethodPost, "/shipping/labels", body)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func (c *Client) do(ctx context.Context, method, path string, body map[string]any) (json.RawMessage, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode shipbubble request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build shipbubble request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, domainerrors.ErrProviderUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read shipbubble response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to decode shipbubble response (http %d)", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest || env.Status != "success" {
		return nil, nil, domainerrors.ErrProviderUnavailable.WrapMessage(
			fmt.Sprintf("shipbubble %s rejected: http %d: %s", path, resp.StatusCode, env.Message))
	}

	return env.Data, raw, nil
}
