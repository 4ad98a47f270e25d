// Package paystack implements the payment gateway against the Paystack REST API.
package paystack

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
	"rocktea/internal/domain/entity"
	"rocktea/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// Client implements service.PaymentGateway against the Paystack REST API.
type Client struct {
	baseURL     string
	secretKey   string
	callbackURL string
	httpClient  *http.Client
}

// NewClient is the constructor for the Paystack client.
func NewClient(cfg *config.Config) service.PaymentGateway {
	timeout := cfg.Paystack.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:     cfg.Paystack.BaseURL,
		secretKey:   cfg.Paystack.SecretKey,
		callbackURL: cfg.Paystack.CallbackURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// envelope is Paystack's uniform response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// InitializeTransaction opens a checkout session. purpose and userID travel in
// the transaction metadata and come back verbatim in the webhook payload.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amountMinor int64, reference string, purpose entity.PaymentPurpose, userID string) (*service.CheckoutSession, error) {
	body := map[string]any{
		"email":        email,
		"amount":       amountMinor,
		"reference":    reference,
		"callback_url": c.callbackURL,
		"metadata": map[string]any{
			"purpose": string(purpose),
			"user_id": userID,
		},
	}

	data, err := c.post(ctx, "/transaction/initialize", body)
	if err != nil {
		return nil, err
	}

	var session service.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session")
	}

	return &session, nil
}

// CreateTransferRecipient registers a bank account for payouts.
func (c *Client) CreateTransferRecipient(ctx context.Context, name, accountNumber, bankCode string) (*service.TransferRecipient, error) {
	body := map[string]any{
		"type":           "nuban",
		"name":           name,
		"account_number": accountNumber,
		"bank_code":      bankCode,
		"currency":       "NGN",
	}

	data, err := c.post(ctx, "/transferrecipient", body)
	if err != nil {
		return nil, err
	}

	var recipient service.TransferRecipient
	if err := json.Unmarshal(data, &recipient); err != nil {
		return nil, errors.Wrap(err, "failed to decode transfer recipient")
	}

	return &recipient, nil
}

// InitiateTransfer moves amountMinor to a registered recipient. Only a nil
// error means the provider accepted the transfer.
func (c *Client) InitiateTransfer(ctx context.Context, recipientCode string, amountMinor int64, reason string) error {
	body := map[string]any{
		"source":    "balance",
		"amount":    amountMinor,
		"recipient": recipientCode,
		"reason":    reason,
	}

	_, err := c.post(ctx, "/transfer", body)

	return err
}

func (c *Client) post(ctx context.Context, path string, body map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode paystack request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build paystack request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read paystack response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(err, "failed to decode paystack response (http %d)", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest || !env.Status {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage(
			fmt.Sprintf("paystack %s rejected: http %d: %s", path, resp.StatusCode, env.Message))
	}

	return env.Data, nil
}
