package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"rocktea/config"
	"rocktea/internal/delivery/http/response"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/entity"
	"rocktea/internal/infra/paystack"
	"rocktea/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WebhookHandler receives payment provider callbacks.
type WebhookHandler struct {
	uc     usecase.PaymentUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.PaymentUsecase, cfg *config.Config, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, cfg: cfg, logger: logger}
}

// paystackPayload is the subset of the provider callback the pipeline reads.
// The full body is kept verbatim for the intent's raw column.
type paystackPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"` // Minor units (kobo).
		Email     string `json:"email"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
		Metadata struct {
			Purpose string `json:"purpose"`
			UserID  string `json:"user_id"`
		} `json:"metadata"`
	} `json:"data"`
}

// payerEmail prefers the top-level data.email; Paystack callbacks that only
// carry the customer object fall back to customer.email.
func (p *paystackPayload) payerEmail() string {
	if p.Data.Email != "" {
		return p.Data.Email
	}

	return p.Data.Customer.Email
}

// HandlePaystack verifies the callback signature against the raw body and
// routes the event into the finalization pipeline. The signature check runs
// before any parsing or state access.
func (h *WebhookHandler) HandlePaystack(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to read request body")
	}

	signature := c.Request().Header.Get(paystack.SignatureHeader)
	if !paystack.VerifySignature(h.cfg.Paystack.SecretKey, body, signature) {
		h.logger.Warn("[Webhook] Rejected callback with invalid signature",
			slog.String("remote_ip", c.RealIP()),
		)

		return domainerrors.ErrSignatureInvalid
	}

	var payload paystackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed webhook payload")
	}

	event := &usecase.WebhookEvent{
		Event:       payload.Event,
		Reference:   payload.Data.Reference,
		AmountMinor: payload.Data.Amount,
		Email:       payload.payerEmail(),
		Purpose:     entity.PaymentPurpose(payload.Data.Metadata.Purpose),
		UserID:      payload.Data.Metadata.UserID,
		Raw:         json.RawMessage(body),
	}

	if err := h.uc.ProcessWebhookEvent(c.Request().Context(), event); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Webhook processed")
}
