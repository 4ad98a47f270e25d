package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rocktea/config"
	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	mockUC "rocktea/internal/mocks/usecase"
	"rocktea/internal/infra/paystack"
	"rocktea/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "sk_test_secret"

func newWebhookHandlerForTest(t *testing.T) (*WebhookHandler, *mockUC.MockPaymentUsecase) {
	uc := mockUC.NewMockPaymentUsecase(t)
	cfg := &config.Config{Paystack: &config.PaystackConfig{SecretKey: webhookSecret}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWebhookHandler(uc, cfg, logger), uc
}

func webhookRequest(body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(paystack.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestWebhookHandler_ValidSignatureRoutesEvent(t *testing.T) {
	h, uc := newWebhookHandlerForTest(t)

	userID := "8a6f0a2e-7f3c-4a6f-9f6b-1a2b3c4d5e6f"
	body := `{"event":"charge.success","data":{"reference":"ref-1","amount":500000,"customer":{"email":"buyer@example.com"},"metadata":{"purpose":"order","user_id":"` + userID + `"}}}`

	uc.EXPECT().
		ProcessWebhookEvent(mock.Anything, mock.AnythingOfType("*usecase.WebhookEvent")).
		Run(func(_ context.Context, event *usecase.WebhookEvent) {
			assert.Equal(t, "charge.success", event.Event)
			assert.Equal(t, "ref-1", event.Reference)
			assert.Equal(t, int64(500000), event.AmountMinor)
			assert.Equal(t, "buyer@example.com", event.Email)
			assert.Equal(t, entity.PurposeOrder, event.Purpose)
			assert.Equal(t, userID, event.UserID)
			assert.JSONEq(t, body, string(event.Raw))
		}).
		Return(nil)

	c, rec := webhookRequest(body, paystack.ComputeSignature(webhookSecret, []byte(body)))
	require.NoError(t, h.HandlePaystack(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_TopLevelEmailCarriesActivationCallback(t *testing.T) {
	h, uc := newWebhookHandlerForTest(t)

	// Store activation callbacks carry the payer email at data.email, with no
	// customer object at all.
	body := `{"event":"charge.success","data":{"reference":"ref-act","amount":800000,"email":"owner@example.com","metadata":{"purpose":"dropshipping_payment"}}}`

	uc.EXPECT().
		ProcessWebhookEvent(mock.Anything, mock.AnythingOfType("*usecase.WebhookEvent")).
		Run(func(_ context.Context, event *usecase.WebhookEvent) {
			assert.Equal(t, "owner@example.com", event.Email)
			assert.Equal(t, entity.PurposeStoreActivation, event.Purpose)
			assert.Empty(t, event.UserID)
		}).
		Return(nil)

	c, rec := webhookRequest(body, paystack.ComputeSignature(webhookSecret, []byte(body)))
	require.NoError(t, h.HandlePaystack(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_CustomerEmailFallback(t *testing.T) {
	h, uc := newWebhookHandlerForTest(t)

	body := `{"event":"charge.success","data":{"reference":"ref-2","amount":100000,"customer":{"email":"buyer@example.com"},"metadata":{"purpose":"order"}}}`

	uc.EXPECT().
		ProcessWebhookEvent(mock.Anything, mock.AnythingOfType("*usecase.WebhookEvent")).
		Run(func(_ context.Context, event *usecase.WebhookEvent) {
			assert.Equal(t, "buyer@example.com", event.Email)
		}).
		Return(nil)

	c, rec := webhookRequest(body, paystack.ComputeSignature(webhookSecret, []byte(body)))
	require.NoError(t, h.HandlePaystack(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_InvalidSignatureRejectedBeforeAnyRead(t *testing.T) {
	h, _ := newWebhookHandlerForTest(t)

	body := `{"event":"charge.success","data":{"reference":"ref-1"}}`
	c, _ := webhookRequest(body, paystack.ComputeSignature("wrong_secret", []byte(body)))

	// The usecase mock has no expectations: any call would fail the test.
	err := h.HandlePaystack(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSignatureInvalid)
}

func TestWebhookHandler_MissingSignatureRejected(t *testing.T) {
	h, _ := newWebhookHandlerForTest(t)

	body := `{"event":"charge.success"}`
	c, _ := webhookRequest(body, "")

	err := h.HandlePaystack(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSignatureInvalid)
}

func TestWebhookHandler_TamperedBodyRejected(t *testing.T) {
	h, _ := newWebhookHandlerForTest(t)

	signed := `{"event":"charge.success","data":{"reference":"ref-1","amount":500000}}`
	tampered := `{"event":"charge.success","data":{"reference":"ref-1","amount":999999}}`
	c, _ := webhookRequest(tampered, paystack.ComputeSignature(webhookSecret, []byte(signed)))

	err := h.HandlePaystack(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSignatureInvalid)
}

func TestWebhookHandler_MalformedPayloadRejected(t *testing.T) {
	h, _ := newWebhookHandlerForTest(t)

	body := `{"event":` // signed but not JSON
	c, _ := webhookRequest(body, paystack.ComputeSignature(webhookSecret, []byte(body)))

	err := h.HandlePaystack(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWebhookHandler_UnknownReferencePropagates(t *testing.T) {
	h, uc := newWebhookHandlerForTest(t)

	body := `{"event":"charge.success","data":{"reference":"missing"}}`
	uc.EXPECT().
		ProcessWebhookEvent(mock.Anything, mock.AnythingOfType("*usecase.WebhookEvent")).
		Return(domainerrors.ErrReferenceUnknown)

	c, _ := webhookRequest(body, paystack.ComputeSignature(webhookSecret, []byte(body)))
	err := h.HandlePaystack(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReferenceUnknown)
}

func TestWebhookHandler_DuplicateDeliveryAnswers200(t *testing.T) {
	h, uc := newWebhookHandlerForTest(t)

	body := `{"event":"charge.success","data":{"reference":"ref-dup"}}`
	uc.EXPECT().
		ProcessWebhookEvent(mock.Anything, mock.AnythingOfType("*usecase.WebhookEvent")).
		Return(nil)

	c, rec := webhookRequest(body, paystack.ComputeSignature(webhookSecret, []byte(body)))
	require.NoError(t, h.HandlePaystack(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
