package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rocktea/config"
	deliverycontext "rocktea/internal/delivery/context"
	"rocktea/internal/domain/service"
	mockUC "rocktea/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(t *testing.T) (*PushHandler, *mockUC.MockTaskUsecase) {
	taskSvc := mockUC.NewMockTaskUsecase(t)
	cfg := &config.Config{} // No PubSub block, so push auth stays off.

	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		TaskSvc: taskSvc,
	})

	return h, taskSvc
}

func pushRequest(t *testing.T, event *service.TaskEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return rawPushRequest(t, base64.StdEncoding.EncodeToString(data), attributes)
}

func rawPushRequest(t *testing.T, data string, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var envelope PubSubMessage
	envelope.Message.Data = data
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = "msg-1"
	envelope.Subscription = "projects/rocktea/subscriptions/tasks"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_DispatchesTaskEvent(t *testing.T) {
	h, taskSvc := newPushHandlerForTest(t)

	taskSvc.EXPECT().
		HandleTask(mock.Anything, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(ctx context.Context, event *service.TaskEvent) {
			assert.Equal(t, "mail.store_welcome", event.Kind)
			assert.Equal(t, "owner@example.com", event.Email)
			// The attribute request_id wins over everything else.
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	c, rec := pushRequest(t,
		&service.TaskEvent{Kind: "mail.store_welcome", Email: "owner@example.com"},
		map[string]string{"request_id": "req-42"},
	)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_EventRequestIDUsedWhenNoAttribute(t *testing.T) {
	h, taskSvc := newPushHandlerForTest(t)

	taskSvc.EXPECT().
		HandleTask(mock.Anything, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(ctx context.Context, _ *service.TaskEvent) {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	c, rec := pushRequest(t,
		&service.TaskEvent{Kind: "dns.teardown", RequestID: "req-from-event"},
		nil,
	)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadBase64Answers400(t *testing.T) {
	h, _ := newPushHandlerForTest(t)

	c, rec := rawPushRequest(t, "%%%not-base64%%%", nil)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_MalformedEventAnswers400(t *testing.T) {
	h, _ := newPushHandlerForTest(t)

	c, rec := rawPushRequest(t, base64.StdEncoding.EncodeToString([]byte(`{"kind":`)), nil)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_TaskFailureAnswers503ForRedelivery(t *testing.T) {
	h, taskSvc := newPushHandlerForTest(t)

	taskSvc.EXPECT().
		HandleTask(mock.Anything, mock.AnythingOfType("*service.TaskEvent")).
		Return(errors.New("smtp unavailable"))

	c, rec := pushRequest(t, &service.TaskEvent{Kind: "mail.order_confirmation"}, nil)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
