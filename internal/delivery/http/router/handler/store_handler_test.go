package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rocktea/internal/delivery/http/validator"
	"rocktea/internal/domain/entity"
	mockUC "rocktea/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreHandlerForTest(t *testing.T) (*StoreHandler, *mockUC.MockStoreUsecase) {
	uc := mockUC.NewMockStoreUsecase(t)

	return NewStoreHandler(uc), uc
}

func storeRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStoreHandler_CreateStore(t *testing.T) {
	h, uc := newStoreHandlerForTest(t)

	ownerID := uuid.New()
	uc.EXPECT().
		CreateStore(mock.Anything, ownerID, "Corner Shop").
		Return(&entity.Store{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			Name:     "Corner Shop",
			Slug:     "corner-shop",
			DNSState: entity.DNSStatePending,
		}, nil)

	c, rec := storeRequest(http.MethodPost, "/stores", `{"name":"Corner Shop"}`)
	c.Set("userID", ownerID)

	require.NoError(t, h.CreateStore(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "corner-shop")
}

func TestStoreHandler_CreateStore_NameTooShort(t *testing.T) {
	h, _ := newStoreHandlerForTest(t)

	c, rec := storeRequest(http.MethodPost, "/stores", `{"name":"x"}`)
	c.Set("userID", uuid.New())

	// Validation fails in the handler, so the usecase is never reached.
	require.NoError(t, h.CreateStore(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreHandler_ProvisionDomain(t *testing.T) {
	h, uc := newStoreHandlerForTest(t)

	storeID := uuid.New()
	uc.EXPECT().ProvisionDomain(mock.Anything, storeID).Return(nil)

	c, rec := storeRequest(http.MethodPost, "/stores/"+storeID.String()+"/provision", "")
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	require.NoError(t, h.ProvisionDomain(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreHandler_ProvisionDomain_BadID(t *testing.T) {
	h, _ := newStoreHandlerForTest(t)

	c, rec := storeRequest(http.MethodPost, "/stores/not-a-uuid/provision", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.ProvisionDomain(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreHandler_DeleteStore(t *testing.T) {
	h, uc := newStoreHandlerForTest(t)

	ownerID := uuid.New()
	uc.EXPECT().DeleteStore(mock.Anything, ownerID).Return(nil)

	c, rec := storeRequest(http.MethodDelete, "/stores", "")
	c.Set("userID", ownerID)

	require.NoError(t, h.DeleteStore(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
