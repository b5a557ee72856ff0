package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/geepay-ngn/wallet/internal/api/service"
	"github.com/geepay-ngn/wallet/internal/domain/account"
	"github.com/geepay-ngn/wallet/internal/domain/ledger"
	"github.com/geepay-ngn/wallet/internal/transfer"
)

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) ResolveRecipient(ctx context.Context, accountNumber, bankCode string) (*transfer.ResolvedIdentity, error) {
	args := m.Called(ctx, accountNumber, bankCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.ResolvedIdentity), args.Error(1)
}

func (m *MockTransferService) InitiateExternalTransfer(ctx context.Context, amount int64, accountNumber, bankCode, resolvedName, description string) (*ledger.Record, error) {
	args := m.Called(ctx, amount, accountNumber, bankCode, resolvedName, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Record), args.Error(1)
}

func (m *MockTransferService) RecordIncoming(ctx context.Context, amount int64, senderName, description string) (*ledger.Record, error) {
	args := m.Called(ctx, amount, senderName, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Record), args.Error(1)
}

var _ service.TransferService = (*MockTransferService)(nil)

func newTransferRouter(mockService *MockTransferService) *gin.Engine {
	handler := NewTransferHandler(testLogger(), mockService)
	router := gin.New()
	router.POST("/transfers", handler.Create)
	router.POST("/transfers/incoming", handler.RecordIncoming)
	router.POST("/banks/resolve", handler.ResolveRecipient)
	return router
}

func TestTransferHandler_ResolveRecipient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		identity := &transfer.ResolvedIdentity{AccountName: "IBE JENIFER", BankName: "Access Bank"}
		mockService.On("ResolveRecipient", mock.Anything, "0690000040", "044").Return(identity, nil).Once()

		w := performRequest(router, http.MethodPost, "/banks/resolve",
			`{"account_number":"0690000040","bank_code":"044"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "IBE JENIFER", data["account_name"])
		assert.Equal(t, "Access Bank", data["bank_name"])
		mockService.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		w := performRequest(router, http.MethodPost, "/banks/resolve", `{"account_number":"0690000040"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ResolveRecipient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnresolvedAccountIsNotFound", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		mockService.On("ResolveRecipient", mock.Anything, "0690000040", "044").
			Return(nil, transfer.ValidationError{Reason: transfer.ReasonNotFound}).Once()

		w := performRequest(router, http.MethodPost, "/banks/resolve",
			`{"account_number":"0690000040","bank_code":"044"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
		assert.Nil(t, resp.Data, "a failed resolution returns no recipient at all")
	})

	t.Run("UnreachableServiceIsBadGateway", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		mockService.On("ResolveRecipient", mock.Anything, "0690000040", "044").
			Return(nil, transfer.ValidationError{Reason: transfer.ReasonUnreachable}).Once()

		w := performRequest(router, http.MethodPost, "/banks/resolve",
			`{"account_number":"0690000040","bank_code":"044"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
	})

	t.Run("MalformedAccountNumberIsUnprocessable", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		mockService.On("ResolveRecipient", mock.Anything, "12345", "044").
			Return(nil, transfer.ValidationError{Reason: transfer.ReasonInvalidAccountNum, Message: "account number must be 10 digits"}).Once()

		w := performRequest(router, http.MethodPost, "/banks/resolve",
			`{"account_number":"12345","bank_code":"044"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	})
}

func TestTransferHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		rec := &ledger.Record{
			ID:               "4",
			Direction:        ledger.DirectionTransferOut,
			Amount:           120000,
			Counterparty:     "IBE JENIFER",
			CounterpartyAcct: "0690000040",
			CounterpartyBank: "Access Bank",
			Status:           ledger.StatusCompleted,
			CreatedAt:        time.Now(),
		}
		mockService.On("InitiateExternalTransfer", mock.Anything, int64(120000),
			"0690000040", "044", "IBE JENIFER", "rent").Return(rec, nil).Once()

		w := performRequest(router, http.MethodPost, "/transfers",
			`{"amount":"1200.00","account_number":"0690000040","bank_code":"044","recipient_name":"IBE JENIFER","description":"rent"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "transfer-out", data["direction"])
		assert.Equal(t, float64(120000), data["amount"])
		assert.Equal(t, "1200.00", data["amount_display"])
		mockService.AssertExpectations(t)
	})

	t.Run("MalformedAmount", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		w := performRequest(router, http.MethodPost, "/transfers",
			`{"amount":"twelve","account_number":"0690000040","bank_code":"044","recipient_name":"IBE JENIFER"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "InitiateExternalTransfer",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SubKoboAmount", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		w := performRequest(router, http.MethodPost, "/transfers",
			`{"amount":"1200.005","account_number":"0690000040","bank_code":"044","recipient_name":"IBE JENIFER"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		mockService.On("InitiateExternalTransfer", mock.Anything, int64(999999999999),
			"0690000040", "044", "IBE JENIFER", "").Return(nil, account.ErrInsufficientFunds).Once()

		w := performRequest(router, http.MethodPost, "/transfers",
			`{"amount":"9999999999.99","account_number":"0690000040","bank_code":"044","recipient_name":"IBE JENIFER"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Error.Code)
	})

	t.Run("BelowMinimum", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		mockService.On("InitiateExternalTransfer", mock.Anything, int64(4999),
			"0690000040", "044", "IBE JENIFER", "").
			Return(nil, transfer.ValidationError{Reason: transfer.ReasonBelowMinimum, Message: "amount is below the transfer minimum"}).Once()

		w := performRequest(router, http.MethodPost, "/transfers",
			`{"amount":"49.99","account_number":"0690000040","bank_code":"044","recipient_name":"IBE JENIFER"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	})

	t.Run("StoreFailureIsInternalError", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		mockService.On("InitiateExternalTransfer", mock.Anything, int64(120000),
			"0690000040", "044", "IBE JENIFER", "").Return(nil, assert.AnError).Once()

		w := performRequest(router, http.MethodPost, "/transfers",
			`{"amount":"1200.00","account_number":"0690000040","bank_code":"044","recipient_name":"IBE JENIFER"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestTransferHandler_RecordIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		rec := &ledger.Record{
			ID:           "5",
			Direction:    ledger.DirectionTransferIn,
			Amount:       80000,
			Counterparty: "SAMSON",
			Status:       ledger.StatusCompleted,
			CreatedAt:    time.Now(),
		}
		mockService.On("RecordIncoming", mock.Anything, int64(80000), "SAMSON", "salary").
			Return(rec, nil).Once()

		w := performRequest(router, http.MethodPost, "/transfers/incoming",
			`{"amount":"800.00","sender_name":"SAMSON","description":"salary"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "transfer-in", data["direction"])
		mockService.AssertExpectations(t)
	})

	t.Run("MissingSender", func(t *testing.T) {
		mockService := new(MockTransferService)
		router := newTransferRouter(mockService)

		w := performRequest(router, http.MethodPost, "/transfers/incoming", `{"amount":"800.00"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "RecordIncoming", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
