package validation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidatePurchaseSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody PurchaseQuery
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Seller-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"message": "ok",
			"data": {
				"authoritativePurchaseDate": "2024-07-20",
				"warrantyPeriodMonths": 12,
				"customerPhoneNumber": "+911111111111",
				"productName": "Mixer Grinder",
				"price": 499
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(2*time.Second, zap.NewNop())
	details, err := client.ValidatePurchase(context.Background(), server.URL, "secret-key", PurchaseQuery{
		OrderID:       "ORD-1",
		CustomerPhone: "+911234567890",
		PurchaseDate:  "2024-07-20",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/validate-purchase", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "ORD-1", gotBody.OrderID)
	assert.Equal(t, "+911234567890", gotBody.CustomerPhone)
	assert.Equal(t, "2024-07-20", details.PurchaseDate)
	assert.Equal(t, 12, details.WarrantyPeriodMonths)
	assert.Equal(t, "Mixer Grinder", details.ProductName)
	require.NotNil(t, details.Price)
	assert.Equal(t, 499.0, *details.Price)
}

func TestValidatePurchaseRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": "fail", "message": "order not found"}`))
	}))
	defer server.Close()

	client := NewClient(2*time.Second, zap.NewNop())
	_, err := client.ValidatePurchase(context.Background(), server.URL, "secret-key", PurchaseQuery{OrderID: "ORD-404"})

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, http.StatusNotFound, valErr.StatusCode)
	assert.Equal(t, "order not found", valErr.Message)
}

func TestValidatePurchaseMissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "success", "message": "ok"}`))
	}))
	defer server.Close()

	client := NewClient(2*time.Second, zap.NewNop())
	_, err := client.ValidatePurchase(context.Background(), server.URL, "secret-key", PurchaseQuery{OrderID: "ORD-1"})

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, http.StatusOK, valErr.StatusCode)
}

func TestValidatePurchaseUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(time.Second, zap.NewNop())
	_, err := client.ValidatePurchase(context.Background(), server.URL, "secret-key", PurchaseQuery{OrderID: "ORD-1"})

	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Error(t, valErr.Err)
}
