package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Fixed path every seller system must serve under its configured base URL.
const validatePath = "/api/v1/validate-purchase"

// PurchaseQuery is the outbound validation request body.
type PurchaseQuery struct {
	OrderID       string `json:"orderId"`
	CustomerPhone string `json:"customerPhone"`
	PurchaseDate  string `json:"purchaseDate"`
}

// PurchaseDetails carries the seller's authoritative answer. These values
// override whatever the customer claimed.
type PurchaseDetails struct {
	PurchaseDate         string   `json:"authoritativePurchaseDate"`
	WarrantyPeriodMonths int      `json:"warrantyPeriodMonths"`
	CustomerPhoneNumber  string   `json:"customerPhoneNumber"`
	ProductName          string   `json:"productName"`
	Price                *float64 `json:"price"`
}

type validateResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    *PurchaseDetails `json:"data"`
}

// Error marks a validation failure as seller-side: unreachable endpoint,
// non-success response, or malformed answer. Never retried automatically.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("seller validation failed: %v", e.Err)
	}
	return fmt.Sprintf("seller validation failed (%d): %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client confirms claimed purchases against seller-operated endpoints.
type Client interface {
	ValidatePurchase(ctx context.Context, baseURL, credential string, query PurchaseQuery) (*PurchaseDetails, error)
}

type restyClient struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient builds a validation client with a bounded call timeout and no
// retries: a seller-side failure is treated as caller-correctable.
func NewClient(timeout time.Duration, logger *zap.Logger) Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &restyClient{http: client, logger: logger}
}

// ValidatePurchase POSTs the lookup key to the seller's endpoint using the
// seller's credential header.
func (c *restyClient) ValidatePurchase(ctx context.Context, baseURL, credential string, query PurchaseQuery) (*PurchaseDetails, error) {
	var response validateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Seller-Api-Key", credential).
		SetBody(query).
		SetResult(&response).
		SetError(&response).
		Post(baseURL + validatePath)

	if err != nil {
		c.logger.Warn("seller validation call failed",
			zap.String("base_url", baseURL),
			zap.Error(err),
		)
		return nil, &Error{Err: err}
	}

	if resp.IsError() || response.Data == nil {
		c.logger.Warn("seller validation rejected",
			zap.String("base_url", baseURL),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("message", response.Message),
		)
		return nil, &Error{StatusCode: resp.StatusCode(), Message: response.Message}
	}

	return response.Data, nil
}
