package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/edubaze/paystack-recon-service/internal/domain"
)

const DefaultBaseURL = "https://api.paystack.co"

// Client verifies transaction references against the Paystack API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type verifyEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID        int64  `json:"id"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Metadata  struct {
			Gateway          string `json:"gateway"`
			Doctype          string `json:"doctype"`
			Docname          string `json:"docname"`
			ReferenceDoctype string `json:"reference_doctype"`
			ReferenceName    string `json:"reference_name"`
		} `json:"metadata"`
	} `json:"data"`
}

// Verify issues a single GET /transaction/verify/{reference} call and maps the
// envelope to a domain result. Non-2xx responses become ErrGateway, timeouts
// ErrGatewayTimeout and incomplete envelopes ErrMalformedResponse.
func (c *Client) Verify(ctx context.Context, reference, secretKey string) (*domain.VerificationResult, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference)),
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)

	response, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			return nil, fmt.Errorf("%w: %v", domain.ErrGatewayTimeout, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", domain.ErrGatewayTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrGateway, err)
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrGateway, response.StatusCode, string(responseBodyBytes))
	}

	var envelope verifyEnvelope
	if err := json.Unmarshal(responseBodyBytes, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if envelope.Data.Reference == "" || envelope.Data.Status == "" {
		return nil, fmt.Errorf("%w: envelope missing reference or status", domain.ErrMalformedResponse)
	}

	return &domain.VerificationResult{
		Reference:     envelope.Data.Reference,
		Status:        domain.TransactionStatus(envelope.Data.Status),
		AmountMinor:   envelope.Data.Amount,
		Currency:      envelope.Data.Currency,
		Message:       envelope.Message,
		TransactionID: envelope.Data.ID,
		Metadata: domain.TransactionMetadata{
			Gateway:          envelope.Data.Metadata.Gateway,
			Doctype:          envelope.Data.Metadata.Doctype,
			Docname:          envelope.Data.Metadata.Docname,
			ReferenceDoctype: envelope.Data.Metadata.ReferenceDoctype,
			ReferenceName:    envelope.Data.Metadata.ReferenceName,
		},
		RawPayload: string(responseBodyBytes),
	}, nil
}
