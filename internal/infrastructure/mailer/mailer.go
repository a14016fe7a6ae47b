package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/edubaze/paystack-recon-service/internal/domain"
)

// HTTPMailer delivers enrollment mail through the shop's mail relay service.
type HTTPMailer struct {
	Address string
}

func NewHTTPMailer(address string) *HTTPMailer {
	return &HTTPMailer{Address: address}
}

func (m *HTTPMailer) Send(ctx context.Context, mail domain.EnrollmentMail) error {
	requestBodyBytes, err := json.Marshal(sendMailRequest{
		Recipients: []string{mail.Recipient},
		Subject:    mail.Subject,
		Message:    mail.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/messages", m.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	var errResponse errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResponse); err != nil {
		return fmt.Errorf("mail relay returned status %d", response.StatusCode)
	}
	return errors.New(errResponse.Error)
}
