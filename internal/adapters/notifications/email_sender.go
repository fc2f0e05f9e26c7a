package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
	"github.com/KAMASDM/franchise-sub002/pkg/config"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// ResendEmailSender implements the EmailProvider interface against the
// Resend HTTP API.
type ResendEmailSender struct {
	apiKey      string
	fromAddress string
	baseURL     string
	httpClient  *http.Client
}

// NewResendEmailSender creates a new email sender
func NewResendEmailSender(cfg *config.EmailConfig) (*ResendEmailSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("EMAIL_API_KEY must be set")
	}

	return &ResendEmailSender{
		apiKey:      cfg.APIKey,
		fromAddress: cfg.FromAddress,
		baseURL:     cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send delivers one transactional email and returns the gateway message ID.
func (s *ResendEmailSender) Send(ctx context.Context, msg providers.EmailMessage) (string, error) {
	if len(msg.To) == 0 {
		return "", apperrors.NewValidationError("email has no recipients")
	}

	payload := resendRequest{
		From:    s.fromAddress,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewExternalError("failed to reach email gateway", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewExternalError(
			fmt.Sprintf("email gateway error (status %d): %s", resp.StatusCode, string(body)), nil)
	}

	var parsed resendResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("no message ID in response")
	}

	return parsed.ID, nil
}
