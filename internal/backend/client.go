// Package backend is the HTTP client for the remote registration and payment
// API. The API is the source of truth for everything this service shows;
// nothing is cached and nothing is retried; a failed call is surfaced and the
// caller decides.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/campreg/campreg/internal/domain"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Zones(ctx context.Context) ([]domain.Zone, error) {
	body, err := c.do(ctx, http.MethodGet, "/zones", "", nil)
	if err != nil {
		return nil, err
	}

	// The list comes back either bare or wrapped in a data envelope.
	var zones []domain.Zone
	if err := json.Unmarshal(body, &zones); err == nil {
		return zones, nil
	}
	var wrapped struct {
		Data []domain.Zone `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: decode zones: %v", domain.ErrBackend, err)
	}
	return wrapped.Data, nil
}

// initEnvelope tolerates every observed shape of the initialization response:
// flat or nested under data, camelCase or snake_case authorization URL, status
// as a string or a boolean.
type initEnvelope struct {
	Status                json.RawMessage `json:"status"`
	Reference             string          `json:"reference"`
	AuthorizationURL      string          `json:"authorizationUrl"`
	AuthorizationURLSnake string          `json:"authorization_url"`
	Data                  *struct {
		Reference             string `json:"reference"`
		AuthorizationURL      string `json:"authorizationUrl"`
		AuthorizationURLSnake string `json:"authorization_url"`
	} `json:"data"`
}

func (e initEnvelope) reference() string {
	if e.Reference != "" {
		return e.Reference
	}
	if e.Data != nil {
		return e.Data.Reference
	}
	return ""
}

func (e initEnvelope) authorizationURL() string {
	if e.AuthorizationURL != "" {
		return e.AuthorizationURL
	}
	if e.Data != nil && e.Data.AuthorizationURL != "" {
		return e.Data.AuthorizationURL
	}
	if e.AuthorizationURLSnake != "" {
		return e.AuthorizationURLSnake
	}
	if e.Data != nil {
		return e.Data.AuthorizationURLSnake
	}
	return ""
}

func truthy(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", `"false"`, "0", `""`:
		return false
	}
	return true
}

func (c *Client) InitializePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error) {
	body, err := c.do(ctx, http.MethodPost, "/payments/initialize", "", req)
	if err != nil {
		return nil, err
	}

	var env initEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode payment initialization: %v", domain.ErrBackend, err)
	}

	ref, authURL := env.reference(), env.authorizationURL()
	if !truthy(env.Status) || ref == "" || authURL == "" {
		return nil, fmt.Errorf("%w: payment initialization returned no reference or authorization url", domain.ErrBackend)
	}

	return &domain.PaymentSession{Reference: ref, AuthorizationURL: authURL}, nil
}

func (c *Client) VerifyPayment(ctx context.Context, reference string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/payments/verify/"+url.PathEscape(reference), "", nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decode payment verification: %v", domain.ErrBackend, err)
	}
	return resp.Status, nil
}

// GetPayment checks that a reference is known to the backend. Any non-2xx
// answer means the reference is not usable.
func (c *Client) GetPayment(ctx context.Context, reference string) error {
	_, err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(reference), "", nil)
	return err
}

func (c *Client) CreateRegistration(ctx context.Context, sub domain.RegistrationSubmission) error {
	_, err := c.do(ctx, http.MethodPost, "/registrations", "", sub)
	return err
}

func (c *Client) RegistrationsByPayment(ctx context.Context, reference string) ([]domain.Registration, error) {
	body, err := c.do(ctx, http.MethodGet, "/registrations/payment/"+url.PathEscape(reference), "", nil)
	if err != nil {
		return nil, err
	}

	var regs []domain.Registration
	if err := json.Unmarshal(body, &regs); err != nil {
		return nil, fmt.Errorf("%w: decode registrations: %v", domain.ErrBackend, err)
	}
	return regs, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.Credential, error) {
	payload := map[string]string{"username": username, "password": password}
	body, err := c.do(ctx, http.MethodPost, "/auth/login", "", payload)
	if err != nil {
		return nil, err
	}

	var cred domain.Credential
	if err := json.Unmarshal(body, &cred); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", domain.ErrBackend, err)
	}
	if cred.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrBackend)
	}
	return &cred, nil
}

func (c *Client) Registrations(ctx context.Context, token string, f domain.RegistrationFilter) ([]domain.Registration, error) {
	params := url.Values{}
	if f.ZoneID > 0 {
		params.Set("zoneId", strconv.FormatInt(f.ZoneID, 10))
	}
	if !f.StartDate.IsZero() {
		params.Set("startDate", f.StartDate.Format(time.RFC3339))
	}
	if !f.EndDate.IsZero() {
		params.Set("endDate", f.EndDate.Format(time.RFC3339))
	}

	path := "/admin/registrations"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var regs []domain.Registration
	if err := json.Unmarshal(body, &regs); err != nil {
		return nil, fmt.Errorf("%w: decode admin registrations: %v", domain.ErrBackend, err)
	}
	return regs, nil
}

func (c *Client) Stats(ctx context.Context, token string) (*domain.Stats, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/registrations/stats", token, nil)
	if err != nil {
		return nil, err
	}

	var stats domain.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("%w: decode stats: %v", domain.ErrBackend, err)
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrBackend, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

// apiError surfaces the server-supplied message when there is one.
func apiError(status int, body []byte) error {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &e)

	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	}
	return fmt.Errorf("%w: %s (status %d)", domain.ErrBackend, msg, status)
}
