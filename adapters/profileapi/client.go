// Package profileapi is the HTTP client for the profile store API. It
// implements service.ProfileGateway for editing sessions.
package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

// APIError is a non-2xx answer other than 401.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("profile api: HTTP %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("profile api: HTTP %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     logger.Logger
}

var _ service.ProfileGateway = (*Client)(nil)

// NewClient builds a client for the API at baseURL. timeout bounds each
// request; zero leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration, tokens TokenStore, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     log,
	}
}

type profileBody struct {
	Profile             *profile.Profile `json:"profile"`
	PfpURL              string           `json:"pfp_url"`
	OnboardingCompleted bool             `json:"onboarding_completed"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// Login exchanges credentials for a token and stores it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &out); err != nil {
		return err
	}
	if out.AccessToken == "" {
		return fmt.Errorf("profile api: login returned no token")
	}
	return c.tokens.Save(out.AccessToken)
}

func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) FetchProfile(ctx context.Context) (*service.FetchResult, error) {
	req, err := c.authedRequest(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return nil, err
	}

	var out profileBody
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &service.FetchResult{Profile: out.Profile, ImageURL: out.PfpURL}, nil
}

func (c *Client) ReplaceProfile(ctx context.Context, doc profile.Profile) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	req, err := c.authedRequest(ctx, http.MethodPut, "/api/profile", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// UploadAvatar sends the file as the multipart field "file".
func (c *Client) UploadAvatar(ctx context.Context, file service.AvatarFile) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.FileName))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("write multipart part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.authedRequest(ctx, http.MethodPost, "/api/profile/picture", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, nil)
}

func (c *Client) OnboardingStatus(ctx context.Context) (bool, error) {
	req, err := c.authedRequest(ctx, http.MethodGet, "/api/onboarding-status", nil)
	if err != nil {
		return false, err
	}
	var out struct {
		OnboardingCompleted bool `json:"onboarding_completed"`
	}
	if err := c.do(req, &out); err != nil {
		return false, err
	}
	return out.OnboardingCompleted, nil
}

func (c *Client) authedRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	token, err := c.tokens.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, service.ErrUnauthenticated
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	l := c.logger.With(zap.String("method", req.Method), zap.String("path", req.URL.Path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("profile api: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("profile api: read response: %w", err)
	}
	l.Debug("Profile API response", zap.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		return service.ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if json.Unmarshal(payload, &eb) == nil {
			if eb.Message != "" {
				apiErr.Message = eb.Message
			} else if eb.Error != "" {
				apiErr.Message = eb.Error
			}
			apiErr.Details = eb.Details
		}
		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("profile api: decode response: %w", err)
	}
	return nil
}
