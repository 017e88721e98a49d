package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/2beens/gymready/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	AuthTokenHeader = "X-GYMREADY-TOKEN"
	UserAgent       = "gymready-remote/1.0"
)

var (
	ErrRemoteDisabled  = errors.New("remote scoring disabled")
	ErrNotAcknowledged = errors.New("remote did not acknowledge the write")
)

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote responded with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to a remote scoring service exposing the same three operations as this one.
// Timeouts come from the given http client; there are no retries.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient returns a client for baseURL. An empty baseURL gives a disabled client
// whose calls all fail with ErrRemoteDisabled.
func NewClient(baseURL, authToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authToken:  authToken,
		httpClient: httpClient,
	}
}

func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

func (c *Client) GetSuggestion(ctx context.Context, userID string, currentLoad float64, category string) (_ *SuggestionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.scoring.suggestion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	query := url.Values{}
	query.Set("user_id", userID)
	query.Set("current_load", strconv.FormatFloat(currentLoad, 'f', -1, 64))
	query.Set("category", category)

	resp := &SuggestionResponse{}
	if err := c.do(ctx, http.MethodGet, PathSuggestion+"?"+query.Encode(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SubmitSurvey(ctx context.Context, req SurveyRequest) (_ *SurveyResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.scoring.survey")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", req.UserID))

	resp := &SurveyResponse{}
	if err := c.do(ctx, http.MethodPost, PathSurvey, req, resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Survey == nil {
		return nil, ErrNotAcknowledged
	}
	return resp, nil
}

func (c *Client) LogSession(ctx context.Context, req SessionRequest) (_ *SessionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.scoring.session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", req.UserID))

	resp := &SessionResponse{}
	if err := c.do(ctx, http.MethodPost, PathSession, req, resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Session == nil {
		return nil, ErrNotAcknowledged
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	if !c.Enabled() {
		return ErrRemoteDisabled
	}

	var body io.Reader
	if reqBody != nil {
		reqJson, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(reqJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set(AuthTokenHeader, c.authToken)
	}

	log.Tracef("remote scoring call: [%s] %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBytes)),
		}
	}

	if err := json.Unmarshal(respBytes, respBody); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
