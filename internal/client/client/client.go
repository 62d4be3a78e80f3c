package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
	"github.com/dmitrijs2005/planandgo/internal/client/session"
	"github.com/dmitrijs2005/planandgo/internal/common"
	"github.com/dmitrijs2005/planandgo/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const defaultTimeout = 30 * time.Second

// Client is safe for concurrent use. Its only shared mutable state is the
// session store it was constructed with.
type Client struct {
	baseURL           string
	refreshPath       string
	httpClient        *http.Client
	store             session.Store
	logger            logging.Logger
	onUnauthenticated func(ctx context.Context)

	refreshGroup singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = &http.Client{Timeout: d} }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithOnUnauthenticated registers fn to be called when the session is found
// to be irrecoverably invalid (no refresh token, or refresh rejected).
func WithOnUnauthenticated(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthenticated = fn }
}

func WithRefreshPath(p string) Option {
	return func(c *Client) { c.refreshPath = p }
}

func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		refreshPath: PathTokenRefresh,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		store:       store,
		logger:      logging.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the body into v. An empty body is only accepted when v
// is nil.
func (r *Response) Decode(v any) error {
	if v == nil {
		return nil
	}
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return fmt.Errorf("%w: empty body", ErrDecode)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// pendingRequest is the snapshot of an outbound call. It is re-sent verbatim
// (apart from the Authorization header) after a token refresh.
type pendingRequest struct {
	method string
	path   string
	header http.Header
	body   []byte
}

func (p *pendingRequest) setToken(token string) {
	if token == "" {
		p.header.Del(common.AuthorizationHeaderName)
		return
	}
	p.header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
}

func (c *Client) snapshot(method, path string, body any, headers http.Header) (*pendingRequest, error) {
	pr := &pendingRequest{
		method: method,
		path:   "/" + strings.TrimLeft(path, "/"),
		header: http.Header{},
	}

	pr.header.Set("Accept", common.ContentTypeJSON)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		pr.body = b
		pr.header.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	}

	for k, vs := range headers {
		pr.header.Del(k)
		for _, v := range vs {
			pr.header.Add(k, v)
		}
	}
	// Always derived from the store.
	pr.header.Del(common.AuthorizationHeaderName)

	if pr.header.Get(common.RequestIDHeaderName) == "" {
		pr.header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return pr, nil
}

// Request sends method+path with an optional JSON body and returns the 2xx
// response. See the package documentation for the 401 recovery cycle and the
// error taxonomy.
func (c *Client) Request(ctx context.Context, method, path string, body any, headers http.Header) (*Response, error) {
	pr, err := c.snapshot(method, path, body, headers)
	if err != nil {
		return nil, err
	}

	token, err := c.store.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}
	pr.setToken(token)

	status, resp, err := c.send(ctx, pr, 1)
	if err != nil {
		return nil, err
	}
	if status != http.StatusUnauthorized {
		return c.result(status, resp)
	}

	return c.refreshAndRetry(ctx, pr)
}

func (c *Client) refreshAndRetry(ctx context.Context, pr *pendingRequest) (*Response, error) {
	rid := pr.header.Get(common.RequestIDHeaderName)

	refresh, err := c.store.RefreshToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read refresh token: %w", err)
	}
	if refresh == "" {
		c.logger.Info(ctx, "unauthorized and no refresh token", "request_id", rid)
		c.notifyUnauthenticated(ctx)
		return nil, fmt.Errorf("%w: no refresh token", ErrUnauthenticated)
	}

	access, err := c.refresh(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh failed: %w", ErrUnauthenticated, err)
	}

	pr.setToken(access)

	status, resp, err := c.send(ctx, pr, 2)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.logger.Warn(ctx, "retried request rejected", "request_id", rid, "path", pr.path)
		return nil, fmt.Errorf("%w: retried request rejected", ErrUnauthenticated)
	}
	return c.result(status, resp)
}

// refresh redeems the refresh token. Concurrent callers holding the same
// token share one backend call. On failure the token pair is cleared and the
// unauthenticated hook fires, once per shared call.
func (c *Client) refresh(ctx context.Context, refreshToken string) (string, error) {
	v, err, _ := c.refreshGroup.Do(refreshToken, func() (any, error) {
		// Detached so one caller's cancellation does not fail the others.
		rctx := context.WithoutCancel(ctx)

		access, err := c.redeem(rctx, refreshToken)
		if err != nil {
			c.logger.Warn(rctx, "token refresh failed, clearing session", "error", err)
			if cerr := c.store.ClearTokens(rctx); cerr != nil {
				c.logger.Error(rctx, "failed to clear tokens", "error", cerr)
			}
			c.notifyUnauthenticated(rctx)
			return "", err
		}

		c.logger.Info(rctx, "access token refreshed")
		return access, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) redeem(ctx context.Context, refreshToken string) (string, error) {
	pr, err := c.snapshot(http.MethodPost, c.refreshPath, models.RefreshRequest{Refresh: refreshToken}, nil)
	if err != nil {
		return "", err
	}

	status, resp, err := c.send(ctx, pr, 1)
	if err != nil {
		return "", err
	}
	if _, err := c.result(status, resp); err != nil {
		return "", err
	}

	var out models.RefreshResponse
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("%w: no access token in refresh response", ErrDecode)
	}

	if out.Refresh != "" {
		err = c.store.SetTokens(ctx, out.Access, out.Refresh)
	} else {
		err = c.store.SetAccessToken(ctx, out.Access)
	}
	if err != nil {
		return "", fmt.Errorf("store refreshed token: %w", err)
	}

	return out.Access, nil
}

func (c *Client) notifyUnauthenticated(ctx context.Context) {
	if c.onUnauthenticated != nil {
		c.onUnauthenticated(ctx)
	}
}

func (c *Client) send(ctx context.Context, pr *pendingRequest, attempt int) (int, *Response, error) {
	var body io.Reader
	if pr.body != nil {
		body = bytes.NewReader(pr.body)
	}

	req, err := http.NewRequestWithContext(ctx, pr.method, c.baseURL+pr.path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = pr.header.Clone()

	c.logger.Debug(ctx, "sending request",
		"method", pr.method,
		"path", pr.path,
		"attempt", attempt,
		"request_id", pr.header.Get(common.RequestIDHeaderName),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %w", ErrNetwork, pr.method, pr.path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading %s %s response: %w", ErrNetwork, pr.method, pr.path, err)
	}

	return resp.StatusCode, &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

func (c *Client) result(status int, resp *Response) (*Response, error) {
	if status >= 200 && status < 300 {
		return resp, nil
	}
	return nil, &ServerError{StatusCode: status, Body: resp.Body}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.Request(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}
