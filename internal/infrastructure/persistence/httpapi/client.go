package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/publicsuffix"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
	"taskdash/internal/infrastructure/config"
)

const maxReplyBytes = 8 << 20

// Client talks JSON to the task store and carries the session cookie
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	sessions repository.SessionStore
	logger   logr.Logger

	mu  sync.Mutex
	jar *cookiejar.Jar
}

// Options configures a Client
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Sessions  repository.SessionStore
	Logger    logr.Logger
	Transport http.RoundTripper
}

// NewClientFromConfig builds a Client from the server section of the config
func NewClientFromConfig(cfg *config.Config, sessions repository.SessionStore, logger logr.Logger) (*Client, error) {
	return NewClient(Options{
		BaseURL:  cfg.Server.BaseURL,
		Timeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		Sessions: sessions,
		Logger:   logger,
	})
}

// NewClient creates a new store client and restores any saved session
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("server base URL is not configured")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid server base URL %q: scheme must be http or https", opts.BaseURL)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	c := &Client{
		baseURL:  base,
		sessions: opts.Sessions,
		logger:   opts.Logger.WithName("store"),
	}
	c.http = &http.Client{
		Timeout:   opts.Timeout,
		Transport: otelhttp.NewTransport(transport),
		Jar:       lockedJar{c},
	}

	if err := c.resetJar(); err != nil {
		return nil, err
	}
	if err := c.restoreSession(); err != nil {
		return nil, err
	}

	return c, nil
}

// BaseURL returns the store location
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) resetJar() error {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return fmt.Errorf("failed to create cookie jar: %w", err)
	}
	c.mu.Lock()
	c.jar = jar
	c.mu.Unlock()
	return nil
}

// lockedJar is the http.Client's view of the current jar, so a logout can
// swap jars while other requests are in flight
type lockedJar struct {
	c *Client
}

func (j lockedJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.c.mu.Lock()
	defer j.c.mu.Unlock()
	j.c.jar.SetCookies(u, cookies)
}

func (j lockedJar) Cookies(u *url.URL) []*http.Cookie {
	j.c.mu.Lock()
	defer j.c.mu.Unlock()
	return j.c.jar.Cookies(u)
}

func (c *Client) restoreSession() error {
	if c.sessions == nil {
		return nil
	}
	saved, err := c.sessions.Load()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		return nil
	}

	cookies := make([]*http.Cookie, 0, len(saved))
	for _, s := range saved {
		cookies = append(cookies, &http.Cookie{Name: s.Name, Value: s.Value, Path: "/"})
	}

	c.mu.Lock()
	c.jar.SetCookies(c.baseURL, cookies)
	c.mu.Unlock()
	return nil
}

func (c *Client) persistSession() {
	if c.sessions == nil {
		return
	}

	c.mu.Lock()
	cookies := c.jar.Cookies(c.baseURL)
	c.mu.Unlock()

	saved := make([]repository.SessionCookie, 0, len(cookies))
	for _, ck := range cookies {
		saved = append(saved, repository.SessionCookie{Name: ck.Name, Value: ck.Value})
	}
	if err := c.sessions.Save(saved); err != nil {
		c.logger.Error(err, "failed to persist session")
	}
}

// clearSession forgets both the in-memory and the saved cookies
func (c *Client) clearSession() error {
	if err := c.resetJar(); err != nil {
		return err
	}
	if c.sessions == nil {
		return nil
	}
	return c.sessions.Clear()
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	return u.String()
}

// do sends one request and decodes the reply into out. The envelope's
// success flag is checked before out is touched.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.V(1).Info("request failed", "method", method, "path", path, "elapsed", time.Since(start), "error", err.Error())
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.V(1).Info("request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read reply: %v", entity.ErrStoreUnavailable, err)
	}

	c.persistSession()

	var envelope Response
	envelopeErr := json.Unmarshal(data, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if envelopeErr == nil && envelope.Message != "" {
			return fmt.Errorf("%w: status %d: %s", entity.ErrStoreUnavailable, resp.StatusCode, envelope.Message)
		}
		return fmt.Errorf("%w: status %d", entity.ErrStoreUnavailable, resp.StatusCode)
	}

	if envelopeErr != nil {
		return fmt.Errorf("%w: %v", entity.ErrMalformedReply, envelopeErr)
	}
	if !envelope.Success {
		if envelope.Message == "" {
			return entity.ErrStoreRejected
		}
		return fmt.Errorf("%w: %s", entity.ErrStoreRejected, envelope.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrMalformedReply, err)
	}
	return nil
}
