// Package secspy is a client for the SecuritySpy video-surveillance
// server's HTTP webserver API. It lists cameras and server information,
// arms and disarms recording schedules, drives PTZ, fetches snapshots
// and recordings, and consumes the live motion/online/offline event
// stream. The client keeps no state beyond the connection settings:
// records are fetched fresh on every call, and the caller drives the
// event loop.
package secspy

import (
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/briis/secspy/internal/auth"
)

// defaultMinClassifyScore is the confidence floor SecuritySpy's own AI
// settings default to.
const defaultMinClassifyScore = 50

// Config carries the connection settings for a SecuritySpy server.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	UseSSL   bool

	// MinClassifyScore is the confidence floor below which motion
	// classification scores are treated as no detection. Defaults to 50.
	MinClassifyScore int
}

func (c Config) baseURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// Client talks to the SecuritySpy HTTP webserver. It is safe for use
// from a single goroutine; the server authenticates every request
// individually, so there is no session to establish or refresh.
type Client struct {
	HTTP *resty.Client

	cfg      Config
	token    string
	minScore int
}

// New builds a client for the given server. No request is issued until
// the first method call.
func New(cfg Config) *Client {
	if cfg.MinClassifyScore <= 0 {
		cfg.MinClassifyScore = defaultMinClassifyScore
	}

	r := resty.New()
	r.SetBaseURL(cfg.baseURL())
	r.SetHeader("Accept", "text/xml")
	if cfg.UseSSL {
		// SecuritySpy installs ship with self-signed certificates.
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{
		HTTP:     r,
		cfg:      cfg,
		token:    auth.Token(cfg.Username, cfg.Password),
		minScore: cfg.MinClassifyScore,
	}
}

// get issues an authenticated GET and maps failures onto the package's
// error kinds: transport failures become *ConnectionError, 401/403
// becomes *CredentialsError, and any other non-2xx status becomes
// *RequestError.
func (c *Client) get(ctx context.Context, path string, params map[string]string) (*resty.Response, error) {
	req := c.HTTP.R().
		SetContext(ctx).
		SetQueryParam("auth", c.token)
	for k, v := range params {
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, &ConnectionError{Op: "GET", URL: c.cfg.baseURL() + path, Err: err}
	}
	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, &CredentialsError{StatusCode: resp.StatusCode()}
	case resp.IsError():
		return nil, &RequestError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.String(),
		}
	}
	return resp, nil
}

// decodeXML unmarshals a response body, wrapping failures as *ParseError.
func decodeXML(endpoint string, data []byte, v any) error {
	if err := xml.Unmarshal(data, v); err != nil {
		return &ParseError{Endpoint: endpoint, Err: err}
	}
	return nil
}
