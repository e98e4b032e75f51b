package oaicompat

import (
	"io"
	"log/slog"
	"net/http"
)

// Option configures optional Adapter dependencies.
type Option func(*options)

type options struct {
	client     EmbeddingsClient
	httpClient *http.Client
	logger     *slog.Logger
}

// WithClient replaces the default go-openai transport. Tests use it to inject
// a fake; BaseURL and APIKey are then only informational.
func WithClient(client EmbeddingsClient) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
