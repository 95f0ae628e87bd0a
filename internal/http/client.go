package custhttp

import (
	"io"
	"net/http"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"github.com/motemen/go-loghttp"
	fastshot "github.com/opus-domini/fast-shot"
	"go.uber.org/zap"
)

type Options struct {
	timeout        time.Duration
	username       string
	password       string
	contentType    string
	requestLogging bool
	transport      http.RoundTripper
}

type ClientOptioner func(o *Options)

// WithTimeout sets the per request timeout. Zero leaves the transport default.
func WithTimeout(dur time.Duration) ClientOptioner {
	return func(o *Options) {
		o.timeout = dur
	}
}

func WithBasicAuth(username, password string) ClientOptioner {
	return func(o *Options) {
		o.username = username
		o.password = password
	}
}

func WithContentType(contentType string) ClientOptioner {
	return func(o *Options) {
		o.contentType = contentType
	}
}

// WithRequestLogging logs every request and response at debug level.
func WithRequestLogging(enabled bool) ClientOptioner {
	return func(o *Options) {
		o.requestLogging = enabled
	}
}

func WithRoundTripper(rt http.RoundTripper) ClientOptioner {
	return func(o *Options) {
		o.transport = rt
	}
}

func (o *Options) hasBasicAuth() bool {
	return o.username != ""
}

func NewRestClient(baseUrl string, opts ...ClientOptioner) fastshot.ClientHttpMethods {
	options := &Options{}
	for _, o := range opts {
		o(options)
	}

	builder := fastshot.NewClient(baseUrl)

	if options.hasBasicAuth() {
		builder.Auth().BasicAuth(options.username, options.password)
	}
	if options.contentType != "" {
		builder.Header().AddContentType(options.contentType)
	}

	clientConfigs := builder.Config()
	clientConfigs.SetFollowRedirects(true)
	if options.timeout > 0 {
		clientConfigs.SetTimeout(options.timeout)
	}

	transport := options.transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if options.requestLogging {
		transport = newLoggingTransport(transport)
	}
	clientConfigs.SetCustomTransport(transport)

	return builder.Build()
}

func newLoggingTransport(rt http.RoundTripper) http.RoundTripper {
	return &loghttp.Transport{
		Transport: rt,
		LogRequest: func(req *http.Request) {
			logger.SDebug("HTTP request",
				zap.String("method", req.Method),
				zap.String("url", req.URL.Redacted()))
		},
		LogResponse: func(resp *http.Response) {
			logger.SDebug("HTTP response",
				zap.String("method", resp.Request.Method),
				zap.String("url", resp.Request.URL.Redacted()),
				zap.Int("status", resp.StatusCode))
		},
	}
}

// ReadBody drains and closes the response body.
func ReadBody(resp *fastshot.Response) ([]byte, error) {
	body := resp.RawBody()
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		logger.SDebug("failed to read HTTP response body",
			zap.Error(err))
		return nil, err
	}
	return bodyBytes, nil
}
