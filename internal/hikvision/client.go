package hikvision

import (
	"context"
	"time"

	custhttp "github.com/CE-Thesis-2023/ptzctl/internal/http"

	fastshot "github.com/opus-domini/fast-shot"
)

// Transport carries requests to the device. Paths are relative to the
// camera endpoint.
type Transport interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, body []byte) (*Response, error)
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) Is2xxSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type restTransport struct {
	restClient fastshot.ClientHttpMethods
}

var _ Transport = (*restTransport)(nil)

type TransportOptions struct {
	Timeout        time.Duration
	RequestLogging bool
}

// NewRestTransport returns a Transport reusing one fast-shot client for all
// requests against baseUrl.
func NewRestTransport(baseUrl string, credentials *Credentials, opts TransportOptions) Transport {
	clientOptions := []custhttp.ClientOptioner{
		custhttp.WithContentType("application/xml"),
		custhttp.WithTimeout(opts.Timeout),
		custhttp.WithRequestLogging(opts.RequestLogging),
	}
	if credentials.isSet() {
		clientOptions = append(clientOptions,
			custhttp.WithBasicAuth(credentials.Username, credentials.Password))
	}

	return &restTransport{
		restClient: custhttp.NewRestClient(baseUrl, clientOptions...),
	}
}

func (t *restTransport) Get(ctx context.Context, path string) ([]byte, error) {
	resp, err := t.restClient.GET(path).
		Context().Set(ctx).
		Send()
	if err != nil {
		return nil, err
	}

	return custhttp.ReadBody(&resp)
}

func (t *restTransport) Put(ctx context.Context, path string, body []byte) (*Response, error) {
	resp, err := t.restClient.PUT(path).
		Context().Set(ctx).
		Body().AsString(string(body)).
		Send()
	if err != nil {
		return nil, err
	}

	bodyBytes, err := custhttp.ReadBody(&resp)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       bodyBytes,
	}, nil
}
