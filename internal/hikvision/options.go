package hikvision

import (
	"time"

	"github.com/benbjohnson/clock"
)

type CameraOptioner func(o *cameraOptions)

func WithPort(port string) CameraOptioner {
	return func(o *cameraOptions) {
		o.Port = port
	}
}

func WithCredentials(username, password string) CameraOptioner {
	return func(o *cameraOptions) {
		o.Credentials = &Credentials{
			Username: username,
			Password: password,
		}
	}
}

// WithTransport replaces the fast-shot transport, mostly for tests.
func WithTransport(t Transport) CameraOptioner {
	return func(o *cameraOptions) {
		o.Transport = t
	}
}

func WithClock(c clock.Clock) CameraOptioner {
	return func(o *cameraOptions) {
		o.Clock = c
	}
}

func WithTimeout(d time.Duration) CameraOptioner {
	return func(o *cameraOptions) {
		o.Timeout = d
	}
}

func WithRequestLogging(enabled bool) CameraOptioner {
	return func(o *cameraOptions) {
		o.RequestLogging = enabled
	}
}

type cameraOptions struct {
	Port           string        `json:"port"`
	Credentials    *Credentials  `json:"credentials"`
	Timeout        time.Duration `json:"timeout"`
	RequestLogging bool          `json:"requestLogging"`
	Transport      Transport     `json:"-"`
	Clock          clock.Clock   `json:"-"`
}
