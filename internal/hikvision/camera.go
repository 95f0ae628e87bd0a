package hikvision

import (
	"bytes"
	"context"
	"net/url"
	"sync"
	"time"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Position is the cumulative commanded offset of every axis.
type Position struct {
	Pan  int `json:"pan"`
	Tilt int `json:"tilt"`
	Zoom int `json:"zoom"`
}

// Camera is a PTZ control session against one Hikvision device. All methods
// are safe for concurrent use; calls are serialized for their whole duration,
// including the request to the device.
type Camera struct {
	mu sync.Mutex

	address   *url.URL
	transport Transport
	clock     clock.Clock

	movementSpeed time.Duration

	pan  AxisState
	tilt AxisState
	zoom AxisState
}

// NewCamera probes the PTZ capabilities of the device at host and returns a
// session moving each axis for movementSpeed per command. The probe fails
// with *AuthorizeError when the device rejects the credentials.
func NewCamera(ctx context.Context, host string, movementSpeed time.Duration, options ...CameraOptioner) (*Camera, error) {
	opts := cameraOptions{}
	for _, o := range options {
		o(&opts)
	}

	base := endpoint(host, opts.Port, opts.Credentials)

	transport := opts.Transport
	if transport == nil {
		transport = NewRestTransport(base.String(), opts.Credentials, TransportOptions{
			Timeout:        opts.Timeout,
			RequestLogging: opts.RequestLogging,
		})
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	address := base.JoinPath(momentaryPath)

	body, err := transport.Get(ctx, capabilitiesPath)
	if err != nil {
		logger.SError("PTZ capabilities probe failed",
			zap.String("address", address.Redacted()),
			zap.Error(err))
		return nil, err
	}
	if bytes.Contains(body, []byte(unauthorizedMarker)) {
		logger.SError("PTZ capabilities probe unauthorized",
			zap.String("address", address.Redacted()))
		return nil, &AuthorizeError{}
	}

	logger.SInfo("PTZ camera session created",
		zap.String("address", address.Redacted()),
		zap.Duration("movementSpeed", movementSpeed))

	return &Camera{
		address:       address,
		transport:     transport,
		clock:         clk,
		movementSpeed: movementSpeed,
	}, nil
}

// Rotate pans the camera by unit, which must lie in -100..100.
func (c *Camera) Rotate(ctx context.Context, unit int) (*Response, error) {
	return c.event(ctx, AxisRotation, unit)
}

// Tilt tilts the camera by unit, which must lie in -100..100.
func (c *Camera) Tilt(ctx context.Context, unit int) (*Response, error) {
	return c.event(ctx, AxisTilt, unit)
}

// Zoom zooms the lens by unit, which must lie in -100..100.
func (c *Camera) Zoom(ctx context.Context, unit int) (*Response, error) {
	return c.event(ctx, AxisZoom, unit)
}

// Move dispatches unit to the named axis.
func (c *Camera) Move(ctx context.Context, axis Axis, unit int) (*Response, error) {
	return c.event(ctx, axis, unit)
}

// SetMovementSpeed changes the momentary duration and the spacing enforced
// between events. Timestamps already recorded are kept.
func (c *Camera) SetMovementSpeed(speed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movementSpeed = speed
}

func (c *Camera) MovementSpeed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.movementSpeed
}

func (c *Camera) Position() Position {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.position()
}

// Address returns the Momentary command endpoint with the password masked.
func (c *Camera) Address() string {
	return c.address.Redacted()
}

func (c *Camera) position() Position {
	return Position{
		Pan:  c.pan.Data,
		Tilt: c.tilt.Data,
		Zoom: c.zoom.Data,
	}
}

func (c *Camera) axisState(axis Axis) *AxisState {
	switch axis {
	case AxisRotation:
		return &c.pan
	case AxisTilt:
		return &c.tilt
	case AxisZoom:
		return &c.zoom
	}
	return nil
}

func (c *Camera) event(ctx context.Context, axis Axis, unit int) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ValidateUnit(axis, unit); err != nil {
		logger.SDebug("PTZ event rejected",
			zap.Stringer("axis", axis),
			zap.Int("unit", unit),
			zap.Error(err))
		return nil, err
	}

	state := c.axisState(axis)
	if state == nil {
		return nil, custerror.FormatInvalidArgument("unknown axis %d", int(axis))
	}

	now := c.clock.Now()
	if err := state.admit(axis, now, c.movementSpeed); err != nil {
		logger.SDebug("PTZ event rejected",
			zap.Stringer("axis", axis),
			zap.Int("unit", unit),
			zap.Error(err))
		return nil, err
	}

	previous := *state
	state.trigger(now, unit)

	resp, err := c.send(ctx)
	if err != nil {
		*state = previous
		logger.SError("failed to send PTZ Momentary request",
			zap.Stringer("axis", axis),
			zap.String("address", c.address.Redacted()),
			zap.Error(err))
		return nil, err
	}

	logger.SDebug("PTZ Momentary request sent",
		zap.Stringer("axis", axis),
		zap.Int("unit", unit),
		zap.Reflect("position", c.position()),
		zap.Int("status", resp.StatusCode))
	return resp, nil
}

func (c *Camera) send(ctx context.Context) (*Response, error) {
	body, err := newPTZData(c.position(), c.movementSpeed).Marshal()
	if err != nil {
		return nil, err
	}
	return c.transport.Put(ctx, momentaryPath, body)
}
