package factory

import (
	"context"
	"sync"

	"github.com/CE-Thesis-2023/ptzctl/internal/configs"
	"github.com/CE-Thesis-2023/ptzctl/internal/hikvision"
)

var (
	mu     sync.Mutex
	camera *hikvision.Camera
)

// Init probes the configured camera once and keeps the session for the
// lifetime of the process. Later calls return the same session.
func Init(ctx context.Context, c *configs.CameraConfigs) (*hikvision.Camera, error) {
	mu.Lock()
	defer mu.Unlock()

	if camera != nil {
		return camera, nil
	}

	options := []hikvision.CameraOptioner{
		hikvision.WithPort(c.Port),
		hikvision.WithTimeout(c.Timeout()),
		hikvision.WithRequestLogging(c.DebugHttp),
	}
	if c.HasAuth() {
		options = append(options, hikvision.WithCredentials(c.Username, c.Password))
	}

	cam, err := hikvision.NewCamera(ctx, c.Host, c.MovementSpeed(), options...)
	if err != nil {
		return nil, err
	}
	camera = cam
	return camera, nil
}

func Camera() *hikvision.Camera {
	mu.Lock()
	defer mu.Unlock()

	return camera
}
