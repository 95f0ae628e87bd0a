package factory

import (
	"context"
	"time"

	eventsapi "github.com/CE-Thesis-2023/ptzctl/api/events"
	"github.com/CE-Thesis-2023/ptzctl/biz/service"
	custcon "github.com/CE-Thesis-2023/ptzctl/internal/concurrent"
	"github.com/CE-Thesis-2023/ptzctl/internal/configs"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"
	custmqtt "github.com/CE-Thesis-2023/ptzctl/internal/mqtt"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// RemoteControl owns the MQTT connection and the worker pool serving
// ptzctrl commands. The zero value is a disabled remote control.
type RemoteControl struct {
	pool        *ants.Pool
	connManager *autopaho.ConnectionManager
	cancel      context.CancelFunc
}

// StartRemoteControl connects to the configured broker and subscribes to the
// device's command topic. The connection stays up until Stop; connectTimeout
// only bounds the wait for the first connection.
func StartRemoteControl(c *configs.Configs, camera service.CameraController, connectTimeout time.Duration) (*RemoteControl, error) {
	if !c.MqttStore.Enabled {
		logger.SInfo("MQTT remote control disabled")
		return &RemoteControl{}, nil
	}

	// calls on the camera are serialized, one worker is enough
	pool := custcon.New(1)
	handler := eventsapi.NewStandardEventHandler(pool, service.NewCommandService(camera))
	deviceId := c.DeviceInfo.DeviceId

	ctx, cancel := context.WithCancel(context.Background())
	connManager, err := custmqtt.NewClient(
		ctx,
		custmqtt.WithClientGlobalConfigs(&c.MqttStore),
		custmqtt.WithClientId(deviceId),
		custmqtt.WithConnectTimeout(connectTimeout),
		custmqtt.WithOnReconnection(eventsapi.Register(deviceId)),
		custmqtt.WithClientError(eventsapi.ClientErrorHandler),
		custmqtt.WithOnServerDisconnect(eventsapi.DisconnectHandler),
		custmqtt.WithHandlerRegister(eventsapi.RouterHandler(deviceId, handler)),
	)
	if err != nil {
		cancel()
		pool.Release()
		return nil, err
	}

	return &RemoteControl{
		pool:        pool,
		connManager: connManager,
		cancel:      cancel,
	}, nil
}

func (r *RemoteControl) Enabled() bool {
	return r.connManager != nil
}

// Stop disconnects from the broker and releases the worker pool.
func (r *RemoteControl) Stop(ctx context.Context) {
	if r.connManager != nil {
		if err := r.connManager.Disconnect(ctx); err != nil {
			logger.SError("MQTT disconnect failed", zap.Error(err))
		}
	}
	if r.cancel != nil {
		r.cancel()
	}
	if r.pool != nil {
		r.pool.Release()
	}
}
