package eventsapi

import (
	"context"
	"fmt"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/helper"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"
	custmqtt "github.com/CE-Thesis-2023/ptzctl/internal/mqtt"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
	"go.uber.org/zap"
)

func Topic(deviceId string) string {
	return fmt.Sprintf("ptzctrl/%s", deviceId)
}

func Register(deviceId string) func(cm *autopaho.ConnectionManager, connack *paho.Connack) {
	return func(cm *autopaho.ConnectionManager, connack *paho.Connack) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		subs := makeSubscriptions(deviceId)
		if _, err := cm.Subscribe(ctx, &paho.Subscribe{
			Subscriptions: subs,
		}); err != nil {
			logger.SError("unable to make MQTT subscriptions",
				zap.String("where", "api.events.Register"),
				zap.Reflect("subs", subs),
				zap.Error(err),
			)
			return
		}

		logger.SInfo("MQTT subscriptions made success", zap.Reflect("subs", subs))
	}
}

func makeSubscriptions(deviceId string) []paho.SubscribeOptions {
	return []paho.SubscribeOptions{
		{Topic: Topic(deviceId), QoS: 1},
	}
}

func ClientErrorHandler(err error) {
	logger.SError("MQTT Client", zap.Error(err))
}

func DisconnectHandler(d *paho.Disconnect) {
	reason := ""
	if d.Properties != nil {
		reason = d.Properties.ReasonString
	}
	logger.SError("MQTT Server Disconnect",
		zap.Uint8("reasonCode", d.ReasonCode),
		zap.String("reason", reason))
}

func RouterHandler(deviceId string, handlers *StandardEventHandler) custmqtt.RouterRegister {
	return func(router *paho.StandardRouter) {
		router.RegisterHandler(
			Topic(deviceId),
			WrapForHandlers(handlers.ReceiveRemoteCommands),
		)
	}
}

func WrapForHandlers(handler func(p *paho.Publish) error) func(p *paho.Publish) {
	return func(p *paho.Publish) {
		if err := handler(p); err != nil {
			helper.EventHandlerErrorHandler(err)
		}
	}
}
