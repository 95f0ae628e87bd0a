package eventsapi

import (
	"context"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/biz/service"
	"github.com/CE-Thesis-2023/ptzctl/helper"
	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
	"github.com/CE-Thesis-2023/ptzctl/internal/hikvision"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"
	"github.com/CE-Thesis-2023/ptzctl/models/events"

	"github.com/bytedance/sonic"
	"github.com/eclipse/paho.golang/paho"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

const commandTimeout = 5 * time.Second

var axisByCommand = map[events.CommandType]hikvision.Axis{
	events.Command_PtzRotate: hikvision.AxisRotation,
	events.Command_PtzTilt:   hikvision.AxisTilt,
	events.Command_PtzZoom:   hikvision.AxisZoom,
}

type StandardEventHandler struct {
	pool    *ants.Pool
	service service.CommandServiceInterface
}

func NewStandardEventHandler(pool *ants.Pool, s service.CommandServiceInterface) *StandardEventHandler {
	return &StandardEventHandler{
		pool:    pool,
		service: s,
	}
}

// ReceiveRemoteCommands decodes a command and hands it to the worker pool.
func (h *StandardEventHandler) ReceiveRemoteCommands(p *paho.Publish) error {
	logger.SDebug("ReceiveRemoteCommands", zap.String("message", string(p.Payload)))

	var msg events.CommandRequest
	if err := sonic.Unmarshal(p.Payload, &msg); err != nil {
		logger.SError("ReceiveRemoteCommands: message parsing failed", zap.Error(err))
		return custerror.FormatInvalidArgument("message parsing failed: %s", err)
	}

	return h.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer func() {
			if ctx.Err() != nil {
				logger.SDebug("ReceiveRemoteCommands: context exceeded")
			}
			cancel()
		}()

		if err := h.Dispatch(ctx, &msg); err != nil {
			helper.EventHandlerErrorHandler(err)
			return
		}
		logger.SInfo("ReceiveRemoteCommands: success",
			zap.String("commandType", string(msg.CommandType)))
	})
}

func (h *StandardEventHandler) Dispatch(ctx context.Context, msg *events.CommandRequest) error {
	if axis, ok := axisByCommand[msg.CommandType]; ok {
		var info events.PtzCtrlRequest
		if err := decodeInfo(msg.Info, &info); err != nil {
			logger.SError("ReceiveRemoteCommands: decode PtzCtrlRequest",
				zap.String("commandType", string(msg.CommandType)),
				zap.Error(err))
			return custerror.FormatInvalidArgument("info not type PtzCtrlRequest: %s", err)
		}
		return h.service.PtzCtrl(ctx, axis, &info)
	}

	switch msg.CommandType {
	case events.Command_PtzSetSpeed:
		var info events.PtzSetSpeedRequest
		if err := decodeInfo(msg.Info, &info); err != nil {
			logger.SError("ReceiveRemoteCommands: decode PtzSetSpeedRequest", zap.Error(err))
			return custerror.FormatInvalidArgument("info not type PtzSetSpeedRequest: %s", err)
		}
		return h.service.SetMovementSpeed(ctx, &info)
	}

	return custerror.FormatInvalidArgument("unknown command type %q", msg.CommandType)
}
