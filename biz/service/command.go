package service

import (
	"context"
	"time"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
	"github.com/CE-Thesis-2023/ptzctl/internal/hikvision"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"
	"github.com/CE-Thesis-2023/ptzctl/models/events"

	"go.uber.org/zap"
)

type CameraController interface {
	Move(ctx context.Context, axis hikvision.Axis, unit int) (*hikvision.Response, error)
	SetMovementSpeed(speed time.Duration)
	Position() hikvision.Position
}

type CommandServiceInterface interface {
	PtzCtrl(ctx context.Context, axis hikvision.Axis, req *events.PtzCtrlRequest) error
	SetMovementSpeed(ctx context.Context, req *events.PtzSetSpeedRequest) error
}

type CommandService struct {
	camera CameraController
}

var _ CommandServiceInterface = (*CommandService)(nil)

func NewCommandService(camera CameraController) *CommandService {
	return &CommandService{camera: camera}
}

func (s *CommandService) PtzCtrl(ctx context.Context, axis hikvision.Axis, req *events.PtzCtrlRequest) error {
	logger.SInfo("requested to perform PTZ Control",
		zap.Stringer("axis", axis),
		zap.Int("units", req.Units))

	resp, err := s.camera.Move(ctx, axis, req.Units)
	if err != nil {
		logger.SError("failed to perform PTZ Control", zap.Error(err))
		return err
	}

	if err := hikvision.CheckResponse(resp); err != nil {
		logger.SError("PTZ Control rejected by device",
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return err
	}

	logger.SInfo("PTZ Control success",
		zap.Stringer("axis", axis),
		zap.Reflect("position", s.camera.Position()))
	return nil
}

func (s *CommandService) SetMovementSpeed(ctx context.Context, req *events.PtzSetSpeedRequest) error {
	if req.SpeedMs < 0 {
		return custerror.FormatInvalidArgument("movement speed must not be negative, got %dms", req.SpeedMs)
	}

	speed := time.Duration(req.SpeedMs) * time.Millisecond
	s.camera.SetMovementSpeed(speed)

	logger.SInfo("PTZ movement speed changed", zap.Duration("speed", speed))
	return nil
}
