package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/helper/factory"
	"github.com/CE-Thesis-2023/ptzctl/internal/app"
	"github.com/CE-Thesis-2023/ptzctl/internal/configs"
	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
	"github.com/CE-Thesis-2023/ptzctl/internal/hikvision"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"go.uber.org/zap"
)

const usage = "usage: ptzctl [rotate|tilt|zoom <units>]"

func main() {
	if len(os.Args) > 1 {
		os.Exit(app.Exec(runOnce(os.Args[1:])))
	}

	var remote *factory.RemoteControl

	app.Run(
		time.Second*10,
		func(configs *configs.Configs, _ *zap.Logger) []app.Optioner {
			return []app.Optioner{
				app.WithFactoryHook(func() error {
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()

					camera, err := factory.Init(ctx, &configs.Camera)
					if err != nil {
						return err
					}

					remote, err = factory.StartRemoteControl(configs, camera, 10*time.Second)
					return err
				}),
				app.WithShutdownHook(func(ctx context.Context) {
					if remote != nil {
						remote.Stop(ctx)
					}
				}),
			}
		},
	)
}

func runOnce(args []string) app.ExecFunc {
	return func(ctx context.Context, configs *configs.Configs) error {
		axis, units, err := parseCommand(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, usage)
			return err
		}

		camera, err := factory.Init(ctx, &configs.Camera)
		if err != nil {
			return err
		}

		resp, err := camera.Move(ctx, axis, units)
		if err != nil {
			return err
		}
		if err := hikvision.CheckResponse(resp); err != nil {
			return err
		}

		logger.SInfo("PTZ command sent",
			zap.Stringer("axis", axis),
			zap.Int("units", units),
			zap.Int("status", resp.StatusCode))
		return nil
	}
}

func parseCommand(args []string) (hikvision.Axis, int, error) {
	if len(args) != 2 {
		return 0, 0, custerror.FormatInvalidArgument("expected a command and units, got %d arguments", len(args))
	}

	var axis hikvision.Axis
	switch args[0] {
	case "rotate":
		axis = hikvision.AxisRotation
	case "tilt":
		axis = hikvision.AxisTilt
	case "zoom":
		axis = hikvision.AxisZoom
	default:
		return 0, 0, custerror.FormatInvalidArgument("unknown command %q", args[0])
	}

	units, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, custerror.FormatInvalidArgument("units %q is not an integer", args[1])
	}
	return axis, units, nil
}
