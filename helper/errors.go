package helper

import (
	"errors"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"go.uber.org/zap"
)

var commonEventMessage string = "events handler error"

func EventHandlerErrorHandler(err error) {
	var custError *custerror.CustomError
	if errors.As(err, &custError) {
		logger.SInfo(commonEventMessage,
			zap.Error(err),
			zap.Uint32("type", custError.Code))
	} else {
		logger.SInfo(commonEventMessage,
			zap.Error(err))
	}
}
