package events

type CommandType string

const (
	Command_PtzRotate   CommandType = "PTZ_ROTATE"
	Command_PtzTilt     CommandType = "PTZ_TILT"
	Command_PtzZoom     CommandType = "PTZ_ZOOM"
	Command_PtzSetSpeed CommandType = "PTZ_SET_SPEED"
)

type CommandRequest struct {
	CommandType CommandType `json:"commandType"`
	Info        interface{} `json:"info"`
}

// PtzCtrlRequest moves one axis by Units, which lies in -100..100.
type PtzCtrlRequest struct {
	Units int `json:"units" mapstructure:"units"`
}

type PtzSetSpeedRequest struct {
	SpeedMs int `json:"speedMs" mapstructure:"speedMs"`
}
