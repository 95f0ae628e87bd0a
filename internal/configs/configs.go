package configs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

const ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

const redacted = "xxxxx"

var globalConfigs *Configs

var marshal = sonic.Marshal

type Configs struct {
	Logger     LoggerConfigs     `json:"logger,omitempty" yaml:"logger,omitempty"`
	Camera     CameraConfigs     `json:"camera,omitempty" yaml:"camera,omitempty"`
	MqttStore  EventStoreConfigs `json:"mqttStore,omitempty" yaml:"mqttStore,omitempty"`
	DeviceInfo DeviceInfoConfigs `json:"deviceInfo,omitempty" yaml:"deviceInfo,omitempty"`
}

// String renders the configs as JSON with secrets masked.
func (c Configs) String() string {
	if c.Camera.Password != "" {
		c.Camera.Password = redacted
	}
	if c.MqttStore.Password != "" {
		c.MqttStore.Password = redacted
	}
	configBytes, err := marshal(c)
	if err != nil {
		return fmt.Sprintf("<error: %s>", err)
	}
	return string(configBytes)
}

func Init(ctx context.Context) {
	configs, err := readConfig()
	if err != nil {
		log.Fatal(err)
		return
	}
	globalConfigs = configs
}

func Get() *Configs {
	return globalConfigs
}

type LoggerConfigs struct {
	Level    string `json:"level,omitempty" yaml:"level,omitempty"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

type CameraConfigs struct {
	Host            string `json:"host,omitempty" yaml:"host,omitempty"`
	Port            string `json:"port,omitempty" yaml:"port,omitempty"`
	Username        string `json:"username,omitempty" yaml:"username,omitempty"`
	Password        string `json:"password,omitempty" yaml:"password,omitempty"`
	MovementSpeedMs int    `json:"movementSpeedMs,omitempty" yaml:"movementSpeedMs,omitempty"`
	TimeoutMs       int    `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty"`
	DebugHttp       bool   `json:"debugHttp,omitempty" yaml:"debugHttp,omitempty"`
}

func (c *CameraConfigs) HasAuth() bool {
	return len(c.Username) > 0
}

func (c *CameraConfigs) MovementSpeed() time.Duration {
	return time.Duration(c.MovementSpeedMs) * time.Millisecond
}

func (c *CameraConfigs) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

type EventStoreConfigs struct {
	Host       string `json:"host,omitempty" yaml:"host,omitempty"`
	Port       int    `json:"port,omitempty" yaml:"port,omitempty"`
	TlsEnabled bool   `json:"tlsEnabled,omitempty" yaml:"tlsEnabled,omitempty"`
	Enabled    bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	Password   string `json:"password,omitempty" yaml:"password,omitempty"`
}

func (c *EventStoreConfigs) HasAuth() bool {
	return len(c.Username) > 0 && len(c.Password) > 0
}

type DeviceInfoConfigs struct {
	DeviceId string `json:"deviceId,omitempty" yaml:"deviceId,omitempty"`
}

func readConfig() (*Configs, error) {
	path, err := getConfigFilePath()
	if err != nil {
		return nil, err
	}
	configFile, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	configs, err := parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	if err := configs.validate(); err != nil {
		return nil, err
	}

	return configs, nil
}

func getConfigFilePath() (string, error) {
	path := os.Getenv(ENV_CONFIG_FILE_PATH)
	if len(path) == 0 {
		return "", custerror.FormatNotFound("%s not found, unable to read configurations", ENV_CONFIG_FILE_PATH)
	}
	return path, nil
}

func readConfigFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, custerror.FormatNotFound("readConfigFile: file not found")
		}
		return nil, custerror.FormatInternalError("readConfigFile: err = %s", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, custerror.FormatInternalError("readConfigFile: err = %s", err)
	}

	return contents, nil
}

func parseConfig(contents []byte) (*Configs, error) {
	configs := &Configs{}
	if jsonErr := json.Unmarshal(contents, configs); jsonErr != nil {
		if yamlErr := yaml.Unmarshal(contents, configs); yamlErr != nil {
			return nil, custerror.FormatInvalidArgument("parseConfig: config parse JSON err = %s YAML err = %s", jsonErr, yamlErr)
		}
	}
	return configs, nil
}

func (c *Configs) validate() error {
	if c.Camera.Host == "" {
		return custerror.FormatInvalidArgument("validate: camera.host is required")
	}
	if c.MqttStore.Enabled && c.DeviceInfo.DeviceId == "" {
		return custerror.FormatInvalidArgument("validate: deviceInfo.deviceId is required when mqttStore is enabled")
	}
	return nil
}
