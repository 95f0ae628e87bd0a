package custmqtt

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/internal/configs"
	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
	"go.uber.org/zap"
)

// NewClient connects to the broker described by the global configs and
// blocks until the first connection is up. The connection manager lives
// until ctx is done, so ctx must outlive the client; use
// WithConnectTimeout to bound the wait for the first connection.
func NewClient(ctx context.Context, options ...ClientOptioner) (*autopaho.ConnectionManager, error) {
	opts := &ClientOptions{}
	for _, opt := range options {
		opt(opts)
	}

	if opts.globalConfigs == nil {
		return nil, custerror.FormatInvalidArgument("custmqtt.NewClient: broker configs are required")
	}

	brokerUrl := BrokerUrl(opts.globalConfigs)

	router := paho.NewStandardRouter()
	if opts.register != nil {
		opts.register(router)
	}

	clientConfigs := autopaho.ClientConfig{
		KeepAlive:         20,
		ConnectRetryDelay: time.Second * 5,
		ConnectTimeout:    time.Second * 2,
		BrokerUrls: []*url.URL{
			brokerUrl,
		},
		OnConnectionUp: func(cm *autopaho.ConnectionManager, connack *paho.Connack) {
			logger.SInfo("MQTT connection up", zap.String("broker", brokerUrl.String()))
			if opts.reconCallback != nil {
				opts.reconCallback(cm, connack)
			}
		},
		OnConnectError: func(err error) {
			logger.SError("MQTT connection failed", zap.Error(err))
			if opts.connErrCallback != nil {
				opts.connErrCallback(err)
			}
		},
		ClientConfig: paho.ClientConfig{
			ClientID: opts.clientId,
			Router:   router,
		},
	}

	if opts.globalConfigs.TlsEnabled {
		clientConfigs.TlsCfg = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	if opts.globalConfigs.HasAuth() {
		clientConfigs.SetUsernamePassword(opts.globalConfigs.Username, []byte(opts.globalConfigs.Password))
	}

	if opts.clientErr != nil {
		clientConfigs.ClientConfig.OnClientError = opts.clientErr
	}

	if opts.serverDisconnect != nil {
		clientConfigs.ClientConfig.OnServerDisconnect = opts.serverDisconnect
	}

	connManager, err := autopaho.NewConnection(ctx, clientConfigs)
	if err != nil {
		return nil, err
	}

	awaitCtx := ctx
	if opts.connectTimeout > 0 {
		var cancel context.CancelFunc
		awaitCtx, cancel = context.WithTimeout(ctx, opts.connectTimeout)
		defer cancel()
	}

	if err := connManager.AwaitConnection(awaitCtx); err != nil {
		return nil, err
	}

	return connManager, nil
}

func BrokerUrl(c *configs.EventStoreConfigs) *url.URL {
	connUrl := &url.URL{
		Scheme: "mqtt",
		Host:   c.Host,
	}
	if c.TlsEnabled {
		connUrl.Scheme = "tls"
	}
	if c.Port > 0 {
		connUrl.Host = fmt.Sprintf("%s:%d", c.Host, c.Port)
	}
	return connUrl
}

type ClientOptions struct {
	globalConfigs    *configs.EventStoreConfigs
	clientId         string
	reconCallback    func(cm *autopaho.ConnectionManager, connack *paho.Connack)
	connErrCallback  func(err error)
	serverDisconnect func(d *paho.Disconnect)
	clientErr        func(err error)
	register         RouterRegister
	connectTimeout   time.Duration
}

type ClientOptioner func(options *ClientOptions)

type RouterRegister func(router *paho.StandardRouter)

func WithClientGlobalConfigs(configs *configs.EventStoreConfigs) ClientOptioner {
	return func(options *ClientOptions) {
		options.globalConfigs = configs
	}
}

func WithClientId(id string) ClientOptioner {
	return func(options *ClientOptions) {
		options.clientId = id
	}
}

func WithOnReconnection(cb func(cm *autopaho.ConnectionManager, connack *paho.Connack)) ClientOptioner {
	return func(options *ClientOptions) {
		options.reconCallback = cb
	}
}

func WithOnConnectError(cb func(err error)) ClientOptioner {
	return func(options *ClientOptions) {
		options.connErrCallback = cb
	}
}

func WithOnServerDisconnect(cb func(d *paho.Disconnect)) ClientOptioner {
	return func(options *ClientOptions) {
		options.serverDisconnect = cb
	}
}

func WithClientError(cb func(err error)) ClientOptioner {
	return func(options *ClientOptions) {
		options.clientErr = cb
	}
}

func WithHandlerRegister(cb RouterRegister) ClientOptioner {
	return func(options *ClientOptions) {
		options.register = cb
	}
}

func WithConnectTimeout(d time.Duration) ClientOptioner {
	return func(options *ClientOptions) {
		options.connectTimeout = d
	}
}
