package custmqtt

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/internal/configs"
	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"

	"github.com/eclipse/paho.golang/packets"
)

func TestBrokerUrl(t *testing.T) {
	tests := []struct {
		name    string
		configs configs.EventStoreConfigs
		want    string
	}{
		{name: "plain", configs: configs.EventStoreConfigs{Host: "broker.local", Port: 1883}, want: "mqtt://broker.local:1883"},
		{name: "tls", configs: configs.EventStoreConfigs{Host: "broker.local", Port: 8883, TlsEnabled: true}, want: "tls://broker.local:8883"},
		{name: "no port", configs: configs.EventStoreConfigs{Host: "broker.local"}, want: "mqtt://broker.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BrokerUrl(&tt.configs).String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewClient_RequiresConfigs(t *testing.T) {
	_, err := NewClient(context.Background())
	if !errors.Is(err, custerror.ErrorInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

type fakeBroker struct {
	listener net.Listener
	closed   chan struct{}
}

// startFakeBroker accepts a single client, acknowledges its CONNECT and
// answers pings until the client disconnects.
func startFakeBroker(t *testing.T) *fakeBroker {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })

	b := &fakeBroker{listener: l, closed: make(chan struct{})}
	go b.serve()
	return b
}

func (b *fakeBroker) serve() {
	conn, err := b.listener.Accept()
	if err != nil {
		return
	}
	defer close(b.closed)
	defer conn.Close()

	for {
		cp, err := packets.ReadPacket(conn)
		if err != nil {
			return
		}
		switch cp.Type {
		case packets.CONNECT:
			if _, err := packets.NewControlPacket(packets.CONNACK).WriteTo(conn); err != nil {
				return
			}
		case packets.PINGREQ:
			if _, err := packets.NewControlPacket(packets.PINGRESP).WriteTo(conn); err != nil {
				return
			}
		case packets.DISCONNECT:
			return
		}
	}
}

func (b *fakeBroker) configs() *configs.EventStoreConfigs {
	return &configs.EventStoreConfigs{
		Host:    "127.0.0.1",
		Port:    b.listener.Addr().(*net.TCPAddr).Port,
		Enabled: true,
	}
}

func TestNewClient_StaysConnectedAfterStartup(t *testing.T) {
	broker := startFakeBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cm, err := NewClient(ctx,
		WithClientGlobalConfigs(broker.configs()),
		WithClientId("ptzctl-test"),
		WithConnectTimeout(2*time.Second))
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-broker.closed:
		t.Fatal("connection dropped after NewClient returned")
	case <-time.After(300 * time.Millisecond):
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer disconnectCancel()
	if err := cm.Disconnect(disconnectCtx); err != nil {
		t.Fatal(err)
	}

	select {
	case <-broker.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("broker never saw the client disconnect")
	}
}

func TestNewClient_ConnectTimeout(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	_, err = NewClient(ctx,
		WithClientGlobalConfigs(&configs.EventStoreConfigs{Host: "127.0.0.1", Port: port}),
		WithConnectTimeout(200*time.Millisecond))
	if err == nil {
		t.Fatal("expected an error for an unreachable broker")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("NewClient waited %s, want about 200ms", elapsed)
	}
}
