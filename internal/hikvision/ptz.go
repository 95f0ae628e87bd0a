package hikvision

import (
	"encoding/xml"
	"net"
	"net/url"
	"time"
)

const (
	capabilitiesPath = "/ISAPI/PTZCtrl/channels/1/capabilities"
	momentaryPath    = "/ISAPI/PTZCtrl/channels/1/Momentary"
)

const unauthorizedMarker = "Document Error: Unauthorized"

type PTZData struct {
	XMLName   xml.Name         `xml:"PTZData"`
	Pan       int              `xml:"pan"`
	Tilt      int              `xml:"tilt"`
	Zoom      int              `xml:"zoom"`
	Momentary MomentaryOptions `xml:"Momentary"`
}

type MomentaryOptions struct {
	Duration int64 `xml:"duration"` // milliseconds
}

func newPTZData(p Position, speed time.Duration) *PTZData {
	return &PTZData{
		Pan:  p.Pan,
		Tilt: p.Tilt,
		Zoom: p.Zoom,
		Momentary: MomentaryOptions{
			Duration: speed.Milliseconds(),
		},
	}
}

func (d *PTZData) Marshal() ([]byte, error) {
	return xml.MarshalIndent(d, "", "    ")
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Credentials) isSet() bool {
	return c != nil && c.Username != ""
}

// endpoint builds http://[user:pass@]host[:port].
func endpoint(host string, port string, credentials *Credentials) *url.URL {
	u := &url.URL{
		Scheme: "http",
		Host:   host,
	}
	if port != "" {
		u.Host = net.JoinHostPort(host, port)
	}
	if credentials.isSet() {
		u.User = url.UserPassword(credentials.Username, credentials.Password)
	}
	return u
}
