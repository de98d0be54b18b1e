package profile

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/danmuck/obswire/internal/transport"
)

// Profile is everything needed to dial and authenticate against one
// OBS-WebSocket server.
type Profile struct {
	Scheme   string // "ws" or "wss"
	Host     string
	Port     int
	Password string
	Encoding transport.Encoding
}

// URL renders the profile back into its scheme://host:port[/password]
// form.
func (p Profile) URL() string {
	u := fmt.Sprintf("%s://%s:%d", p.Scheme, p.Host, p.Port)
	if p.Password != "" {
		u += "/" + p.Password
	}
	return u
}

// Validate enforces the invariants ParseURL's caller depends on:
// scheme is ws or wss, host is non-empty, port is in range.
func (p Profile) Validate() error {
	switch p.Scheme {
	case "ws", "wss":
	default:
		return fmt.Errorf("profile: unsupported scheme %q (want ws or wss)", p.Scheme)
	}
	if strings.TrimSpace(p.Host) == "" {
		return fmt.Errorf("profile: missing host")
	}
	if p.Port <= 0 || p.Port > 65535 {
		return fmt.Errorf("profile: port %d out of range", p.Port)
	}
	return nil
}

// ParseURL parses the scheme://host:port[/password] form. When a path
// segment is present it IS the password verbatim; no further path
// structure is recognized.
func ParseURL(raw string) (Profile, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: parse %q: %w", raw, err)
	}
	if u.Host == "" {
		return Profile{}, fmt.Errorf("profile: %q has no host", raw)
	}

	host := u.Hostname()
	portStr := u.Port()
	port := defaultPort(u.Scheme)
	if portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return Profile{}, fmt.Errorf("profile: invalid port in %q: %w", raw, err)
		}
		port = p
	}

	password := strings.TrimPrefix(u.Path, "/")

	p := Profile{
		Scheme:   u.Scheme,
		Host:     host,
		Port:     port,
		Password: password,
		Encoding: transport.EncodingJSON,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func defaultPort(scheme string) int {
	if scheme == "wss" {
		return 4443
	}
	return 4455
}
