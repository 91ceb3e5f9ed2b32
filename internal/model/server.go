package model

import (
	"context"
	"io"
	"net"
)

// SecurityLayer opens the listener the server accepts connections on.
type SecurityLayer interface {
	Listen(network, addr string) (net.Listener, error)
}

// Server is a long-running network server.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// IncidentArchive stores security incident reports.
type IncidentArchive interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
}
