package device

import (
	"context"
	"net"
	"time"
)

// DialProber treats the network as online when a TCP dial to Addr succeeds.
type DialProber struct {
	Addr    string
	Timeout time.Duration
	dial    func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewDialProber(addr string, timeout time.Duration) *DialProber {
	d := &net.Dialer{}
	return &DialProber{Addr: addr, Timeout: timeout, dial: d.DialContext}
}

func (p *DialProber) Online(ctx context.Context) bool {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	conn, err := p.dial(ctx, "tcp", p.Addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
