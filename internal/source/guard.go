package source

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"ggm/internal/retry"
)

// ErrPrivateAddress is returned when a public-only client is pointed at
// a loopback, private or link-local address.
var ErrPrivateAddress = errors.New("refusing to fetch from a non-public address")

// PublicOnly returns a client for fetching user-supplied links.  The
// check runs on the resolved address of every dial, so redirects and
// DNS names pointing inward are refused too.
func PublicOnly(timeout time.Duration) *http.Client {
	d := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
		Control:   refusePrivate,
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = nil
	t.DialContext = d.DialContext
	return &http.Client{Timeout: timeout, Transport: t}
}

func refusePrivate(_, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return retry.Permanent(fmt.Errorf("%w: %s", ErrPrivateAddress, address))
	}
	if !isPublic(ap.Addr()) {
		return retry.Permanent(fmt.Errorf("%w: %s", ErrPrivateAddress, ap.Addr()))
	}
	return nil
}

func isPublic(ip netip.Addr) bool {
	ip = ip.Unmap()
	return ip.IsGlobalUnicast() && !ip.IsPrivate() &&
		!ip.IsLoopback() && !ip.IsLinkLocalUnicast()
}
