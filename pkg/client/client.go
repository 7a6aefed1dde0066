// Package client speaks the one-request-per-connection text protocol.
package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
)

// BufferSize bounds both the request line and the reply.
const BufferSize = 1024

// Command joins args with single spaces, clipping the result so it fits in
// one request buffer.
func Command(args ...string) string {
	line := strings.Join(args, " ")
	if len(line) > BufferSize-1 {
		line = line[:BufferSize-1]
	}
	return line
}

// Do opens a connection to addr, sends line and returns the server's reply.
// An empty reply with a nil error means the server closed without answering.
func Do(ctx context.Context, addr, line string) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("connect %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte(line)); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.CloseWrite()
	}

	reply, err := io.ReadAll(io.LimitReader(conn, BufferSize))
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return strings.TrimRight(string(reply), "\r\n"), nil
}
