// Package ipc accepts line-delimited commands over a local Unix domain
// socket and turns each line into a bar.IPCRequest for the core's main
// loop to answer.
package ipc

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/edgebar/edgebar/bar"
)

// Listener accepts IPC connections and feeds decoded lines into a shared
// request channel.
type Listener struct {
	ln  *net.UnixListener
	log *logrus.Logger
}

// Listen removes any stale socket at path and binds a new one there,
// matching the original's "remove then bind" socket initialization. On
// failure it returns a nil Listener and the error; callers should log and
// continue with IPC disabled rather than treat this as fatal.
func Listen(path string, log *logrus.Logger) (*Listener, error) {
	_ = os.Remove(path)

	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, fmt.Errorf("ipc: resolving socket path %s: %w", path, err)
	}
	ln, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, fmt.Errorf("ipc: listening on %s: %w", path, err)
	}

	return &Listener{ln: ln, log: log}, nil
}

// Serve accepts connections until the listener is closed, sending a
// bar.IPCRequest to requests for every line read off each connection. Each
// connection is handled on its own goroutine so a slow client never blocks
// another.
func (l *Listener) Serve(requests chan<- bar.IPCRequest) {
	for {
		conn, err := l.ln.AcceptUnix()
		if err != nil {
			return
		}
		l.logPeerCred(conn)
		go l.handleConn(conn, requests)
	}
}

// Close stops accepting new connections.
func (l *Listener) Close() error {
	return l.ln.Close()
}

func (l *Listener) handleConn(conn *net.UnixConn, requests chan<- bar.IPCRequest) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		reply := make(chan bar.EventResponse, 1)
		requests <- bar.IPCRequest{Line: line, Reply: reply}

		resp := <-reply
		fmt.Fprintln(conn, resp.String())
	}
}

// logPeerCred inspects the connecting process's credentials over
// SO_PEERCRED and logs them at debug level. This is diagnostic only: it
// never gates or rejects the connection.
func (l *Listener) logPeerCred(conn *net.UnixConn) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return
	}
	var cred *unix.Ucred
	var credErr error
	err = raw.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	})
	if err != nil || credErr != nil {
		return
	}
	l.log.WithFields(logrus.Fields{"pid": cred.Pid, "uid": cred.Uid}).Debug("ipc: accepted connection")
}
