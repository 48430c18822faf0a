// Package fakeredis runs a minimal RESP2 server for tests that need control
// over the raw INFO reply. It answers like Redis 5: HELLO is an unknown
// command, PING gets PONG, INFO gets the configured text verbatim.
package fakeredis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// Server is a fake Redis listening on a loopback port.
type Server struct {
	ln    net.Listener
	info  atomic.Value // string
	infos atomic.Int64
	conns atomic.Int64

	mu     sync.Mutex
	active map[net.Conn]struct{}
	wg     sync.WaitGroup
}

// Run starts a server replying info to INFO and stops it on test cleanup.
func Run(t testing.TB, info string) *Server {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("fakeredis: listen: %v", err)
	}
	s := &Server{ln: ln, active: make(map[net.Conn]struct{})}
	s.SetInfo(info)

	s.wg.Add(1)
	go s.serve()
	t.Cleanup(s.Close)
	return s
}

// SetInfo replaces the INFO reply text.
func (s *Server) SetInfo(info string) {
	s.info.Store(info)
}

func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// HostPort splits Addr for use with At.
func (s *Server) HostPort() (string, int) {
	a := s.ln.Addr().(*net.TCPAddr)
	return a.IP.String(), a.Port
}

// InfoCalls reports how many INFO commands were served.
func (s *Server) InfoCalls() int {
	return int(s.infos.Load())
}

// Connections reports how many connections were accepted.
func (s *Server) Connections() int {
	return int(s.conns.Load())
}

// Close stops accepting, drops open connections and waits for handlers.
func (s *Server) Close() {
	_ = s.ln.Close()
	s.mu.Lock()
	for c := range s.active {
		_ = c.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.conns.Add(1)
		s.mu.Lock()
		s.active[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() {
				s.mu.Lock()
				delete(s.active, conn)
				s.mu.Unlock()
				conn.Close()
			}()
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	rd := bufio.NewReader(conn)
	for {
		args, err := readCommand(rd)
		if err != nil {
			return
		}
		if len(args) == 0 {
			continue
		}

		var reply string
		switch name := strings.ToUpper(args[0]); name {
		case "PING":
			reply = "+PONG\r\n"
		case "INFO":
			s.infos.Add(1)
			text := s.info.Load().(string)
			reply = fmt.Sprintf("$%d\r\n%s\r\n", len(text), text)
		default:
			reply = fmt.Sprintf("-ERR unknown command '%s'\r\n", args[0])
		}
		if _, err := io.WriteString(conn, reply); err != nil {
			return
		}
	}
}

// readCommand reads one RESP array of bulk strings.
func readCommand(rd *bufio.Reader) ([]string, error) {
	line, err := readLine(rd)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "*") {
		return strings.Fields(line), nil
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hdr, err := readLine(rd)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(hdr, "$") {
			return nil, errors.New("fakeredis: expected bulk string")
		}
		size, err := strconv.Atoi(hdr[1:])
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(rd, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func readLine(rd *bufio.Reader) (string, error) {
	line, err := rd.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
