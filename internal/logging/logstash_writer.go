package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

var (
	errEmptyAddr     = errors.New("logstash: empty address")
	errRetryCooldown = errors.New("logstash: waiting before reconnect")
)

// LogstashSink ships newline-delimited JSON log entries to a Logstash TCP
// input. Entries written while Logstash is unreachable are dropped so logging
// never stalls a request.
type LogstashSink struct {
	addr    string
	dial    time.Duration
	write   time.Duration
	backoff time.Duration

	mu      sync.Mutex
	conn    net.Conn
	retryAt time.Time
	closed  bool
	dropped int
}

type SinkOption func(*LogstashSink)

func WithDialTimeout(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.dial = d }
}

func WithWriteTimeout(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.write = d }
}

// WithBackoff sets how long the sink waits after a failure before dialing again.
func WithBackoff(d time.Duration) SinkOption {
	return func(s *LogstashSink) { s.backoff = d }
}

func NewLogstashSink(addr string, opts ...SinkOption) (*LogstashSink, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errEmptyAddr
	}
	s := &LogstashSink{
		addr:    addr,
		dial:    2 * time.Second,
		write:   time.Second,
		backoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Write forwards one encoded entry. It reports success even when the entry is
// dropped; only writes after Close fail.
func (s *LogstashSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	line := append(make([]byte, 0, len(p)+1), p...)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.ErrClosedPipe
	}
	if err := s.connectLocked(); err != nil {
		s.dropped++
		return len(p), nil
	}
	if s.write > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.write))
	}
	if _, err := s.conn.Write(line); err != nil {
		s.dropped++
		s.resetLocked()
		return len(p), nil
	}
	return len(p), nil
}

// Sync satisfies zapcore.WriteSyncer; entries are written unbuffered.
func (s *LogstashSink) Sync() error {
	return nil
}

// Dropped reports how many entries were discarded since the sink was created.
func (s *LogstashSink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *LogstashSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *LogstashSink) connectLocked() error {
	if s.conn != nil {
		return nil
	}
	if !s.retryAt.IsZero() && time.Now().Before(s.retryAt) {
		return errRetryCooldown
	}
	conn, err := net.DialTimeout("tcp", s.addr, s.dial)
	if err != nil {
		s.retryAt = time.Now().Add(s.backoff)
		return err
	}
	s.conn = conn
	s.retryAt = time.Time{}
	return nil
}

func (s *LogstashSink) resetLocked() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.retryAt = time.Now().Add(s.backoff)
}

var _ zapcore.WriteSyncer = (*LogstashSink)(nil)
