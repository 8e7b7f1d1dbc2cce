package remote

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"syscall"
	"time"

	"github.com/kolo/xmlrpc"

	"dlab/internal/config"
	"dlab/internal/logging"
)

const (
	defaultTimeout = 5 * time.Second
	defaultRetries = 10
)

// Options controls connection establishment.
type Options struct {
	// Port pins the XML-RPC port. 0 means discover it from the environment
	// or the application's settings file on every attempt.
	Port int

	// Timeout is the total budget for the connection loop; the wait between
	// failed attempts is Timeout/Retries. 0 means 5 seconds.
	Timeout time.Duration

	// Retries is the number of connection attempts. 0 means 10.
	Retries int

	// CallTimeout bounds each RPC once connected. 0 means no limit, which
	// matters for long-running compute functions.
	CallTimeout time.Duration

	// Logger receives connection and call logging. Nil means no logging.
	Logger *slog.Logger
}

// Client is a proxy to a running DataLab instance. Methods mirror the remote
// API one for one; each performs a single synchronous XML-RPC call.
type Client struct {
	port int
	rpc  *xmlrpc.Client
	log  *slog.Logger
}

// Connect resolves the server port and opens a connection, retrying up to
// opts.Retries times with opts.Timeout sliced evenly across the waits. Every
// attempt re-resolves the port so a freshly started application is picked up
// mid-loop.
func Connect(opts Options) (*Client, error) {
	if opts.Timeout < 0 {
		return nil, errors.New("timeout must be >= 0")
	}
	if opts.Retries < 0 {
		return nil, errors.New("retries must be >= 1")
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	retries := opts.Retries
	if retries == 0 {
		retries = defaultRetries
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("component", "remote")

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		client, err := dial(opts, logger)
		if err == nil {
			logger.Info("connected to DataLab", "port", client.port, "attempt", attempt)
			return client, nil
		}
		lastErr = err
		logger.Debug("connection attempt failed", "attempt", attempt, "error", err)
		if attempt < retries {
			time.Sleep(timeout / time.Duration(retries))
		}
	}
	return nil, fmt.Errorf("unable to connect to DataLab after %d attempts: %w", retries, lastErr)
}

func dial(opts Options, logger *slog.Logger) (*Client, error) {
	port := opts.Port
	if port == 0 {
		resolved, err := config.DiscoverPort()
		if err != nil {
			if errors.Is(err, config.ErrNotExecuted) {
				return nil, ErrNotExecuted
			}
			return nil, err
		}
		port = resolved
	}

	var transport http.RoundTripper
	if opts.CallTimeout > 0 {
		transport = &timeoutTransport{base: http.DefaultTransport, timeout: opts.CallTimeout}
	}
	rpc, err := xmlrpc.NewClient(fmt.Sprintf("http://127.0.0.1:%d", port), transport)
	if err != nil {
		return nil, fmt.Errorf("build XML-RPC client for port %d: %w", port, err)
	}

	client := &Client{port: port, rpc: rpc, log: logger}
	if _, err := client.Version(); err != nil {
		_ = rpc.Close()
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, fmt.Errorf("port %d: %w", port, ErrNotRunning)
		}
		return nil, err
	}
	return client, nil
}

// Port returns the port of the active connection.
func (c *Client) Port() int { return c.port }

// Close drops the connection. Further calls return ErrNotConnected.
func (c *Client) Close() error {
	if c.rpc == nil {
		return nil
	}
	err := c.rpc.Close()
	c.rpc = nil
	return err
}

// call performs one RPC, logging the method and wrapping failures with it.
func (c *Client) call(method string, args []any, reply any) error {
	if c.rpc == nil {
		return fmt.Errorf("%s: %w", method, ErrNotConnected)
	}
	c.log.Debug("calling remote method", "method", method, "args", len(args))
	if err := c.rpc.Call(method, args, reply); err != nil {
		if code, message, ok := Fault(err); ok {
			c.log.Debug("remote fault", "method", method, "code", code, "message", message)
		}
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
