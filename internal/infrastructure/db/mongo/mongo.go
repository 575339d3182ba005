package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// ErrNotConnected is returned when a handle is requested before Connect
// succeeded. This signals a wiring bug, not a recoverable runtime condition.
var ErrNotConnected = errors.New("mongo: not connected")

// ErrAlreadyConnected is returned by Connect when the pool is already open.
var ErrAlreadyConnected = errors.New("mongo: already connected")

// State is the lifecycle state of the connection pool.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// Config captures the settings required to establish the MongoDB pool.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	MinPoolSize uint64
	// ServerSelectionTimeout bounds topology discovery; ConnectTimeout bounds
	// the TCP/TLS handshake. Defaults are applied when zero.
	ServerSelectionTimeout time.Duration
	ConnectTimeout         time.Duration
}

// Conn owns the single MongoDB connection pool for the process. It is
// constructed once at startup and passed to every repository; there is no
// package-level instance. Lifecycle: Disconnected → Connecting → Connected,
// back to Disconnected on Disconnect or on a failed Connect.
type Conn struct {
	mu     sync.Mutex
	cfg    Config
	state  State
	client *mongo.Client
	db     *mongo.Database
}

// NewConn returns a Conn in the Disconnected state.
func NewConn(cfg Config) *Conn {
	return &Conn{cfg: cfg}
}

// Connect opens the pool, verifies connectivity with a ping, and transitions
// to Connected. Valid only from Disconnected. Any failure (auth, network,
// timeout) transitions back to Disconnected and is surfaced to the caller;
// startup treats it as fatal, nothing is retried here.
func (c *Conn) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDisconnected {
		return ErrAlreadyConnected
	}
	c.state = StateConnecting

	timeout := c.cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(c.cfg.URI)
	if c.cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(c.cfg.MaxPoolSize)
	}
	if c.cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(c.cfg.MinPoolSize)
	}
	if c.cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(c.cfg.ServerSelectionTimeout)
	}
	if c.cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(c.cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		c.state = StateDisconnected
		return fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		c.state = StateDisconnected
		return fmt.Errorf("mongo ping: %w", err)
	}

	c.client = client
	c.db = client.Database(c.cfg.Database)
	c.state = StateConnected
	return nil
}

// Disconnect releases all pooled connections. Idempotent: calling it while
// already disconnected is a no-op.
func (c *Conn) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnected {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	c.state = StateDisconnected
	if err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}

// Database returns the selected database handle, or ErrNotConnected.
func (c *Conn) Database() (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

// Collection returns a collection handle, or ErrNotConnected.
func (c *Conn) Collection(name string) (*mongo.Collection, error) {
	db, err := c.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Client exposes the underlying client for health probes.
func (c *Conn) Client() (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected {
		return nil, ErrNotConnected
	}
	return c.client, nil
}

// State reports the current lifecycle state.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
