// Package bus connects the worker to RabbitMQ: one durable request queue
// consumed with prefetch=1, one topic exchange for responses. Exactly one
// response is published per delivery.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/scholarai/gapfinder/pkg/config"
	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/resilience"
	"github.com/scholarai/gapfinder/pkg/services"
)

// Topology. The request exchange is the orchestrator's application
// exchange; the response exchange is owned by this worker.
const (
	requestExchange    = "scholarai.exchange"
	requestQueue       = "gap_analysis_requests"
	requestRoutingKey  = "gap.analysis.request"
	responseExchange   = "gap_analysis_responses"
	responseRoutingKey = "gap.analysis.response"
)

const (
	connectAttempts = 10
	maxConnectDelay = 15 * time.Second
)

// Analyzer runs one gap analysis request and always yields a response.
type Analyzer interface {
	Analyze(ctx context.Context, req models.GapAnalysisRequest) *models.GapAnalysisResponse
}

// Consumer owns the bus connection and the single consume loop.
type Consumer struct {
	cfg     *config.Settings
	handler *handler
	logger  *slog.Logger

	conn     *amqp.Connection
	channel  *amqp.Channel
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu        sync.RWMutex
	connected bool
}

// NewConsumer creates a Consumer. analyses backs the duplicate-delivery
// defense; the Consumer does not use the store otherwise.
func NewConsumer(cfg *config.Settings, analyzer Analyzer, analyses *services.AnalysisService) *Consumer {
	logger := slog.Default().With("component", "bus")
	return &Consumer{
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
		handler: &handler{
			analyzer: analyzer,
			analyses: analyses,
			timeout:  cfg.OperationTimeout,
			logger:   logger,
		},
	}
}

// Connect dials the broker with retry and declares the topology. The
// channel carries both the consumer and all publishes.
func (c *Consumer) Connect(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("opening channel: %w", err)
	}

	// One un-acked message at a time: analyses are minutes long and the
	// rate limiter would starve anything processed in parallel anyway.
	if err := channel.Qos(1, 0, false); err != nil {
		conn.Close()
		return fmt.Errorf("setting QoS: %w", err)
	}
	if err := declareTopology(channel); err != nil {
		conn.Close()
		return err
	}

	c.conn = conn
	c.channel = channel
	c.handler.pub = channel
	c.setConnected(true)
	c.logger.Info("bus topology ready", "queue", requestQueue)
	return nil
}

func (c *Consumer) dial(ctx context.Context) (*amqp.Connection, error) {
	delay := time.Second
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		conn, err := amqp.Dial(c.cfg.BusURL())
		if err == nil {
			c.logger.Info("connected to message bus", "attempt", attempt)
			return conn, nil
		}
		lastErr = err
		c.logger.Warn("bus connect failed, retrying",
			"attempt", attempt, "attempts", connectAttempts, "delay", delay, "error", err)
		if attempt < connectAttempts {
			if err := resilience.Sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay = min(delay*2, maxConnectDelay)
		}
	}
	return nil, fmt.Errorf("connecting to message bus: %w", lastErr)
}

func declareTopology(channel *amqp.Channel) error {
	if err := channel.ExchangeDeclare(requestExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring request exchange: %w", err)
	}
	queue, err := channel.QueueDeclare(requestQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declaring request queue: %w", err)
	}
	if err := channel.QueueBind(queue.Name, requestRoutingKey, requestExchange, false, nil); err != nil {
		return fmt.Errorf("binding request queue: %w", err)
	}
	if err := channel.ExchangeDeclare(responseExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring response exchange: %w", err)
	}
	return nil
}

// Start begins consuming in a goroutine. Connect must have succeeded.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(requestQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("starting consumer: %w", err)
	}
	c.wg.Add(1)
	go c.run(ctx, deliveries)
	return nil
}

func (c *Consumer) run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer c.wg.Done()
	c.logger.Info("consuming gap analysis requests", "queue", requestQueue)

	for {
		select {
		case <-c.stopCh:
			c.logger.Info("consumer shutting down")
			return
		case <-ctx.Done():
			c.logger.Info("context cancelled, consumer shutting down")
			return
		case delivery, ok := <-deliveries:
			if !ok {
				// Broker closed the channel under us. Health reports it;
				// recovery is a process restart.
				c.logger.Error("delivery channel closed by broker")
				c.setConnected(false)
				return
			}
			c.handler.handle(ctx, delivery)
		}
	}
}

// Stop signals the loop, waits for the in-flight delivery to settle,
// then closes the connection. Safe to call more than once.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.setConnected(false)
	c.logger.Info("disconnected from message bus")
}

// Connected reports whether the consumer currently holds a live
// connection, for the health endpoint.
func (c *Consumer) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Consumer) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}
