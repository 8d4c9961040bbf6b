package mqttdiag

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/katalvlaran/renormtsp/anneal"
)

var (
	// ErrNotConnected indicates publishing without a connected client.
	ErrNotConnected = errors.New("mqttdiag: client not connected")
	// ErrPublishTimeout indicates a publish not acknowledged within the timeout.
	ErrPublishTimeout = errors.New("mqttdiag: publish timed out")
)

const (
	// DefaultPrefix is the topic prefix when none is given.
	DefaultPrefix = "renormtsp"

	publishTimeout = 2 * time.Second
)

// IterationMessage is the payload of an iteration topic.
type IterationMessage struct {
	Run              string  `json:"run"`
	Iteration        uint64  `json:"iteration"`
	Temperature      float64 `json:"temperature"`
	Energy           float64 `json:"energy"`
	Delta            float64 `json:"delta"`
	EnergyVariation  float64 `json:"energy_variation"`
	BestEnergy       float64 `json:"best_energy"`
	EntropyVariation float64 `json:"entropy_variation"`
	BestRotation     float64 `json:"best_rotation"`
	Rotation         float64 `json:"rotation"`
	RotationStep     float64 `json:"rotation_step"`
	Amplitude        float64 `json:"amplitude"`
	Accepted         bool    `json:"accepted"`
	Timestamp        int64   `json:"timestamp"`
}

// ResultMessage is the payload of the result topic.
type ResultMessage struct {
	Run          string  `json:"run"`
	BestLength   float64 `json:"best_length"`
	BestRotation float64 `json:"best_rotation"`
	Tour         []int   `json:"tour"`
	Iterations   uint64  `json:"iterations"`
	Accepted     uint64  `json:"accepted"`
	Stop         string  `json:"stop"`
	ElapsedMS    int64   `json:"elapsed_ms"`
	Timestamp    int64   `json:"timestamp"`
}

// Publisher sends annealing records over MQTT.
type Publisher struct {
	client mqtt.Client
	prefix string
	run    string
	qos    byte
	every  uint64
	logger *slog.Logger

	mu       sync.Mutex
	failures int
	lastErr  error
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithPrefix sets the topic prefix.
func WithPrefix(prefix string) PublisherOption {
	return func(p *Publisher) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithRunID sets the run segment of the topics.
func WithRunID(id string) PublisherOption {
	return func(p *Publisher) {
		if id != "" {
			p.run = id
		}
	}
}

// WithQoS sets the MQTT quality of service (0, 1 or 2) for iteration messages.
func WithQoS(qos byte) PublisherOption {
	return func(p *Publisher) {
		if qos <= 2 {
			p.qos = qos
		}
	}
}

// WithEvery publishes only every n-th iteration.
func WithEvery(n uint64) PublisherOption {
	return func(p *Publisher) {
		if n > 0 {
			p.every = n
		}
	}
}

// WithLogger reports publish failures on l.
func WithLogger(l *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPublisher returns a Publisher over client.
func NewPublisher(client mqtt.Client, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		client: client,
		prefix: DefaultPrefix,
		run:    uuid.New().String(),
		every:  1,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	p.logger = p.logger.With(slog.String("component", "mqttdiag"), slog.String("run", p.run))

	return p
}

// RunID returns the run segment of the topics.
func (p *Publisher) RunID() string { return p.run }

// IterationTopic returns the topic iteration records are published to.
func (p *Publisher) IterationTopic() string {
	return fmt.Sprintf("%s/%s/iteration", p.prefix, p.run)
}

// ResultTopic returns the topic the final result is published to.
func (p *Publisher) ResultTopic() string {
	return fmt.Sprintf("%s/%s/result", p.prefix, p.run)
}

// Observe implements anneal.Observer.
func (p *Publisher) Observe(r anneal.Record) {
	if r.Iteration%p.every != 0 {
		return
	}
	msg := IterationMessage{
		Run:              p.run,
		Iteration:        r.Iteration,
		Temperature:      r.Temperature,
		Energy:           r.Energy,
		Delta:            r.Delta,
		EnergyVariation:  r.EnergyVariation,
		BestEnergy:       r.BestEnergy,
		EntropyVariation: r.EntropyVariation,
		BestRotation:     r.BestRotation,
		Rotation:         r.Rotation,
		RotationStep:     r.RotationStep,
		Amplitude:        r.Amplitude,
		Accepted:         r.Accepted,
		Timestamp:        time.Now().Unix(),
	}
	p.record(p.publish(p.IterationTopic(), p.qos, false, msg))
}

// Finish implements anneal.Finisher. The result is retained at QoS 1.
func (p *Publisher) Finish(res anneal.Result) {
	msg := ResultMessage{
		Run:          p.run,
		BestLength:   res.BestLength,
		BestRotation: res.BestRotation,
		Tour:         res.BestTour,
		Iterations:   res.Iterations,
		Accepted:     res.Accepted,
		Stop:         string(res.Stop),
		ElapsedMS:    res.Elapsed.Milliseconds(),
		Timestamp:    time.Now().Unix(),
	}
	p.record(p.publish(p.ResultTopic(), 1, true, msg))
}

// Err returns the last publish error and the number of failed publishes.
func (p *Publisher) Err() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures, p.lastErr
}

func (p *Publisher) publish(topic string, qos byte, retain bool, v any) error {
	if p.client == nil || !p.client.IsConnected() {
		return ErrNotConnected
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", topic, err)
	}
	token := p.client.Publish(topic, qos, retain, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("%w: %s after %v", ErrPublishTimeout, topic, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	return nil
}

func (p *Publisher) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.failures++
	p.lastErr = err
	first := p.failures == 1
	p.mu.Unlock()
	if first {
		p.logger.Warn("publish failed", slog.Any("error", err))
	}
}
