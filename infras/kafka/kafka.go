package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"flightbook/config"
	"flightbook/infras/otel"
	"flightbook/shared/constant"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const writeTimeout = 10 * time.Second

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Decode unmarshals a consumed message value into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type publisherImpl struct {
	transport *kafkaGo.Transport
	brokers   []string
	otel      otel.Otel

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

// New returns a no-op publisher when Kafka is disabled so callers never branch on configuration.
func New(cfg *config.Config, ot otel.Otel) Publisher {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, domain events will be dropped")

		return &noopPublisher{}
	}

	transport := &kafkaGo.Transport{}
	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka publisher initialized")

	return &publisherImpl{
		transport: transport,
		brokers:   cfg.Kafka.Brokers,
		otel:      ot,
		writers:   map[string]*kafkaGo.Writer{},
	}
}

func (k *publisherImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if w, ok := k.writers[topic]; ok {
		return w
	}

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}
	k.writers[topic] = w

	return w
}

func (k *publisherImpl) Publish(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"topic": topic, "messages": len(messages)})

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer(topic).WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *publisherImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var firstErr error

	for topic, w := range k.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close writer for %s: %w", topic, err)
		}
	}

	k.writers = map[string]*kafkaGo.Writer{}

	return firstErr
}

type noopPublisher struct{}

func (n *noopPublisher) Publish(_ context.Context, _ string, _ ...Message) error {
	return nil
}

func (n *noopPublisher) Close() error {
	return nil
}
