package scanlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// ScanTopic receives every scan entry for downstream consumers (SIEM,
// counterfeit analytics). The durable record is PostgreSQL; this stream is
// best-effort fan-out after the append.
const ScanTopic = "medicinna.scans"

// Publisher streams appended scan entries to Kafka.
type Publisher struct {
	client *kgo.Client
	logger *slog.Logger
}

// NewPublisher connects a Kafka producer for scan fan-out.
func NewPublisher(brokers []string, logger *slog.Logger) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(ScanTopic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, logger: logger}, nil
}

// Publish sends the entry asynchronously, keyed by batch code so scans of one
// batch stay ordered per partition. Errors are logged, never returned: the
// entry is already durable and a broker outage must not fail the verify call.
func (p *Publisher) Publish(ctx context.Context, entry Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal scan entry for kafka", "error", err, "entry_id", entry.ID)
		return
	}

	record := &kgo.Record{
		Key:   []byte(entry.BatchCode),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("publish scan entry to kafka",
				"error", err,
				"entry_id", entry.ID,
				"batch_code", entry.BatchCode,
			)
		}
	})
}

// Close flushes pending records and shuts the producer down.
func (p *Publisher) Close() {
	p.client.Close()
}
