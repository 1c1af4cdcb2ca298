package orders

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/segmentio/kafka-go"
)

// Writer is the slice of kafka.Writer the outbox needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Outbox buffers completed orders in memory and publishes them on a tick.
// An order stays buffered until its write succeeds, so a broker outage
// delays delivery instead of dropping it.
type Outbox struct {
	timeout   time.Duration
	eventTick time.Duration
	writer    Writer

	mu      sync.Mutex
	pending []domain.OrderRecord
}

func NewOutbox(w Writer) *Outbox {
	return &Outbox{timeout: time.Second * 5, eventTick: time.Second, writer: w}
}

// NewKafkaWriter builds the writer the outbox publishes through in a
// brokered deployment.
func NewKafkaWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "storefront-orders",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// Enqueue accepts a completed order for publication. Never blocks.
func (o *Outbox) Enqueue(rec domain.OrderRecord) {
	o.mu.Lock()
	o.pending = append(o.pending, rec)
	o.mu.Unlock()
}

// Pending reports how many orders await publication.
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

func (o *Outbox) Run(ctx context.Context) {
	eventTicker := time.NewTicker(o.eventTick)
	defer eventTicker.Stop()
	for {
		select {
		case <-eventTicker.C:
			o.processPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (o *Outbox) processPending(ctx context.Context) {
	o.mu.Lock()
	batch := o.pending
	o.pending = nil
	o.mu.Unlock()

	for i, rec := range batch {
		if err := o.publish(ctx, rec); err != nil {
			log.Printf("failed to publish order %v: %v", rec.OrderID, err)
			// keep this one and everything after it for the next tick
			o.mu.Lock()
			o.pending = append(batch[i:], o.pending...)
			o.mu.Unlock()
			return
		}
	}
}

func (o *Outbox) publish(ctx context.Context, rec domain.OrderRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	wctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(rec.OrderID), // order_id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_completed")},
		},
	}
	return o.writer.WriteMessages(wctx, msg)
}

// LogWriter backs the outbox when no broker is configured. It renders
// each order as a purchase ticket on the service log, standing in for
// the confirmation mail.
type LogWriter struct{}

func (LogWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, msg := range msgs {
		var rec domain.OrderRecord
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			return err
		}
		log.Printf("order %v confirmation:\n%s", rec.OrderID, Ticket(rec))
	}
	return nil
}
