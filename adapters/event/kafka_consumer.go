package event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/config"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type ProfileEventHandler func(ctx context.Context, evt profile.Event) error

func NewProfileEventsReader(cfg config.Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicProfileEvents,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
}

// MessageReader is the part of *kafka.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

const maxHandleAttempts = 3

var handleRetryBackoff = 500 * time.Millisecond

// ConsumeProfileEvents reads until ctx is done. Every message is committed
// once it has been handled: undecodable messages right away, failing ones
// after maxHandleAttempts tries. A message is left uncommitted only when ctx
// ends while its handler is being retried.
func ConsumeProfileEvents(ctx context.Context, r MessageReader, handle ProfileEventHandler, log logger.Logger) error {
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			log.Error("Failed to read message from Kafka", err)
			continue
		}

		l := log.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)), zap.Int64("offset", msg.Offset))

		var evt profile.Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			l.Error("Failed to unmarshal event, skipping", err)
			commitMessage(ctx, r, msg, l)
			continue
		}

		if err := handleWithRetry(ctx, evt, handle); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.Error("Giving up on event", err,
				zap.String("event_type", string(evt.EventType)), zap.Int("attempts", maxHandleAttempts))
		}
		commitMessage(ctx, r, msg, l)
	}
}

func handleWithRetry(ctx context.Context, evt profile.Event, handle ProfileEventHandler) error {
	var err error
	for attempt := 1; attempt <= maxHandleAttempts; attempt++ {
		if err = handle(ctx, evt); err == nil {
			return nil
		}
		if attempt == maxHandleAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * handleRetryBackoff):
		}
	}
	return err
}

func commitMessage(ctx context.Context, r MessageReader, msg kafka.Message, log logger.Logger) {
	if err := r.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
