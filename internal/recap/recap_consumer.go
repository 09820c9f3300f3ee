package recap

import (
	"context"
	"encoding/json"

	"github.com/rizaltohir55/presensi-qr-project/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAttendanceEvents folds the attendance stream into the Redis
// daily counters. Malformed messages are committed and dropped; counter
// failures leave the message uncommitted for redelivery.
func ConsumeAttendanceEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	service Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recap")
	log.Info("attendance recap consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recap consumer stopped")
				return
			}
			log.Error("fetch attendance event failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := service.Apply(ctx, event); err != nil {
			log.Error("apply attendance event failed",
				zap.String("attendance_id", event.AttendanceID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance event failed", zap.Error(err))
			continue
		}

		log.Debug("attendance recap updated",
			zap.String("date", event.Date),
			zap.String("event_type", event.EventType),
			zap.String("status", event.Status),
		)
	}
}
