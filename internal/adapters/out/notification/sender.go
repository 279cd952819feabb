package notification

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"

	"github.com/google/uuid"
)

// LoggingSender delivers acknowledgments to the log. A disabled sender reports every
// acknowledgment as not sent.
type LoggingSender struct {
	enabled bool
	from    string
	logger  *slog.Logger
}

var _ ports.AcknowledgmentSender = (*LoggingSender)(nil)

func NewLoggingSender(enabled bool, from string, logger *slog.Logger) *LoggingSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingSender{
		enabled: enabled,
		from:    from,
		logger:  logger.With("component", "LoggingSender"),
	}
}

func (s *LoggingSender) SendAcknowledgment(ctx context.Context, ack order.OrderAcknowledgement) order.SendResult {
	if !s.enabled {
		s.logger.DebugContext(ctx, "acknowledgments disabled", "to", ack.EmailAddress.String())
		return order.NotSent
	}
	if ctx.Err() != nil {
		return order.NotSent
	}

	s.logger.InfoContext(ctx, "acknowledgment sent",
		"messageId", uuid.NewString(),
		"from", s.from,
		"to", ack.EmailAddress.String(),
		"letterBytes", len(ack.Letter),
	)
	return order.Sent
}
