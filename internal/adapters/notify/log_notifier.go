package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
)

// LogNotifier はメール送信の代わりに通知内容をログへ出力します。
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier は LogNotifier を生成します。
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notifier")}
}

var _ timeoff.Notifier = (*LogNotifier)(nil)

// Notify は通知を info レベルで記録します。失敗しません。
func (n *LogNotifier) Notify(_ context.Context, notification timeoff.Notification) error {
	fields := []zap.Field{
		zap.String("kind", string(notification.Kind)),
		zap.String("recipient_id", notification.RecipientID),
	}
	if r := notification.Request; r != nil {
		fields = append(fields,
			zap.String("request_id", r.ID),
			zap.String("employee_name", r.EmployeeName),
			zap.String("status", string(r.Status)),
		)
	}

	n.logger.Info("email notification sent", fields...)
	return nil
}
