package timeoff

import "context"

// NotificationKind は通知の種別です。
type NotificationKind string

const (
	// NotificationSubmitted は申請提出時に承認者へ送られます。
	NotificationSubmitted NotificationKind = "request_submitted"
	// NotificationDecided は承認・却下時に申請者へ送られます。
	NotificationDecided NotificationKind = "request_decided"
)

// Notification は申請に関する通知イベントです。
type Notification struct {
	Kind        NotificationKind
	RecipientID string
	Request     *Request
}

// Notifier は通知イベントの送出先です。
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Notification) error {
	return nil
}
