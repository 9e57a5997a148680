package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher は AMQP へのメッセージ送出です。*amqp.Channel が満たします。
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// QueueDeclarer はキュー宣言です。*amqp.Channel が満たします。
type QueueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// DeclareQueue は通知用の永続キューを宣言します。
func DeclareQueue(ch QueueDeclarer, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("amqp: declare queue %s: %w", queue, err)
	}
	return nil
}

// AMQPNotifier は通知を JSON としてデフォルトエクスチェンジ経由でキューへ送出します。
// メール送信などの後段処理はキューの購読側が担います。
type AMQPNotifier struct {
	publisher Publisher
	queue     string
	timeout   time.Duration
	now       func() time.Time
}

// NewAMQPNotifier は AMQPNotifier を生成します。
func NewAMQPNotifier(publisher Publisher, queue string, timeout time.Duration) *AMQPNotifier {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &AMQPNotifier{
		publisher: publisher,
		queue:     queue,
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ timeoff.Notifier = (*AMQPNotifier)(nil)

// Message はキューへ送出する通知の形式です。
type Message struct {
	Kind        string         `json:"kind"`
	RecipientID string         `json:"recipientId"`
	Request     MessageRequest `json:"request"`
}

// MessageRequest は通知に含める申請の内容です。
type MessageRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	ManagerID    string `json:"managerId"`
	UpdatedAt    string `json:"updatedAt"`
}

// Notify は通知を送出します。
func (n *AMQPNotifier) Notify(ctx context.Context, notification timeoff.Notification) error {
	if notification.Request == nil {
		return errors.New("amqp: notification without request")
	}

	body, err := json.Marshal(newMessage(notification))
	if err != nil {
		return fmt.Errorf("amqp: encode notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.publisher.PublishWithContext(
		ctx,
		"",
		n.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    n.now(),
			Type:         string(notification.Kind),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("amqp: publish to %s: %w", n.queue, err)
	}
	return nil
}

func newMessage(notification timeoff.Notification) Message {
	r := notification.Request
	return Message{
		Kind:        string(notification.Kind),
		RecipientID: notification.RecipientID,
		Request: MessageRequest{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			StartDate:    timeoff.FormatDate(r.StartDate),
			EndDate:      timeoff.FormatDate(r.EndDate),
			Reason:       r.Reason,
			Status:       string(r.Status),
			ManagerID:    r.ManagerID,
			UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339Nano),
		},
	}
}
