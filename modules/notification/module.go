package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/tasklist-api/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
)

// DeliveryLog records one notification attempt.
type DeliveryLog struct {
	ID        string    `json:"id"`
	TaskID    uint      `json:"task_id"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule is the driven adapter that delivers completion notices
// to the chat service. It consumes the task-completed event, so handler
// logic never touches delivery, and delivery failures never reach the
// HTTP caller.
type NotificationModule struct {
	notifier   Notifier
	deliveries []DeliveryLog
	mu         sync.RWMutex
}

// Compile-time interface checks.
var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

// NewModule creates a new NotificationModule with the Slack notifier
// configured from the environment.
func NewModule() *NotificationModule {
	return &NotificationModule{
		notifier:   NewSlackNotifierFromEnv(),
		deliveries: make([]DeliveryLog, 0),
	}
}

// Name returns the module name.
func (m *NotificationModule) Name() string {
	return "notification"
}

// RegisterEventConsumers subscribes to task events.
func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCompleted")
	return nil
}

// handleTaskCompleted delivers the completion notice. Best-effort: a
// delivery failure is logged and recorded, never returned, so the event is
// not redelivered and the completion itself stands.
func (m *NotificationModule) handleTaskCompleted(ctx context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	text := fmt.Sprintf("Someone just completed the task %s", event.Title)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	err := m.notifier.Notify(ctx, text)
	if err != nil {
		log.Printf("[notification] Failed to deliver completion notice for task %d: %v", event.TaskID, err)
	}
	m.logDelivery(event.TaskID, text, err == nil)
	return nil
}

// logDelivery appends one attempt to the in-memory delivery log.
func (m *NotificationModule) logDelivery(taskID uint, message string, delivered bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deliveries = append(m.deliveries, DeliveryLog{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Message:   message,
		Delivered: delivered,
		Timestamp: time.Now(),
	})
}

// Deliveries returns a copy of the delivery log.
func (m *NotificationModule) Deliveries() []DeliveryLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]DeliveryLog, len(m.deliveries))
	copy(result, m.deliveries)
	return result
}

// Start logs module startup.
func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task events")
	return nil
}

// Stop logs module shutdown.
func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
