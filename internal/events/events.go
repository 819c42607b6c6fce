// Package events описывает события пользовательской активности
// и их публикацию в очередь RabbitMQ. Публикация best-effort:
// недоступность брокера не должна ронять обработку запроса,
// вызывающая сторона лишь логирует ошибку.
package events

import (
	"time"

	"github.com/streadway/amqp"

	"github.com/plateful/plateful-backend/internal/lib/rabbitmq"
)

// Типы событий активности.
const (
	TypeVoteCast         = "vote.cast"
	TypeVoteRemoved      = "vote.removed"
	TypeRestaurantViewed = "restaurant.viewed"
)

// ActivityEvent событие активности пользователя вокруг ресторана.
type ActivityEvent struct {
	Type         string    `json:"type"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Vote         string    `json:"vote,omitempty"` // "up" или "down" для vote.cast
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher публикует события активности.
type Publisher interface {
	Publish(event ActivityEvent) error
}

// RabbitPublisher публикует события в очередь RabbitMQ.
type RabbitPublisher struct {
	ch    *amqp.Channel
	queue string
}

// NewRabbitPublisher создает публикатор поверх готового канала.
func NewRabbitPublisher(ch *amqp.Channel, queue string) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, queue: queue}
}

// Publish отправляет событие в очередь активности.
func (p *RabbitPublisher) Publish(event ActivityEvent) error {
	return rabbitmq.PublishMessage(p.ch, rabbitmq.ActivityExchange, p.queue, event)
}
