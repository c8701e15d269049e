package repository

import (
	"encoding/json"

	"gamerflow_service/internal/userstate/domain"
	"gamerflow_service/pkg/database"

	"github.com/streadway/amqp"
)

// EventPublisher engagement 事件發布
type EventPublisher interface {
	Publish(event domain.EngagementEvent) error
}

type rabbitEventPublisher struct {
	rabbit database.RabbitRepo
	queue  string
}

// NewRabbitEventPublisher publish to queue via default exchange
func NewRabbitEventPublisher(rabbit database.RabbitRepo, queue string) EventPublisher {
	if queue == "" {
		queue = domain.EngagementQueue
	}
	return &rabbitEventPublisher{rabbit: rabbit, queue: queue}
}

func (p *rabbitEventPublisher) Publish(event domain.EngagementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rabbit.Publish(
		"",      // 預設 exchange
		p.queue, // routing key = queue 名稱
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	)
}

type noopEventPublisher struct{}

// NewNoopEventPublisher 沒有 broker 時使用
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(domain.EngagementEvent) error { return nil }
