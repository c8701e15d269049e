package database

import (
	"fmt"
	"time"

	"gamerflow_service/pkg/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// RabbitRepo definition rabbit repo
type RabbitRepo interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitRepo struct {
	channel *amqp.Channel
}

// NewRabbitRepository create a RabbitRepository
func NewRabbitRepository(ch *amqp.Channel) RabbitRepo {
	return &rabbitRepo{channel: ch}
}

// ConnectRabbitMQWithRetry 連線 RabbitMQ, 失敗時依 RetryInterval 重試
func ConnectRabbitMQWithRetry(d Connection) (*amqp.Connection, error) {
	var (
		conn *amqp.Connection
		err  error
	)

	for attempt := 1; attempt <= d.RetryCount; attempt++ {
		conn, err = amqp.Dial(d.ConnectStr)
		if err == nil {
			logger.Log.Info("RabbitMQ connected", zap.Int("attempt", attempt))
			return conn, nil
		}

		logger.Log.Warn("RabbitMQ connect failed", zap.Int("attempt", attempt), zap.Int("max", d.RetryCount), zap.Error(err))
		time.Sleep(d.RetryInterval * time.Second)
	}

	return nil, fmt.Errorf("connect RabbitMQ failed after %d attempts: %w", d.RetryCount, err)
}

// GetRabbitMQChannelWithRetry 使用已有的連線取得 Channel
func GetRabbitMQChannelWithRetry(conn *amqp.Connection, maxRetries int, baseDelay time.Duration) (*amqp.Channel, error) {
	var (
		ch  *amqp.Channel
		err error
	)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		ch, err = conn.Channel()
		if err == nil {
			return ch, nil
		}

		logger.Log.Warn("RabbitMQ channel failed", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(baseDelay * time.Second)
	}

	return nil, fmt.Errorf("open RabbitMQ channel failed after %d attempts: %w", maxRetries, err)
}

// DeclareQueue declare durable queue
func DeclareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}

func (r *rabbitRepo) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return r.channel.Publish(exchange, key, mandatory, immediate, msg)
}
