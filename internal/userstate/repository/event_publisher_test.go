package repository

import (
	"encoding/json"
	"testing"

	"gamerflow_service/internal/userstate/domain"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRabbitRepo Mock RabbitRepo
type MockRabbitRepo struct {
	mock.Mock
}

// Publish mock publish
func (m *MockRabbitRepo) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(exchange, key, mandatory, immediate, msg).Error(0)
}

func TestRabbitEventPublisher_Publish(t *testing.T) {
	rabbit := new(MockRabbitRepo)
	event := domain.EngagementEvent{ProfileID: "p1", VideoID: "v1", Action: domain.ActionLike, Timestamp: 100}

	rabbit.On("Publish", "", domain.EngagementQueue, false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var got domain.EngagementEvent
		if err := json.Unmarshal(msg.Body, &got); err != nil {
			return false
		}
		return msg.ContentType == "application/json" && got == event
	})).Return(nil)

	assert.NoError(t, NewRabbitEventPublisher(rabbit, "").Publish(event))
	rabbit.AssertExpectations(t)
}
