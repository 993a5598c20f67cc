package notifier

import (
	"context"
	"encoding/json"

	kafkabroker "github.com/Egor213/LogStream/internal/broker/kafka"
	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
)

// KafkaNotifier publishes alert notifications to a kafka topic keyed by
// tenant id.
type KafkaNotifier struct {
	producer *kafkabroker.Producer
}

func NewKafkaNotifier(producer *kafkabroker.Producer) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (n *KafkaNotifier) Send(ctx context.Context, notification AlertNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return n.producer.SendMessage(ctx, []byte(notification.TenantID), payload)
}
