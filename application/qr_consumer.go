package application

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/request_params"
)

func (us *QRApplication) RegisterConsumerTopic(topics []string) {
	for _, topic := range topics {
		switch topic {
		case constants.TopicDecodeQR:
			if err := us.Queue.WithConsumerTopic(us.ConsumerDecodeQR, topic); err != nil {
				us.Logger.With(zap.Error(err), zap.String("topic", topic)).Error("register_consumer_fail")
			}
		}
	}
}

// ConsumerDecodeQR - body is a json DecodeRequest
func (us *QRApplication) ConsumerDecodeQR(ctx context.Context, msg []byte) error {
	msgData := request_params.DecodeRequest{}

	err := json.Unmarshal(msg, &msgData)
	if err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if msgData.Source == "" {
		msgData.Source = constants.SourceQueue
	}

	us.Logger.With(zap.Reflect("value", msgData)).Info("msg_data")

	_, err = us.Decode(ctx, msgData)
	return err
}
