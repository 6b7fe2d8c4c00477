package application

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/entities"
	"vietqr-system/domain/value_objects"
	"vietqr-system/utils/telegram"
	"vietqr-system/utils/vietqr"
)

func decodedEvent(record *entities.ScanRecord) value_objects.DecodedQREvent {
	return value_objects.DecodedQREvent{
		ScanID:    record.ScanID,
		Source:    record.Source,
		ClientID:  record.ClientID,
		CRCStatus: record.CRCStatus,
		Info:      record.Info,
		View:      vietqr.Describe(record.Info),
		CreatedAt: record.CreatedAt,
	}
}

// publishDecoded - vietqr-decoded event keyed by payload hash
func (us *QRApplication) publishDecoded(record *entities.ScanRecord) {
	if us.IEventPublisher == nil {
		return
	}
	value, err := json.Marshal(decodedEvent(record))
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_KAFKA_ERROR + "marshal")
		return
	}

	topic := constants.TopicDecodedQR
	if us.Config != nil && us.Config.KafkaConfig.TopicDecoded != "" {
		topic = us.Config.KafkaConfig.TopicDecoded
	}
	if err := us.IEventPublisher.Publish(topic, record.PayloadHash, value); err != nil {
		us.Logger.With(zap.Error(err), zap.String("scan_id", record.ScanID)).Error(constants.SERVICE_KAFKA_ERROR + "publish")
	}
}

func (us *QRApplication) CreateMessageMqtt(ctx context.Context, topic, event, key string,
	data interface{}, retain bool) error {
	message := new(constants.Message)

	message.Event = event
	message.Key = key
	message.MessageData = data

	prefix := ""
	if us.Config != nil {
		prefix = us.Config.MQTTUri.Prefix
	}
	jsonSend, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return us.MQTT.Publish(topic, string(jsonSend), retain, prefix)
}

// pushDecoded - sends the decoded view back to the client that asked for it
func (us *QRApplication) pushDecoded(ctx context.Context, record *entities.ScanRecord) {
	if us.MQTT == nil || record.ClientID == "" {
		return
	}

	key := constants.MQTTDecodeSuccess
	if record.CRCStatus.IsInvalid() {
		key = constants.MQTTCRCMismatch
	}
	err := us.CreateMessageMqtt(ctx, record.ClientID, constants.MQTTEventBackground, key, decodedEvent(record), false)
	if err != nil {
		us.Logger.With(zap.Error(err), zap.String("client_id", record.ClientID)).Error(constants.SERVICE_MQTT_ERROR + "publish")
	}
}

// alertCRCMismatch - ops alert on the telegram QR channel
func (us *QRApplication) alertCRCMismatch(record *entities.ScanRecord) {
	if us.INotifier == nil || us.Config == nil || us.Config.Telegram.ChannelId == 0 {
		return
	}
	err := us.INotifier.SendTelegram(telegram.CRCMismatchMessage(*record), us.Config.Telegram.ChannelId)
	if err != nil {
		us.Logger.With(zap.Error(err), zap.String("scan_id", record.ScanID)).Error(constants.SERVICE_TELEGRAM_ERROR + "send")
	}
}
