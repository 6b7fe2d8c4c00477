package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/repositories"
	"vietqr-system/infrastructure/database_mgo"
	"vietqr-system/infrastructure/database_mgo/banks"
	"vietqr-system/infrastructure/database_mgo/scan_history"
	"vietqr-system/infrastructure/kafka"
	"vietqr-system/infrastructure/mqtt"
	"vietqr-system/infrastructure/rabbitmq"
	"vietqr-system/utils/configs"
	"vietqr-system/utils/gpooling"
	"vietqr-system/utils/helpers"
	"vietqr-system/utils/telegram"
	"vietqr-system/utils/vietqr"
)

// QRApplication - decode orchestration. Every repository except IScanHistory
// may be nil, the matching side effect is then skipped.
type QRApplication struct {
	Config *configs.Config
	Queue  *rabbitmq.RabbiMQ
	Logger *zap.Logger
	// Decoder is the initial decoder; LoadBanks replaces it under mu, read it
	// through CurrentDecoder once the application is running
	Decoder         *vietqr.Decoder
	mu              sync.RWMutex
	IPool           gpooling.IPool
	IScanHistory    repositories.IScanHistory
	IBankDirectory  repositories.IBankDirectory
	IEventPublisher repositories.IEventPublisher
	MQTT            repositories.IMqtt
	INotifier       repositories.INotifier
}

func NewQRApplication(ctx context.Context, config *configs.Config, logger *zap.Logger, pool gpooling.IPool) (*QRApplication, error) {
	db, err := database_mgo.NewMongoDBconnection(config.MongoURI)
	if err != nil {
		return nil, err
	}

	history := scan_history.NewScanHistoryCollection(db, config.MongoDB)
	if err := history.EnsureIndexes(ctx); err != nil {
		logger.With(zap.Error(err)).Warn("ensure_index_fail")
	}

	application := &QRApplication{
		Config:         config,
		Logger:         logger,
		Decoder:        NewDecoder(config, nil),
		IPool:          pool,
		IScanHistory:   history,
		IBankDirectory: banks.NewBankRepository(db, config.MongoDB),
		INotifier:      telegram.NewNotifier(config.Telegram.Token),
	}

	kafkaConnection, err := kafka.NewConnection(ctx, config.KafkaConfig.Zookeepers, config.KafkaConfig.Brokers)
	if err != nil {
		logger.With(zap.Error(err)).Warn(constants.SERVICE_KAFKA_ERROR + "disabled")
	} else {
		application.IEventPublisher = kafkaConnection
	}

	if config.MQTTUri.Uri != "" {
		client, err := mqtt.Connection(config.MQTTUri.Uri, config.MQTTUri.Username, config.MQTTUri.Password)
		if err != nil {
			logger.With(zap.Error(err)).Warn(constants.SERVICE_MQTT_ERROR + "disabled")
		} else {
			application.MQTT = mqtt.NewMQTTRepositoryImpl(client, logger)
		}
	}

	if err := application.LoadBanks(ctx); err != nil {
		logger.With(zap.Error(err)).Warn("load_banks_fail")
	}

	opts := rabbitmq.NewOptions().WithUri(config.QueueUri)
	queue, err := rabbitmq.NewRabbiMQ(*opts, logger, pool)
	if err != nil {
		return nil, err
	}
	application.Queue = queue

	application.RegisterConsumerTopic([]string{constants.TopicDecodeQR})

	return application, nil
}

// NewDecoder - decoder with the configured container tags and the given banks
func NewDecoder(config *configs.Config, banks vietqr.BankResolver) *vietqr.Decoder {
	var opts []vietqr.Option
	if config != nil && len(config.ContainerTags) > 0 {
		opts = append(opts, vietqr.WithContainerTags(config.ContainerTags...))
	}
	if banks != nil {
		opts = append(opts, vietqr.WithBanks(banks))
	}
	return vietqr.NewDecoder(opts...)
}

// LoadBanks - rebuilds the decoder with the banks from the directory on top
// of the built-in BIN table. The decoder keeps the built-in table on error.
func (us *QRApplication) LoadBanks(ctx context.Context) error {
	if us.IBankDirectory == nil {
		return nil
	}

	ctx, cancel := helpers.ContextWithTimeOut(ctx)
	defer cancel()

	list, err := us.IBankDirectory.FindActive(ctx)
	if err != nil {
		return fmt.Errorf("load banks: %w", err)
	}

	table := vietqr.NewBankTable(list...)
	decoder := NewDecoder(us.Config, table)

	us.mu.Lock()
	us.Decoder = decoder
	us.mu.Unlock()

	us.Logger.With(zap.Int("banks", table.Len())).Info("banks_loaded")
	return nil
}

// CurrentDecoder - safe to call while LoadBanks runs
func (us *QRApplication) CurrentDecoder() *vietqr.Decoder {
	us.mu.RLock()
	decoder := us.Decoder
	us.mu.RUnlock()

	if decoder == nil {
		return NewDecoder(us.Config, nil)
	}
	return decoder
}
