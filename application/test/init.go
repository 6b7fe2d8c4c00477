package test

import (
	"vietqr-system/application"
	"vietqr-system/domain/repositories/mocks"
	"vietqr-system/utils/configs"
	"vietqr-system/utils/gpooling"
	logger2 "vietqr-system/utils/logger"
)

type MockService struct {
	QRApplication  *application.QRApplication
	ScanHistory    *mocks.IScanHistory
	BankDirectory  *mocks.IBankDirectory
	EventPublisher *mocks.IEventPublisher
	Mqtt           *mocks.IMqtt
	Notifier       *mocks.INotifier
	Pool           *gpooling.Pool
}

func NewTestQRApplication() *MockService {
	config, err := configs.LoadTestConfig("../../")
	if err != nil {
		panic(err)
	}

	logger, err := logger2.NewLogger(config.ENV)
	if err != nil {
		panic(err)
	}

	pool, err := gpooling.NewPooling(config.MaxPoolSize)
	if err != nil {
		panic(err)
	}

	history := &mocks.IScanHistory{}
	bankDirectory := &mocks.IBankDirectory{}
	publisher := &mocks.IEventPublisher{}
	mqttMock := &mocks.IMqtt{}
	notifier := &mocks.INotifier{}

	return &MockService{
		QRApplication: &application.QRApplication{
			Config:          config,
			Logger:          logger,
			Decoder:         application.NewDecoder(config, nil),
			IPool:           pool,
			IScanHistory:    history,
			IBankDirectory:  bankDirectory,
			IEventPublisher: publisher,
			MQTT:            mqttMock,
			INotifier:       notifier,
		},
		ScanHistory:    history,
		BankDirectory:  bankDirectory,
		EventPublisher: publisher,
		Mqtt:           mqttMock,
		Notifier:       notifier,
		Pool:           pool,
	}
}
