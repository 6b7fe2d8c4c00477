package repositories

import (
	"context"

	"vietqr-system/domain/entities"
)

type IScanHistory interface {
	Insert(ctx context.Context, record *entities.ScanRecord) error
	// FindRecent - newest first; an empty clientID matches every client
	FindRecent(ctx context.Context, clientID string, limit int64) ([]*entities.ScanRecord, error)
}

type IBankDirectory interface {
	FindActive(ctx context.Context) ([]entities.Bank, error)
}

type IEventPublisher interface {
	Publish(topic, key string, value []byte) error
}

type IMqtt interface {
	Publish(topic, message string, retain bool, prefix string) error
}

type INotifier interface {
	SendTelegram(message string, channelId int64) error
}
