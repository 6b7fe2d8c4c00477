package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
)

func TestSplitAddrs(t *testing.T) {
	tests := []struct {
		name  string
		addrs string
		want  []string
	}{
		{name: "empty", addrs: "", want: nil},
		{name: "single", addrs: "localhost:9092", want: []string{"localhost:9092"}},
		{name: "spaces and blanks", addrs: " a:1 ,, b:2 ", want: []string{"a:1", "b:2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAddrs(tt.addrs))
		})
	}
}

func TestNewConnection_NothingConfigured(t *testing.T) {
	_, err := NewConnection(context.TODO(), "", "")
	assert.Error(t, err)
}

func TestStorage_Publish(t *testing.T) {
	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, conf)
	defer producer.Close()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		assert.Equal(t, `{"scan_id":"1"}`, string(val))
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	storage := &Storage{SyncProducer: producer}
	assert.NoError(t, storage.Publish("vietqr-decoded", "hash", []byte(`{"scan_id":"1"}`)))
	assert.Error(t, storage.Publish("vietqr-decoded", "hash", []byte(`{}`)))
}
