package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/lysu/kazoo-go"
)

type Storage struct {
	sarama.SyncProducer
	Brokers []string
}

// NewConnection - brokers is a comma separated list; when empty the brokers
// registered in zookeeper are used instead.
func NewConnection(ctx context.Context, zkAddrs, brokers string) (storage *Storage, err error) {
	brokerList := splitAddrs(brokers)
	if len(brokerList) == 0 {
		brokerList, err = brokersFromZookeeper(zkAddrs)
		if err != nil {
			return nil, err
		}
	}

	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	conf.Producer.RequiredAcks = sarama.WaitForAll
	conf.Producer.Retry.Max = 3
	conf.Producer.Timeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(brokerList, conf)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return &Storage{
		SyncProducer: producer,
		Brokers:      brokerList,
	}, nil
}

func brokersFromZookeeper(zkAddrs string) ([]string, error) {
	servers := splitAddrs(zkAddrs)
	if len(servers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers and no zookeepers configured")
	}

	conf := kazoo.NewConfig()
	conf.Timeout = time.Minute

	kz, err := kazoo.NewKazoo(servers, conf)
	if err != nil {
		return nil, fmt.Errorf("zookeeper: %w", err)
	}
	defer kz.Close()

	brokerList, err := kz.BrokerList()
	if err != nil {
		return nil, fmt.Errorf("zookeeper broker list: %w", err)
	}
	if len(brokerList) == 0 {
		return nil, fmt.Errorf("zookeeper: no brokers registered")
	}
	return brokerList, nil
}

func splitAddrs(addrs string) []string {
	var out []string
	for _, a := range strings.Split(addrs, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Publish - sends value keyed by key so every scan of a payload lands on one partition
func (s *Storage) Publish(topic, key string, value []byte) error {
	_, _, err := s.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("kafka publish %s: %w", topic, err)
	}
	return nil
}
