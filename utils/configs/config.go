package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	ENV           string         `json:"env" mapstructure:"env"`
	MaxPoolSize   int            `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI      string         `json:"mongo_uri" mapstructure:"mongo_uri"`
	MongoDB       string         `json:"mongo_db" mapstructure:"mongo_db"`
	QueueUri      string         `json:"queue_uri" mapstructure:"queue_uri"`
	KafkaConfig   Kafka          `json:"kafka_config"  mapstructure:"kafka_config"`
	MQTTUri       MQTTUri        `json:"mqtt_uri" mapstructure:"mqtt_uri"`
	Telegram      TelegramConfig `json:"telegram" mapstructure:"telegram"`
	ContainerTags []string       `json:"container_tags" mapstructure:"container_tags"`
	VerifyCRC     bool           `json:"verify_crc" mapstructure:"verify_crc"`
}

type MQTTUri struct {
	Uri      string `json:"uri" mapstructure:"uri"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
}

type TelegramConfig struct {
	Token     string `json:"token" mapstructure:"token"`
	ChannelId int64  `json:"channel_id" mapstructure:"channel_id"`
}

type Kafka struct {
	Zookeepers   string `json:"zookeepers" mapstructure:"zookeepers"`
	Brokers      string `json:"brokers" mapstructure:"brokers"`
	TopicDecoded string `json:"topic_decoded" mapstructure:"topic_decoded"`
}

func LoadConfig() (*Config, error) {
	return load("./", "config.json")
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	return load(configPath, "config_test.json")
}

func load(path, name string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigType("json")
	v.SetConfigName(name)
	v.SetDefault("max_pool_size", 100)
	v.SetDefault("mongo_db", "vietqr")
	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = v.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
