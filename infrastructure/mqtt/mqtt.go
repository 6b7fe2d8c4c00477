package mqtt

import (
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

func Connection(uri, user, password string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().AddBroker(uri)
	opts.SetUsername(user)
	opts.SetPassword(password)
	opts.SetClientID(fmt.Sprintf("vietqr-%d", time.Now().UnixNano()))
	opts.SetAutoReconnect(true)

	clientMqtt := mqtt.NewClient(opts)

	if token := clientMqtt.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	return clientMqtt, nil
}

type repositoryImpl struct {
	client mqtt.Client
	*zap.Logger
}

func NewMQTTRepositoryImpl(client mqtt.Client, logger *zap.Logger) *repositoryImpl {
	return &repositoryImpl{client, logger}
}

// Topic - <prefix>/topic/<topic>/
func Topic(prefix, topic string) string {
	return prefix + "/topic/" + topic + "/"
}

func (r repositoryImpl) Publish(topic, message string, retain bool, prefix string) error {
	publish := r.client.Publish(Topic(prefix, topic), byte(1), retain, message)
	if !publish.WaitTimeout(5 * time.Second) {
		err := fmt.Errorf("mqtt publish %s: timeout", topic)
		r.Logger.With(zap.String("topic", topic)).Error("MQTT_PUBLISH")
		return err
	}
	if err := publish.Error(); err != nil {
		r.Logger.With(zap.Any("message", message)).
			With(zap.Any("topic", topic)).
			Error("MQTT_PUBLISH")
		return err
	}
	return nil
}
