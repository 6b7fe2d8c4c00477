package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"vietqr-system/utils/gpooling"
)

type options struct {
	Uri        string
	AutoAck    bool
	AutoDelete bool
	Durable    bool
	Exclusive  bool
	NoWait     bool
}

func NewOptions() *options {
	return &options{Durable: true}
}

func (o *options) WithUri(uri string) *options {
	o.Uri = uri
	return o
}

func (o *options) WithAutoAck(ack bool) *options {
	o.AutoAck = ack
	return o
}

// ConsumerFunc - handler for one message body; the message is acked either way
type ConsumerFunc func(ctx context.Context, msg []byte) error

type RabbiMQ struct {
	Connection *amqp.Connection
	IPool      gpooling.IPool
	options
	*zap.Logger
}

func NewRabbiMQ(o options, log *zap.Logger, pool gpooling.IPool) (*RabbiMQ, error) {
	conn, err := amqp.Dial(o.Uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	return &RabbiMQ{
		IPool:      pool,
		Connection: conn,
		options:    o,
		Logger:     log,
	}, nil
}

// PublishToExchange - json encodes msg onto the topic exchange of the same name
func (r *RabbiMQ) PublishToExchange(msg interface{}, topic string) error {
	ch, err := r.Connection.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	sendData, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return ch.Publish(
		topic, // exchange
		topic, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        sendData,
		})
}

func (r *RabbiMQ) WithConsumerTopic(fn ConsumerFunc, topicName string) error {
	return r.IPool.Submit(func() {
		ch, err := r.Connection.Channel()
		if err != nil {
			r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Error("err_queue_channel")
			return
		}
		defer ch.Close()

		err = ch.ExchangeDeclare(
			topicName, // name
			"topic",
			r.Durable,    // durable
			r.AutoDelete, // delete when usused
			false,        // internal
			r.NoWait,     // no-wait
			nil,          // arguments
		)
		if err != nil {
			r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Error("err_queue_exchange")
			return
		}

		q, err := ch.QueueDeclare(
			topicName,    // name
			true,         // durable
			r.AutoDelete, // delete when usused
			r.Exclusive,  // exclusive
			r.NoWait,     // no-wait
			nil,          // arguments
		)
		if err != nil {
			r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Error("err_queue_declare")
			return
		}

		err = ch.QueueBind(
			q.Name,         // queue name
			topicName+".#", // routing key
			topicName,      // exchange
			false,
			nil,
		)
		if err != nil {
			r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Error("err_queue_bind")
			return
		}
		// publishes use the bare topic as routing key
		err = ch.QueueBind(q.Name, topicName, topicName, false, nil)
		if err != nil {
			r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Error("err_queue_bind")
			return
		}

		msgs, err := ch.Consume(
			q.Name,      // queue
			"",          // consumer
			r.AutoAck,   // auto-ack
			r.Exclusive, // exclusive
			false,       // no-local
			false,       // no-wait
			nil,         // args
		)
		if err != nil {
			r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Error("err_queue_consume")
			return
		}

		for d := range msgs {
			if err := fn(context.TODO(), d.Body); err != nil {
				r.Logger.With(zap.Error(err), zap.String("topic", topicName)).Warn("consume_message_fail")
			}
			if !r.AutoAck {
				_ = d.Ack(false)
			}
		}
	})
}

func (r *RabbiMQ) Close() error {
	return r.Connection.Close()
}
