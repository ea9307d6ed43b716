package messaging

import (
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ChangeTopic = string

const (
	ListingsUpsertedTopic ChangeTopic = "listings_upserted"
	ListingDeletedTopic   ChangeTopic = "listing_deleted"
	TrackingTopic         ChangeTopic = "tracking"
)

func getName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

// DefineTopic declares the exchange and queue for a topic so publishers
// and consumers can attach in any order.
func DefineTopic(ch *amqp.Channel, prefix string, topic ChangeTopic) error {
	name := getName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(
		name,  // name of the queue
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,   // arguments
	); err != nil {
		return err
	}
	return nil
}

// DeclareBindAndConsume attaches an exclusive queue to a topic exchange
// and starts consuming from it.
func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	if err = ch.QueueBind(q.Name, name, name, false, nil); err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// ListenToTopic consumes a topic on a background goroutine, acking each
// delivery the handler accepts.
func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, handler func(amqp.Delivery) error) error {
	deliveries, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func(msgs <-chan amqp.Delivery) {
		defer ch.Close()
		for d := range msgs {
			if err := handler(d); err != nil {
				log.Printf("Error processing message: %v", err)
				return
			}
			d.Ack(false)
		}
	}(deliveries)
	return nil
}

// SendChange publishes a payload on a topic as JSON.
func SendChange[V any](c *amqp.Connection, prefix string, topic ChangeTopic, data V) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := getName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        bytes,
		},
	)
}
