package sync

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hearthside/homefinder/pkg/index"
	"github.com/hearthside/homefinder/pkg/messaging"
	"github.com/hearthside/homefinder/pkg/types"
)

// RabbitConfig names the listing change-feed topics and the broker.
type RabbitConfig struct {
	ListingsUpsertedTopic messaging.ChangeTopic
	ListingDeletedTopic   messaging.ChangeTopic
	VHost                 string
	Url                   string
}

func (c *RabbitConfig) dial() (*amqp.Connection, error) {
	if c.VHost != "" {
		return amqp.DialConfig(c.Url, amqp.Config{Vhost: c.VHost})
	}
	return amqp.Dial(c.Url)
}

// RabbitListener keeps an Index fresh from the upstream change feed.
type RabbitListener struct {
	RabbitConfig
	connection *amqp.Connection
}

// Connect dials the broker and starts consuming both listing topics,
// applying every change to the index.
func (l *RabbitListener) Connect(idx *index.Index) error {
	conn, err := l.dial()
	if err != nil {
		return err
	}
	l.connection = conn

	upsertCh, err := conn.Channel()
	if err != nil {
		return err
	}
	err = messaging.ListenToTopic(upsertCh, "homefinder", l.ListingsUpsertedTopic, func(d amqp.Delivery) error {
		var records []types.ListingRecord
		if err := json.Unmarshal(d.Body, &records); err != nil {
			log.Printf("failed to decode upserted listings: %v", err)
			return nil
		}
		changes := make([]index.Change, len(records))
		for i, record := range records {
			changes[i] = index.Change{Record: record}
		}
		idx.Apply(changes...)
		return nil
	})
	if err != nil {
		return err
	}

	deleteCh, err := conn.Channel()
	if err != nil {
		return err
	}
	return messaging.ListenToTopic(deleteCh, "homefinder", l.ListingDeletedTopic, func(d amqp.Delivery) error {
		var id types.ListingID
		if err := json.Unmarshal(d.Body, &id); err != nil {
			log.Printf("failed to decode deleted listing id: %v", err)
			return nil
		}
		idx.Apply(index.Change{Record: types.ListingRecord{ID: id}, Deleted: true})
		return nil
	})
}

func (l *RabbitListener) Close() error {
	if l.connection == nil {
		return nil
	}
	return l.connection.Close()
}

// RabbitPublisher announces listing changes, used by whatever process owns
// the upstream ingest.
type RabbitPublisher struct {
	RabbitConfig
	connection *amqp.Connection
}

func (p *RabbitPublisher) Connect() error {
	conn, err := p.dial()
	if err != nil {
		return err
	}
	p.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, "homefinder", p.ListingsUpsertedTopic); err != nil {
		return err
	}
	return messaging.DefineTopic(ch, "homefinder", p.ListingDeletedTopic)
}

func (p *RabbitPublisher) SendUpserted(records []types.ListingRecord) error {
	return messaging.SendChange(p.connection, "homefinder", p.ListingsUpsertedTopic, records)
}

func (p *RabbitPublisher) SendDeleted(id types.ListingID) error {
	return messaging.SendChange(p.connection, "homefinder", p.ListingDeletedTopic, id)
}

func (p *RabbitPublisher) Close() error {
	if p.connection == nil {
		return nil
	}
	return p.connection.Close()
}
