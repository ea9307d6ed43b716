package tracking

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hearthside/homefinder/pkg/messaging"
	"github.com/hearthside/homefinder/pkg/types"
)

const topicPrefix = "homefinder"

type baseEvent struct {
	EventID   string `json:"eventId"`
	SessionID uint32 `json:"sessionId"`
	Event     string `json:"event"`
	Timestamp int64  `json:"ts"`
}

type sessionEvent struct {
	baseEvent
	UserAgent string `json:"userAgent,omitempty"`
	Language  string `json:"language,omitempty"`
	Referer   string `json:"referer,omitempty"`
}

type browseEvent struct {
	baseEvent
	Kind    types.Kind `json:"kind"`
	Query   string     `json:"query,omitempty"`
	Results int        `json:"results"`
}

// RabbitTracking publishes tracking events to an AMQP topic. Publishing
// failures are logged and dropped, never surfaced to the request path.
type RabbitTracking struct {
	connection *amqp.Connection
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, topicPrefix, messaging.TrackingTopic); err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitTracking{connection: conn}, nil
}

func makeBaseEvent(sessionID uint32, event string) baseEvent {
	return baseEvent{
		EventID:   uuid.New().String(),
		SessionID: sessionID,
		Event:     event,
		Timestamp: time.Now().UnixMilli(),
	}
}

func (t *RabbitTracking) send(data any) {
	if err := messaging.SendChange(t.connection, topicPrefix, messaging.TrackingTopic, data); err != nil {
		log.Printf("failed to publish tracking event: %v", err)
	}
}

func (t *RabbitTracking) TrackSession(sessionID uint32, r *http.Request) {
	t.send(sessionEvent{
		baseEvent: makeBaseEvent(sessionID, "session"),
		UserAgent: r.UserAgent(),
		Language:  r.Header.Get("Accept-Language"),
		Referer:   r.Referer(),
	})
}

func (t *RabbitTracking) TrackBrowse(sessionID uint32, kind types.Kind, query string, results int) {
	t.send(browseEvent{
		baseEvent: makeBaseEvent(sessionID, "browse"),
		Kind:      kind,
		Query:     query,
		Results:   results,
	})
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}
