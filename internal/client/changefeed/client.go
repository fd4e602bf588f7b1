package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/model"
)

// Filter narrows a subscription to rows whose column equals a value, the
// column-equality predicate of the store's push interface.
type Filter struct {
	Column string
	Equals string
}

// InsertHandler receives one insert event: the source table and the full-row
// JSON payload.
type InsertHandler func(event model.FeedEvent)

// Client consumes the hosted store's row-level change feed. The store emits
// one NOTIFY per insert on the "<table>_inserts" channel with the full row
// as JSON payload; events arrive in emit order per channel.
type Client struct {
	listener *pq.Listener
	logger   logger_lib.LoggerInterface

	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription

	queue chan *pq.Notification
}

type Subscription struct {
	client  *Client
	channel string
	id      uint64
	filter  *Filter
	handler InsertHandler

	closeOnce sync.Once
}

func New(cfg *config.Config, logger logger_lib.LoggerInterface) *Client {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	client := &Client{
		logger: logger,
		subs:   make(map[string]map[uint64]*Subscription),
		queue:  make(chan *pq.Notification, cfg.Feed.QueueSize),
	}

	client.listener = pq.NewListener(conStr, cfg.Feed.MinReconnect, cfg.Feed.MaxReconnect,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logger.Error(fmt.Sprintf("feed listener event %d: %v", event, err))
			}
		})

	return client
}

func (c *Client) Close() {
	_ = c.listener.Close()
}

// Subscribe registers onInsert for every insert on table matching filter.
// A nil filter receives all inserts on the table.
func (c *Client) Subscribe(table string, filter *Filter, onInsert InsertHandler) (*Subscription, error) {
	channel := table + "_inserts"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.subs[channel]; !ok {
		if err := c.listener.Listen(channel); err != nil {
			return nil, fmt.Errorf("failed to listen on %s: %w", channel, err)
		}
		c.subs[channel] = make(map[uint64]*Subscription)
	}

	c.nextID++
	sub := &Subscription{
		client:  c,
		channel: channel,
		id:      c.nextID,
		filter:  filter,
		handler: onInsert,
	}
	c.subs[channel][sub.id] = sub

	return sub, nil
}

// Unsubscribe detaches the handler; calling it again is a no-op.
func (s *Subscription) Unsubscribe() {
	s.closeOnce.Do(func() {
		s.client.remove(s)
	})
}

func (c *Client) remove(sub *Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	handlers, ok := c.subs[sub.channel]
	if !ok {
		return
	}
	delete(handlers, sub.id)

	if len(handlers) == 0 {
		delete(c.subs, sub.channel)
		if err := c.listener.Unlisten(sub.channel); err != nil {
			c.logger.Error(fmt.Sprintf("failed to unlisten %s: %v", sub.channel, err))
		}
	}
}

// Run pumps notifications into the bounded queue and dispatches them to
// subscribers in arrival order. It returns when ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case notification := <-c.listener.Notify:
				if notification == nil {
					// Reconnect marker; events in the gap may be lost.
					c.logger.Info("feed listener reconnected")
					continue
				}
				select {
				case c.queue <- notification:
				default:
					c.logger.Error(fmt.Sprintf("feed queue full, dropping event on %s", notification.Channel))
				}
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notification := <-c.queue:
			c.dispatch(notification)
		}
	}
}

func (c *Client) dispatch(notification *pq.Notification) {
	event := model.FeedEvent{
		Table: strings.TrimSuffix(notification.Channel, "_inserts"),
		Row:   json.RawMessage(notification.Extra),
	}

	c.mu.Lock()
	matched := make([]*Subscription, 0, 4)
	for _, sub := range c.subs[notification.Channel] {
		if sub.filter == nil || matchesFilter(event.Row, sub.filter) {
			matched = append(matched, sub)
		}
	}
	c.mu.Unlock()

	for _, sub := range matched {
		sub.handler(event)
	}
}

func matchesFilter(row json.RawMessage, filter *Filter) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return false
	}

	raw, ok := fields[filter.Column]
	if !ok {
		return false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	return value == filter.Equals
}
