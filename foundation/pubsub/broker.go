// Package pubsub is a small in-process topic broker used to fan merged
// emotion updates out to the sink operations.
package pubsub

import (
	"fmt"
	"sync"
	"time"
)

// publishPatience bounds how long Publish waits for a topic to gain its
// first subscriber before giving up. Worker operations subscribe during
// startup, so a publish can race slightly ahead of them.
const publishPatience = 3 * time.Second

type Broker struct {
	topics map[string][]*Subscriber
	sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		topics: make(map[string][]*Subscriber),
	}
}

func (b *Broker) Publish(topic string, data any) error {
	deadline := time.NewTimer(publishPatience)
	defer deadline.Stop()

	for {
		b.RLock()
		subs, exists := b.topics[topic]
		b.RUnlock()

		if exists {
			for _, sub := range subs {
				sub.Signal(data)
			}
			return nil
		}

		select {
		case <-deadline.C:
			return fmt.Errorf("topic[%s] does not exist", topic)
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (b *Broker) Subscribe(topic string, s *Subscriber) {
	b.Lock()
	defer b.Unlock()
	{
		b.topics[topic] = append(b.topics[topic], s)
	}
}

func (b *Broker) UnSubscribe(topic string, s *Subscriber) error {
	b.Lock()
	defer b.Unlock()
	{
		subs, exists := b.topics[topic]
		if !exists {
			return fmt.Errorf("topic[%s] does not exist", topic)
		}

		b.topics[topic] = removeFromSlice(subs, s)
		s.CloseChannel()
	}

	return nil
}

func removeFromSlice[T comparable](s []T, d T) []T {
	for i := range s {
		if s[i] == d {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}
