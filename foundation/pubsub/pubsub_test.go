package pubsub_test

import (
	"sync"
	"testing"

	"github.com/studysense/goEmotionFusion/foundation/pubsub"
)

func TestBroker(t *testing.T) {
	t.Run("fanout to every subscriber", func(t *testing.T) {
		t.Parallel()

		b := pubsub.NewBroker()
		s1 := pubsub.NewSubscriber(1)
		s2 := pubsub.NewSubscriber(1)

		b.Subscribe("mergedUpdate", s1)
		b.Subscribe("mergedUpdate", s2)

		var wg sync.WaitGroup
		wg.Add(2)

		got := make([]any, 2)
		for i, sub := range []*pubsub.Subscriber{s1, s2} {
			go func(i int, sub *pubsub.Subscriber) {
				defer wg.Done()
				got[i] = <-sub.GetChannel()
			}(i, sub)
		}

		if err := b.Publish("mergedUpdate", "tired"); err != nil {
			t.Fatal(err)
		}
		wg.Wait()

		for i := range got {
			if got[i] != "tired" {
				t.Fatalf("subscriber %d: got %v, want %q", i, got[i], "tired")
			}
		}
	})

	t.Run("publish to unknown topic errors out", func(t *testing.T) {
		t.Parallel()

		b := pubsub.NewBroker()
		if err := b.Publish("nobodyListens", 1); err == nil {
			t.Fatal("expected unknown-topic error")
		}
	})

	t.Run("unsubscribe closes the channel", func(t *testing.T) {
		t.Parallel()

		b := pubsub.NewBroker()
		s := pubsub.NewSubscriber(0)
		b.Subscribe("mergedUpdate", s)

		if err := b.UnSubscribe("mergedUpdate", s); err != nil {
			t.Fatal(err)
		}
		if _, open := <-s.GetChannel(); open {
			t.Fatal("channel still open after unsubscribe")
		}
	})
}
