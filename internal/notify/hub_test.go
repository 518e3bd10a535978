package notify

import (
	"sync"
	"testing"
	"time"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(id string) model.Notification {
	return model.Notification{ID: id, Level: model.LevelSuccess, Message: "ok " + id}
}

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := NewHub(10, logging.Nop{})
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelA()
	defer cancelB()

	hub.Notify(note("1"))

	for _, ch := range []<-chan model.Notification{a, b} {
		select {
		case n := <-ch:
			assert.Equal(t, "1", n.ID)
		case <-time.After(time.Second):
			t.Fatal("notification not delivered")
		}
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub(10, logging.Nop{})
	ch, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Zero(t, hub.Subscribers())
	hub.Notify(note("1"))
}

func TestHubNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub(10, logging.Nop{})
	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBufSize*3; i++ {
			hub.Notify(note("x"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a full subscriber")
	}
}

// blockingLogger parks LogWarning until release is closed.
type blockingLogger struct {
	logging.Nop
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (l *blockingLogger) LogWarning(string) {
	l.once.Do(func() { close(l.entered) })
	<-l.release
}

func TestHubDropWarningDoesNotHoldTheHub(t *testing.T) {
	logger := &blockingLogger{entered: make(chan struct{}), release: make(chan struct{})}
	hub := NewHub(10, logger)
	_, cancel := hub.Subscribe()
	defer cancel()
	for i := 0; i < subscriberBufSize; i++ {
		hub.Notify(note("fill"))
	}

	go hub.Notify(note("dropped"))
	select {
	case <-logger.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("drop warning was never logged")
	}

	done := make(chan []model.Notification, 1)
	go func() { done <- hub.Recent(1) }()
	select {
	case recent := <-done:
		require.Len(t, recent, 1)
		assert.Equal(t, "dropped", recent[0].ID)
	case <-time.After(time.Second):
		t.Fatal("Recent waited on the logger")
	}

	other, cancelOther := hub.Subscribe()
	defer cancelOther()
	assert.Equal(t, 2, hub.Subscribers())
	close(logger.release)
	hub.Notify(note("after"))
	assert.Equal(t, "after", (<-other).ID)
}

func TestHubRecentKeepsNewestFirst(t *testing.T) {
	hub := NewHub(3, nil)
	for _, id := range []string{"1", "2", "3", "4"} {
		hub.Notify(note(id))
	}

	recent := hub.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, []string{"4", "3", "2"}, []string{recent[0].ID, recent[1].ID, recent[2].ID})

	assert.Len(t, hub.Recent(2), 2)
}

func TestHubClose(t *testing.T) {
	hub := NewHub(3, nil)
	ch, cancel := hub.Subscribe()

	hub.Close()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := hub.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}
