package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	t.Run(`подписчик получает опубликованные события`, func(t *testing.T) {
		Init()
		id, events := Instance.Subscribe()
		defer Instance.Unsubscribe(id)

		event := Event{Entity: EntityEmployee, Action: ActionCreated, ID: "rec-1"}
		Instance.Publish(event)

		select {
		case received := <-events:
			require.Equal(t, event, received)
		case <-time.After(time.Second):
			t.Fatal("событие не получено")
		}
	})

	t.Run(`после отписки канал закрывается`, func(t *testing.T) {
		Init()
		id, events := Instance.Subscribe()
		Instance.Unsubscribe(id)

		_, ok := <-events
		require.False(t, ok)
	})

	t.Run(`медленный подписчик не блокирует публикацию`, func(t *testing.T) {
		Init()
		id, _ := Instance.Subscribe()
		defer Instance.Unsubscribe(id)

		// буфер переполняется, Publish не должен зависнуть
		for idx := 0; idx < subscriberBuffer*2; idx++ {
			Instance.Publish(Event{Entity: EntityDepartment, Action: ActionUpdated, ID: "rec"})
		}
	})

	t.Run(`события получают все подписчики`, func(t *testing.T) {
		Init()
		firstID, first := Instance.Subscribe()
		secondID, second := Instance.Subscribe()
		defer Instance.Unsubscribe(firstID)
		defer Instance.Unsubscribe(secondID)

		Instance.Publish(Event{Entity: EntityLanguage, Action: ActionDeleted, ID: "rec-2"})

		for _, events := range []<-chan Event{first, second} {
			select {
			case received := <-events:
				require.Equal(t, "rec-2", received.ID)
			case <-time.After(time.Second):
				t.Fatal("событие не получено")
			}
		}
	})
}
