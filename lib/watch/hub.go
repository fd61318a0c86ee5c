package watch

import (
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Entity string

const (
	EntityDepartment Entity = "DEPARTMENT"
	EntityPosition   Entity = "POSITION"
	EntityLanguage   Entity = "LANGUAGE"
	EntityEmployee   Entity = "EMPLOYEE"
	EntityUser       Entity = "USER"
)

type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

// Event - уведомление об изменении записи.
// Публикуется провайдерами после успешной мутации,
// подписчики (живые списки, ws клиенты) получают его без опроса БД.
type Event struct {
	Entity Entity `json:"entity"`
	Action Action `json:"action"`
	ID     string `json:"id"`
}

type Provider interface {
	Subscribe() (id string, events <-chan Event)
	Unsubscribe(id string)
	Publish(event Event)
}

var Instance Provider

func Init() {
	Instance = &impl{
		subscribers: map[string]chan Event{},
	}
}

const subscriberBuffer = 16

type impl struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event //map[subscriptionID]
}

func (i *impl) Subscribe() (string, <-chan Event) {
	ch := make(chan Event, subscriberBuffer)
	id := uuid.NewString()
	i.mu.Lock()
	i.subscribers[id] = ch
	i.mu.Unlock()
	return id, ch
}

func (i *impl) Unsubscribe(id string) {
	i.mu.Lock()
	ch, ok := i.subscribers[id]
	if ok {
		delete(i.subscribers, id)
		close(ch)
	}
	i.mu.Unlock()
}

func (i *impl) Publish(event Event) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for id, ch := range i.subscribers {
		select {
		case ch <- event:
		default:
			// медленный подписчик, событие пропускается
			log.
				WithField("subscription_id", id).
				WithField("entity", event.Entity).
				Warn("подписчик не успевает обрабатывать события")
		}
	}
}
