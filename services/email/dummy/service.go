package dummymail

import (
	"log"
	"sync"

	"github.com/masonbrown9/gradebook/core"
)

var (
	SentMessages = make([]core.EmailMessage, 0)
	mu           sync.Mutex
)

// service records sent messages instead of delivering them; the TEST backend.
type service struct{}

var _ core.EmailService = (*service)(nil)

func NewService() core.EmailService {
	return &service{}
}

func (svc service) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		// run synchronously
		if err := msg.Render(); err != nil {
			log.Fatal(err)
		}
		if msg.HasRecipients() && msg.HasContent() {
			mu.Lock()
			SentMessages = append(SentMessages, *msg)
			mu.Unlock()
		}
	}
}

// Reset clears the sent message log between tests.
func Reset() {
	mu.Lock()
	SentMessages = SentMessages[:0]
	mu.Unlock()
}
