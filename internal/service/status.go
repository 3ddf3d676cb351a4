package service

import (
	"sync"

	"github.com/MKhiriev/favsync/models"
)

const statusEventBufferSize = 16

// StatusPublisher holds the current sync status and broadcasts every
// transition to subscribers.
type StatusPublisher struct {
	mu      sync.RWMutex
	current models.SyncStatus

	subs  []chan models.SyncStatus
	subMu sync.Mutex
}

func NewStatusPublisher() *StatusPublisher {
	return &StatusPublisher{current: models.StatusIdle()}
}

// Current returns the latest published status.
func (p *StatusPublisher) Current() models.SyncStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.current
}

// Subscribe returns a channel primed with the current status. Every status
// published after the priming value is delivered to the channel.
func (p *StatusPublisher) Subscribe() <-chan models.SyncStatus {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	ch := make(chan models.SyncStatus, statusEventBufferSize)
	ch <- p.Current()
	p.subs = append(p.subs, ch)
	return ch
}

// Unsubscribe removes a subscription channel and closes it.
func (p *StatusPublisher) Unsubscribe(ch <-chan models.SyncStatus) {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	for i, sub := range p.subs {
		if sub == ch {
			close(sub)
			p.subs = append(p.subs[:i], p.subs[i+1:]...)
			break
		}
	}
}

// publish, tryBegin and Subscribe hold subMu while current changes or is
// read, so a new subscriber never misses a transition.
func (p *StatusPublisher) publish(status models.SyncStatus) {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	p.setCurrent(status)
	p.broadcast(status)
}

// tryBegin moves the status to Initializing if no run is active.
func (p *StatusPublisher) tryBegin() bool {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	p.mu.Lock()
	if p.current.IsRunning() {
		p.mu.Unlock()
		return false
	}
	p.current = models.StatusInitializing()
	p.mu.Unlock()

	p.broadcast(models.StatusInitializing())
	return true
}

func (p *StatusPublisher) setCurrent(status models.SyncStatus) {
	p.mu.Lock()
	p.current = status
	p.mu.Unlock()
}

// broadcast never blocks. A full channel drops its oldest pending status so
// that the newest one is always delivered. Callers hold subMu.
func (p *StatusPublisher) broadcast(status models.SyncStatus) {
	for _, sub := range p.subs {
		select {
		case sub <- status:
			continue
		default:
		}
		select {
		case <-sub:
		default:
		}
		select {
		case sub <- status:
		default:
		}
	}
}
