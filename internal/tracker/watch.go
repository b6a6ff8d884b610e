package tracker

import (
	"context"

	"finance-tracker/internal/models"
)

// Watch subscribes to the filtered transaction list. The current list is
// delivered immediately, then a fresh list after every acknowledged mutation
// or filter change. Channels are conflated: a slow consumer only ever sees
// the latest list, intermediate states may be skipped. The subscription ends
// when ctx is cancelled and the channel is closed.
func (t *Tracker) Watch(ctx context.Context) <-chan []models.Transaction {
	ch := make(chan []models.Transaction, 1)

	t.subMu.Lock()
	id := t.nextSubID
	t.nextSubID++
	t.subscribers[id] = ch
	t.subMu.Unlock()

	if list, err := t.FilteredTransactions(); err == nil {
		select {
		case ch <- list:
		default:
		}
	}

	go func() {
		<-ctx.Done()
		t.subMu.Lock()
		delete(t.subscribers, id)
		t.subMu.Unlock()
		close(ch)
	}()

	return ch
}

// publish re-derives the filtered list and pushes it to every subscriber.
// Derivation failures are logged and swallowed here; subscribers simply keep
// their previous snapshot.
func (t *Tracker) publish() {
	t.subMu.Lock()
	hasSubscribers := len(t.subscribers) > 0
	t.subMu.Unlock()
	if !hasSubscribers {
		return
	}

	list, err := t.FilteredTransactions()
	if err != nil {
		t.log.WithError(err).Error("failed to derive filtered transactions")
		return
	}

	t.subMu.Lock()
	defer t.subMu.Unlock()
	for _, ch := range t.subscribers {
		select {
		case ch <- list:
		default:
			// Drop the stale snapshot, keep only the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- list:
			default:
			}
		}
	}
}
