package realtime

import "sync"

// Subscription is a live listener on one path. Close unregisters it and
// stops deliveries; it is safe to call more than once.
type Subscription struct {
	path     Path
	onChange func(Snapshot)

	ch        chan Snapshot
	done      chan struct{}
	closeOnce sync.Once
	release   func(*Subscription)
}

// Close unregisters the subscription. No deliveries happen after Close
// returns other than one already in flight.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		s.release(s)
		close(s.done)
	})
	return nil
}

// deliver queues a snapshot without ever blocking the broadcaster. If the
// consumer has not drained the previous snapshot it is replaced: snapshots
// are full children sets, so the latest one subsumes anything skipped.
func (s *Subscription) deliver(snap Snapshot) {
	for {
		select {
		case s.ch <- snap:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// run invokes onChange for queued snapshots in order until Close.
func (s *Subscription) run() {
	for {
		select {
		case snap := <-s.ch:
			s.onChange(snap)
		case <-s.done:
			return
		}
	}
}

// notifier fans full-snapshot change notifications out to the
// subscriptions registered on each path.
type notifier struct {
	mu   sync.RWMutex
	subs map[Path]map[*Subscription]struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[Path]map[*Subscription]struct{})}
}

func (n *notifier) register(sub *Subscription) {
	n.mu.Lock()
	set, ok := n.subs[sub.path]
	if !ok {
		set = make(map[*Subscription]struct{})
		n.subs[sub.path] = set
	}
	set[sub] = struct{}{}
	n.mu.Unlock()
}

func (n *notifier) unregister(sub *Subscription) {
	n.mu.Lock()
	if set, ok := n.subs[sub.path]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(n.subs, sub.path)
		}
	}
	n.mu.Unlock()
}

func (n *notifier) broadcast(path Path, snap Snapshot) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for sub := range n.subs[path] {
		sub.deliver(snap)
	}
}
