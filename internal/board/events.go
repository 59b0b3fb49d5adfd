package board

// EventKind identifies a board mutation.
type EventKind int

const (
	EventInserted EventKind = iota
	EventRemoved
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventInserted:
		return "inserted"
	case EventRemoved:
		return "removed"
	default:
		return "reset"
	}
}

// Event is delivered to subscribers after a mutation has been fully applied.
// Domino is zero for EventReset.
type Event struct {
	Kind   EventKind
	Domino Domino
}

type observer struct {
	fn func(Event)
}

// Subscribe registers fn to be called synchronously after every insert, remove
// and reset. The returned function unsubscribes it.
func (b *Board) Subscribe(fn func(Event)) (unsubscribe func()) {
	o := &observer{fn: fn}
	b.observers = append(b.observers, o)
	return func() {
		for i, cur := range b.observers {
			if cur == o {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) notify(ev Event) {
	for _, o := range b.observers {
		o.fn(ev)
	}
}
