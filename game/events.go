package game

// Event is a battlefield notification. Delivery is synchronous and in
// registration order; publishers never wait on subscribers.
type Event interface {
	event()
}

// ColumnBlocked halts every attacker in the column until the matching
// ColumnUnblocked arrives.
type ColumnBlocked struct{ Column int }

// ColumnUnblocked releases attackers halted by ColumnBlocked.
type ColumnUnblocked struct{ Column int }

// MovementBlocked reports a unit whose forward path hit a block flag.
type MovementBlocked struct{ Unit *Unit }

// UnitDefeated reports a unit removed from the board by damage.
type UnitDefeated struct{ Unit *Unit }

func (ColumnBlocked) event()   {}
func (ColumnUnblocked) event() {}
func (MovementBlocked) event() {}
func (UnitDefeated) event()    {}

type subscription struct {
	id int
	fn func(Event)
}

// Bus is a fire-and-forget multi-subscriber channel. Subscribers must
// unsubscribe before they are destroyed so stale references never see
// events.
type Bus struct {
	nextID int
	subs   []subscription
}

func NewBus() *Bus { return &Bus{} }

// Subscribe registers a handler and returns the id needed to unsubscribe.
func (b *Bus) Subscribe(fn func(Event)) int {
	if fn == nil {
		panic("subscribing a nil handler")
	}
	b.nextID++
	b.subs = append(b.subs, subscription{id: b.nextID, fn: fn})
	return b.nextID
}

// Unsubscribe removes a registration. Unknown ids are ignored so teardown
// paths can run twice.
func (b *Bus) Unsubscribe(id int) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every subscriber in registration order.
func (b *Bus) Publish(e Event) {
	// Snapshot so a handler that unsubscribes mid-delivery cannot skip a
	// peer.
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		s.fn(e)
	}
}
