package engine

// EventKind identifies the signal emitted after a mutation. Payloads are
// empty (observers re-read the store), except the EXP preview which carries
// the provisional delta.
type EventKind int

const (
	EventQuestsChanged EventKind = iota
	EventProfileChanged
	EventAchievementUnlocked
	EventMoodChanged
	EventExpPreview
	EventClearExpPreview
)

func (k EventKind) String() string {
	switch k {
	case EventQuestsChanged:
		return "quests-changed"
	case EventProfileChanged:
		return "profile-changed"
	case EventAchievementUnlocked:
		return "achievement-unlocked"
	case EventMoodChanged:
		return "mood-changed"
	case EventExpPreview:
		return "exp-preview"
	case EventClearExpPreview:
		return "clear-exp-preview"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	// ExpDelta is set for EventExpPreview: the hypothetical ledger change
	// if the in-flight edit were saved. Never applied to the ledger.
	ExpDelta int
}

// Notifier receives events after a mutation completes. Dispatch is
// fire-and-forget; observers see post-mutation state but get no ordering
// guarantees beyond that.
type Notifier interface {
	Notify(Event)
}

// Fanout dispatches each event synchronously to every subscriber.
type Fanout struct {
	subs []func(Event)
}

var _ Notifier = (*Fanout)(nil)

func NewFanout() *Fanout {
	return &Fanout{}
}

func (f *Fanout) Subscribe(fn func(Event)) {
	f.subs = append(f.subs, fn)
}

func (f *Fanout) Notify(ev Event) {
	for _, fn := range f.subs {
		fn(ev)
	}
}
