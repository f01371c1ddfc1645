package resource

// Intent is the kind of mutation being submitted.
type Intent int

const (
	IntentCreate Intent = iota
	IntentUpdate
	IntentDelete
)

func (i Intent) String() string {
	switch i {
	case IntentCreate:
		return "create"
	case IntentUpdate:
		return "update"
	case IntentDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Mutator serializes mutations for one screen: at most one submission
// in flight, and every successful submission is followed by a reload of
// the owning list at its current parameters (never a local patch, since
// statuses, counts and timestamps are server-computed).
type Mutator struct {
	inFlight bool
	intent   Intent
}

// Begin marks a submission as in flight. It reports false, refusing the
// submission, when one is already running.
func (m *Mutator) Begin(intent Intent) bool {
	if m.inFlight {
		return false
	}
	m.inFlight = true
	m.intent = intent
	return true
}

// Finish clears the in-flight flag once the submission resolves.
func (m *Mutator) Finish() {
	m.inFlight = false
}

// InFlight reports whether a submission is running.
func (m *Mutator) InFlight() bool { return m.inFlight }

// Intent returns the kind of the running or last submission.
func (m *Mutator) Intent() Intent { return m.intent }

// DeleteGate enforces the explicit confirmation step destructive
// intents require. A delete request arms the gate for one entity;
// only a confirmation for that same entity may dispatch.
type DeleteGate struct {
	armed bool
	id    string
}

// Request arms the gate for the given entity.
func (g *DeleteGate) Request(id string) {
	g.armed = id != ""
	g.id = id
}

// Confirm disarms the gate and reports whether the delete for id may
// proceed. Unarmed or mismatched confirmations dispatch nothing.
func (g *DeleteGate) Confirm(id string) bool {
	ok := g.armed && g.id == id
	g.armed = false
	g.id = ""
	return ok
}

// Cancel disarms the gate without dispatching.
func (g *DeleteGate) Cancel() {
	g.armed = false
	g.id = ""
}

// Armed reports whether a delete is awaiting confirmation, and for
// which entity.
func (g *DeleteGate) Armed() (string, bool) {
	return g.id, g.armed
}
