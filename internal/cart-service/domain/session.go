package domain

// Mutation is a cart change that can be applied tentatively and replayed.
type Mutation func(*Cart) error

type pendingMutation struct {
	id    string
	apply Mutation
}

// Session is the two-phase view a presentation layer keeps of a cart: the
// last state confirmed by the cart service, plus mutations sent but not yet
// answered. The tentative state is always confirmed state with the pending
// mutations replayed in order, so the two can never silently diverge.
type Session struct {
	calc      Calculator
	confirmed *Cart
	tentative *Cart
	pending   []pendingMutation
}

func NewSession(confirmed *Cart, calc Calculator) *Session {
	return &Session{
		calc:      calc,
		confirmed: confirmed.Clone(),
		tentative: confirmed.Clone(),
	}
}

// Begin applies m to the tentative state under requestID. A mutation that
// fails locally is not recorded.
func (s *Session) Begin(requestID string, m Mutation) (Breakdown, error) {
	next := s.tentative.Clone()
	if err := m(next); err != nil {
		return Breakdown{}, err
	}
	s.pending = append(s.pending, pendingMutation{id: requestID, apply: m})
	s.tentative = next
	return s.calc.Price(next), nil
}

// Confirm adopts the authoritative cart returned for requestID and replays
// the mutations still in flight on top of it. It returns the ids of pending
// mutations that no longer apply and were dropped.
func (s *Session) Confirm(requestID string, authoritative *Cart) []string {
	s.confirmed = authoritative.Clone()
	s.remove(requestID)
	return s.rebuild()
}

// Reject discards the tentative mutation for requestID.
func (s *Session) Reject(requestID string) []string {
	s.remove(requestID)
	return s.rebuild()
}

func (s *Session) Confirmed() *Cart { return s.confirmed.Clone() }
func (s *Session) Tentative() *Cart { return s.tentative.Clone() }
func (s *Session) Pending() int     { return len(s.pending) }

func (s *Session) ConfirmedBreakdown() Breakdown { return s.calc.Price(s.confirmed) }
func (s *Session) TentativeBreakdown() Breakdown { return s.calc.Price(s.tentative) }

func (s *Session) remove(requestID string) {
	for i, p := range s.pending {
		if p.id == requestID {
			s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
			return
		}
	}
}

func (s *Session) rebuild() []string {
	t := s.confirmed.Clone()
	var dropped []string
	kept := make([]pendingMutation, 0, len(s.pending))
	for _, p := range s.pending {
		next := t.Clone()
		if err := p.apply(next); err != nil {
			dropped = append(dropped, p.id)
			continue
		}
		t = next
		kept = append(kept, p)
	}
	s.pending = kept
	s.tentative = t
	return dropped
}
