package truco

// Stakes is the ladder of values a hand can be worth
var Stakes = []int{1, 3, 6, 9, 12}

// MaxStake is the highest value of the ladder
const MaxStake = 12

// NextStake returns the rung after the value
func NextStake(value int) (int, bool) {
	for i, stake := range Stakes {
		if stake == value && i+1 < len(Stakes) {
			return Stakes[i+1], true
		}
	}

	return 0, false
}

// IsStake returns true if the value is on the ladder
func IsStake(value int) bool {
	for _, stake := range Stakes {
		if stake == value {
			return true
		}
	}

	return false
}

// Raise is a request waiting for an answer
type Raise struct {
	Requester int  `json:"requester"`
	Responder int  `json:"responder"`
	Team      Team `json:"team"`
	Value     int  `json:"value"`
}

// Stake is the value of a hand and the raise protocol around it
type Stake struct {
	value   int
	owner   Team
	pending *Raise
	fixed   bool
}

// NewStake returns a stake worth 1 owned by neither team
func NewStake() *Stake {
	return &Stake{
		value: 1,
		owner: NoTeam,
	}
}

// Value returns the current value of the hand
func (s *Stake) Value() int {
	return s.value
}

// Owner returns the team that set the current value
func (s *Stake) Owner() Team {
	return s.owner
}

// Pending returns a copy of the raise waiting for an answer, or nil
func (s *Stake) Pending() *Raise {
	if s.pending == nil {
		return nil
	}

	r := *s.pending
	return &r
}

// IsFixed returns true if raising has been disabled for the hand
func (s *Stake) IsFixed() bool {
	return s.fixed
}

// CanRaise checks whether the team may request the next rung
func (s *Stake) CanRaise(team Team) error {
	if s.fixed {
		return ErrStakeFixed
	}

	if s.pending != nil {
		return ErrRaisePending
	}

	if s.value >= MaxStake {
		return ErrStakeAtMaximum
	}

	if s.owner == team {
		return ErrTeamOwnsStake
	}

	return nil
}

// Next returns the value a raise would propose
func (s *Stake) Next() (int, bool) {
	return NextStake(s.value)
}

// Request opens a raise from requester to responder
func (s *Stake) Request(requester, responder int, team Team, value int) error {
	if err := s.CanRaise(team); err != nil {
		return err
	}

	if next, _ := s.Next(); value != next {
		return ErrInvalidRaiseValue
	}

	s.pending = &Raise{
		Requester: requester,
		Responder: responder,
		Team:      team,
		Value:     value,
	}

	return nil
}

func (s *Stake) checkResponder(seat int) error {
	if s.pending == nil {
		return ErrNoPendingRaise
	}

	if s.pending.Responder != seat {
		return ErrNotResponder
	}

	return nil
}

// Accept takes the proposed value
// The requesting team becomes the owner of the stake.
func (s *Stake) Accept(seat int) (Raise, error) {
	if err := s.checkResponder(seat); err != nil {
		return Raise{}, err
	}

	r := *s.pending
	s.value = r.Value
	s.owner = r.Team
	s.pending = nil

	return r, nil
}

// Run refuses the raise
// The requesting team wins the hand, worth the value in effect before the raise.
func (s *Stake) Run(seat int) (winner Team, points int, err error) {
	if err := s.checkResponder(seat); err != nil {
		return NoTeam, 0, err
	}

	winner = s.pending.Team
	s.pending = nil

	return winner, s.value, nil
}

// Raise answers a raise with the next rung
// The pending value is accepted first, then the responder becomes the requester
// and the previous requester must answer.
func (s *Stake) Raise(seat int, team Team, value int) (Raise, error) {
	if err := s.checkResponder(seat); err != nil {
		return Raise{}, err
	}

	accepted := *s.pending
	if accepted.Value >= MaxStake {
		return Raise{}, ErrStakeAtMaximum
	}

	if next, _ := NextStake(accepted.Value); value != next {
		return Raise{}, ErrInvalidRaiseValue
	}

	s.value = accepted.Value
	s.owner = accepted.Team
	s.pending = &Raise{
		Requester: seat,
		Responder: accepted.Requester,
		Team:      team,
		Value:     value,
	}

	return accepted, nil
}

// Fix sets the value of the hand and disables raising
func (s *Stake) Fix(value int) error {
	if !IsStake(value) {
		return ErrInvalidStake
	}

	s.value = value
	s.owner = NoTeam
	s.pending = nil
	s.fixed = true

	return nil
}
