package truco

// Result is the state of a hand's resolution
type Result int

// result constants
const (
	Undecided Result = iota
	WonByTeam0
	WonByTeam1
	Void
)

// ResultFor returns the result of a hand won by the team
func ResultFor(team Team) Result {
	if team == Team1 {
		return WonByTeam1
	}

	return WonByTeam0
}

// IsDecided returns true once the hand has a winner or is void
func (r Result) IsDecided() bool {
	return r != Undecided
}

// Winner returns the winning team, or NoTeam if the hand is undecided or void
func (r Result) Winner() Team {
	switch r {
	case WonByTeam0:
		return Team0
	case WonByTeam1:
		return Team1
	}

	return NoTeam
}

func (r Result) String() string {
	switch r {
	case Undecided:
		return "undecided"
	case Void:
		return "void"
	}

	return r.Winner().String()
}

// Resolve applies the hand precedence rules to the trick outcomes played so far
//  a. a team that won two tricks wins
//  b. when the first trick ties, the next decisive trick wins; three ties void the hand
//  c. when the first trick is decisive and the second ties, the first trick wins
//  d. when the first two tricks split and the third ties, the first trick wins
func Resolve(outcomes []Outcome) Result {
	var wins [2]int
	for _, o := range outcomes {
		if !o.IsTie() {
			wins[o.Team()]++
		}
	}

	if wins[Team0] >= 2 {
		return WonByTeam0
	} else if wins[Team1] >= 2 {
		return WonByTeam1
	}

	if len(outcomes) < 2 {
		return Undecided
	}

	first := outcomes[0]
	if first.IsTie() {
		for _, o := range outcomes[1:] {
			if !o.IsTie() {
				return ResultFor(o.Team())
			}
		}

		if len(outcomes) == 3 {
			return Void
		}

		return Undecided
	}

	if outcomes[1].IsTie() {
		return ResultFor(first.Team())
	}

	if len(outcomes) == 3 && outcomes[2].IsTie() {
		return ResultFor(first.Team())
	}

	return Undecided
}

// Hand tracks the trick outcomes and the stake of a single deal
type Hand struct {
	*Stake

	outcomes []Outcome
	result   Result
}

// NewHand returns an undecided hand worth 1
func NewHand() *Hand {
	return &Hand{
		Stake:    NewStake(),
		outcomes: make([]Outcome, 0, 3),
	}
}

// RecordTrick appends the outcome of a trick and re-evaluates the hand
func (h *Hand) RecordTrick(outcome Outcome) (Result, error) {
	if h.result.IsDecided() {
		return h.result, ErrHandDecided
	}

	if len(h.outcomes) >= 3 {
		return h.result, ErrTooManyTricks
	}

	h.outcomes = append(h.outcomes, outcome)
	h.result = Resolve(h.outcomes)

	return h.result, nil
}

// Concede ends the hand in favor of the team without further play
func (h *Hand) Concede(winner Team) error {
	if h.result.IsDecided() {
		return ErrHandDecided
	}

	h.result = ResultFor(winner)
	return nil
}

// Result returns the current result
func (h *Hand) Result() Result {
	return h.result
}

// Outcomes returns a copy of the trick outcomes
func (h *Hand) Outcomes() []Outcome {
	outcomes := make([]Outcome, len(h.outcomes))
	copy(outcomes, h.outcomes)
	return outcomes
}

// TrickNumber returns the 1-based number of the trick being played
func (h *Hand) TrickNumber() int {
	return len(h.outcomes) + 1
}
