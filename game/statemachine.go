package game

import "github.com/minaorangina/warlog/protocol"

// transition keys the ongoing-phase table
type transition struct {
	state State
	kind  protocol.Kind
	war   WarState
}

// ongoing holds the per-round pipeline and the war sub-pipeline. A missing
// entry means the line is illegal in that position; there is no default
// transition.
var ongoing = map[transition]State{
	{StateRound, protocol.Round, NoWar}:               StatePlayer1Label,
	{StatePlayer1Label, protocol.PlayerLabel, NoWar}:  StatePlayer1Card,
	{StatePlayer1Card, protocol.FaceUpCard, NoWar}:    StatePlayer2Label,
	{StatePlayer2Label, protocol.PlayerLabel, NoWar}:  StatePlayer2Card,
	{StatePlayer2Card, protocol.FaceUpCard, NoWar}:    StateRoundWinner,
	{StatePlayer2Card, protocol.FaceUpCard, WarStart}: StateCommencingWar,

	{StatePlayer2Card, protocol.FaceUpCard, WarOngoing}: StateContinuingWar,
	{StatePlayer2Card, protocol.FaceUpCard, WarEnd}:     StateRoundWinner,

	{StateRoundWinner, protocol.RoundWinner, NoWar}: StateRound,

	{StateCommencingWar, protocol.CommencingWar, WarOngoing}:     StateWarRound,
	{StateWarRound, protocol.WarRound, WarOngoing}:               StateWarPlayer1Label,
	{StateWarPlayer1Label, protocol.PlayerLabel, WarOngoing}:     StateWarPlayer1FaceUp,
	{StateWarPlayer1FaceUp, protocol.FaceUpCard, WarOngoing}:     StateWarPlayer1FaceDown,
	{StateWarPlayer1FaceDown, protocol.FaceDownCard, WarOngoing}: StateWarPlayer2Label,
	{StateWarPlayer2Label, protocol.PlayerLabel, WarOngoing}:     StateWarPlayer2FaceUp,
	{StateWarPlayer2FaceUp, protocol.FaceUpCard, WarOngoing}:     StateWarPlayer2FaceDown,
	{StateWarPlayer2FaceDown, protocol.FaceDownCard, WarOngoing}: StateContinuingWar,
	{StateWarPlayer2FaceDown, protocol.FaceDownCard, WarEnd}:     StateRoundWinner,
	{StateContinuingWar, protocol.ContinuingWar, WarOngoing}:     StateWarRound,
}

// closingTransition keys the closing-phase table, entered once an outcome has
// been derived from remaining card counts.
type closingTransition struct {
	state   State
	kind    protocol.Kind
	outcome Outcome
}

var closing = map[closingTransition]State{
	{StateRound, protocol.Round, OutcomePlayer1Win}: StateWinnerPlayer1,
	{StateRound, protocol.Round, OutcomePlayer2Win}: StateWinnerPlayer2,
	{StateRound, protocol.Round, OutcomeDraw}:       StateDraw,

	{StateWarRound, protocol.WarRound, OutcomePlayer1Win}: StateWinnerPlayer1,
	{StateWarRound, protocol.WarRound, OutcomePlayer2Win}: StateWinnerPlayer2,
	{StateWarRound, protocol.WarRound, OutcomeDraw}:       StateDraw,

	{StateWinnerPlayer1, protocol.GameWinner, OutcomePlayer1Win}: StateDone,
	{StateWinnerPlayer2, protocol.GameWinner, OutcomePlayer2Win}: StateDone,
	{StateDraw, protocol.Draw, OutcomeDraw}:                      StateDone,
}

// StateMachine enforces legal line ordering for a single validation run. It
// starts at the initial round-header state and only moves forward through the
// transition tables.
type StateMachine struct {
	state State
}

// NewStateMachine constructs a StateMachine in the initial state
func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateRound}
}

// State returns the current state
func (m *StateMachine) State() State {
	return m.state
}

// Next computes the successor state for a line without committing it. The
// second return is false when no legal transition exists. Empty lines always
// self-loop.
func (m *StateMachine) Next(line protocol.Line, war WarState, outcome Outcome) (State, bool) {
	if line.Kind() == protocol.Empty {
		return m.state, true
	}

	if outcome != OutcomeNone {
		return m.nextClosing(line, outcome)
	}

	return m.nextOngoing(line, war)
}

// Advance commits the transition computed by Next. On an illegal line the
// state is left unchanged.
func (m *StateMachine) Advance(line protocol.Line, war WarState, outcome Outcome) (State, bool) {
	next, ok := m.Next(line, war, outcome)
	if ok {
		m.state = next
	}
	return next, ok
}

func (m *StateMachine) nextOngoing(line protocol.Line, war WarState) (State, bool) {
	next, ok := ongoing[transition{m.state, line.Kind(), war}]
	if !ok || !guardOngoing(m.state, line) {
		return m.state, false
	}
	return next, true
}

func (m *StateMachine) nextClosing(line protocol.Line, outcome Outcome) (State, bool) {
	next, ok := closing[closingTransition{m.state, line.Kind(), outcome}]
	if !ok || !guardClosing(m.state, line) {
		return m.state, false
	}
	return next, true
}

// guardOngoing applies the player-number constraints the table cannot express
func guardOngoing(state State, line protocol.Line) bool {
	switch l := line.(type) {
	case protocol.PlayerLabelLine:
		switch state {
		case StatePlayer1Label, StateWarPlayer1Label:
			return l.Player == 1
		case StatePlayer2Label, StateWarPlayer2Label:
			return l.Player == 2
		}
	case protocol.RoundWinnerLine:
		return l.Player == 1 || l.Player == 2
	}
	return true
}

// guardClosing requires the declared game winner to match the derived one
func guardClosing(state State, line protocol.Line) bool {
	if l, ok := line.(protocol.GameWinnerLine); ok {
		switch state {
		case StateWinnerPlayer1:
			return l.Player == 1
		case StateWinnerPlayer2:
			return l.Player == 2
		}
	}
	return true
}
