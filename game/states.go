// Package game holds the core of the transcript validator: the protocol
// state machine, the card provenance tracker, the trick comparer and the
// orchestrating Validator.
package game

// State is the validator's expectation of which line category may legally
// appear next. StateRound means the next line should be a round header.
type State int

const (
	StateRound State = iota
	StatePlayer1Label
	StatePlayer1Card
	StatePlayer2Label
	StatePlayer2Card
	StateRoundWinner
	StateCommencingWar
	StateWarRound
	StateWarPlayer1Label
	StateWarPlayer1FaceUp
	StateWarPlayer1FaceDown
	StateWarPlayer2Label
	StateWarPlayer2FaceUp
	StateWarPlayer2FaceDown
	StateContinuingWar
	StateWinnerPlayer1
	StateWinnerPlayer2
	StateDraw
	StateDone
)

var stateNames = []string{
	"Round",
	"Player1Label",
	"Player1Card",
	"Player2Label",
	"Player2Card",
	"RoundWinner",
	"CommencingWar",
	"WarRound",
	"WarPlayer1Label",
	"WarPlayer1FaceUp",
	"WarPlayer1FaceDown",
	"WarPlayer2Label",
	"WarPlayer2FaceUp",
	"WarPlayer2FaceDown",
	"ContinuingWar",
	"WinnerPlayer1",
	"WinnerPlayer2",
	"Draw",
	"Done",
}

func (s State) String() string {
	return stateNames[s]
}

// WarState is the war sub-phase. It is derived from trick outcomes on every
// card line, never stored independently of game logic.
type WarState int

const (
	NoWar WarState = iota
	WarStart
	WarOngoing
	WarEnd
)

var warStateNames = []string{"NoWar", "WarStart", "WarOngoing", "WarEnd"}

func (w WarState) String() string {
	return warStateNames[w]
}

// Outcome is the game-end result derived from remaining card counts. The
// transcript never asserts it directly.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayer1Win
	OutcomePlayer2Win
	OutcomeDraw
)

var outcomeNames = []string{"None", "Player1Win", "Player2Win", "Draw"}

func (o Outcome) String() string {
	return outcomeNames[o]
}
