package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/warlog/deck"
	"github.com/minaorangina/warlog/protocol"
)

// ErrValidatorConsumed is returned when a Validator is reused after a run.
// All counters and card state belong to one run; construct a fresh Validator
// per transcript.
var ErrValidatorConsumed = errors.New("validator already consumed; construct a new one per run")

// Result is the verdict of one validation run. A nil Err signals success;
// otherwise LineNumber and State locate the first failure.
type Result struct {
	LineNumber int
	State      State
	Err        error
}

// Validator drives the classifier, state machine, tracker and comparer over
// a transcript line by line, stopping at the first inconsistency.
type Validator struct {
	classifier *protocol.Classifier
	machine    *StateMachine
	tracker    *Tracker
	comparer   *Comparer

	lineNumber int
	round      int
	warRound   int
	warState   WarState
	outcome    Outcome
	ended      bool
	consumed   bool
}

// NewValidator constructs a Validator for a single two-player run
func NewValidator() *Validator {
	return &Validator{
		classifier: protocol.DefaultClassifier(),
		machine:    NewStateMachine(),
		tracker:    NewTracker(),
		comparer:   NewComparer([]int{1, 2}),
		lineNumber: 1,
		round:      1,
	}
}

// Validate checks every line in input order. State from one line is fully
// committed before the next is classified; the first failure aborts the run.
// A transcript that never reaches a game-winner or draw line fails with an
// incompleteness error.
func (v *Validator) Validate(lines []string) Result {
	if v.consumed {
		return Result{v.lineNumber, v.machine.State(), ErrValidatorConsumed}
	}
	v.consumed = true

	for _, line := range lines {
		if err := v.validateLine(line); err != nil {
			return Result{v.lineNumber, v.machine.State(), err}
		}
		v.lineNumber++
	}

	if !v.ended {
		return Result{v.lineNumber, v.machine.State(), fmt.Errorf(
			"game did not end; parse state %s, war state %s, game end state %s, and cards left %v",
			v.machine.State(), v.warState, v.outcome, v.tracker.RemainingCounts())}
	}

	return Result{v.lineNumber, v.machine.State(), nil}
}

func (v *Validator) validateLine(raw string) error {
	line := v.classifier.Classify(raw)

	if err := v.checkSemantics(line); err != nil {
		return err
	}

	if _, ok := v.machine.Advance(line, v.warState, v.outcome); !ok {
		return fmt.Errorf("unexpected line %q for parse state %s with war state %s, game end state %s, and cards left %v",
			line.String(), v.machine.State(), v.warState, v.outcome, v.tracker.RemainingCounts())
	}

	return nil
}

// checkSemantics dispatches the record-specific checks. Line ordering itself
// is the state machine's concern.
func (v *Validator) checkSemantics(line protocol.Line) error {
	switch l := line.(type) {
	case protocol.RoundLine:
		if v.round != l.Number {
			return fmt.Errorf("round number should be %d; found line with round number %d", v.round, l.Number)
		}
		v.deriveOutcome(0)

	case protocol.WarRoundLine:
		if v.round != l.Round {
			return fmt.Errorf("round number should be %d; found line with round number %d", v.round, l.Round)
		}
		if v.warRound != l.War {
			return fmt.Errorf("war round number should be %d; found line with war round number %d", v.warRound, l.War)
		}
		v.deriveOutcome(2)

	case protocol.FaceUpCardLine:
		return v.playCard(l.Card, true)

	case protocol.FaceDownCardLine:
		return v.playCard(l.Card, false)

	case protocol.RoundWinnerLine:
		return v.checkRoundWinner(l)

	case protocol.CommencingWarLine:
		return v.checkWarDeclaration(true)

	case protocol.ContinuingWarLine:
		return v.checkWarDeclaration(false)

	case protocol.GameWinnerLine, protocol.DrawLine:
		v.ended = true

	case protocol.MalformedLine:
		return fmt.Errorf("encountered malformed line: %s", l.Text)

	case protocol.PlayerLabelLine, protocol.EmptyLine:
	}

	return nil
}

// playCard plays the card for whichever player's turn it structurally is,
// then resolves the trick if this play completes a trick slot.
func (v *Validator) playCard(card deck.Card, faceUp bool) error {
	player := v.playerToAct()
	if player == 0 {
		return fmt.Errorf("cannot play %s; no card can be played yet", card)
	}

	if err := v.tracker.PlayCard(card, player); err != nil {
		return err
	}

	if faceUp {
		if err := v.comparer.PlayFaceUp(card, player); err != nil {
			return err
		}
	}

	// A trick slot completes on the face-up card outside a war, or on the
	// face-down card during one.
	if (v.warState == NoWar && faceUp) || (v.warState == WarOngoing && !faceUp) {
		winners, err := v.comparer.Winners()
		if err != nil {
			// still waiting for the other player's card
			return nil
		}

		if len(winners) > 1 {
			if v.warState == NoWar {
				v.warState = WarStart
			} else {
				v.warState = WarOngoing
			}
		} else {
			if v.warState == WarOngoing {
				v.warState = WarEnd
			} else {
				v.warState = NoWar
			}
		}
	}

	return nil
}

func (v *Validator) checkRoundWinner(l protocol.RoundWinnerLine) error {
	v.round++

	winners, err := v.comparer.Winners()
	if err != nil {
		return err
	}

	if len(winners) > 1 {
		return fmt.Errorf("multiple winners (%v), but line says winner is %d", winners, l.Player)
	}

	winner := winners[0]
	if winner != l.Player {
		return fmt.Errorf("Player %d won; line says Player %d", winner, l.Player)
	}

	winningCard, _ := v.comparer.FaceUp(winner)
	if l.Card != winningCard {
		return fmt.Errorf("Player %d won with %s; line says Player %d won with %s", winner, winningCard, winner, l.Card)
	}

	if err := v.tracker.CollectTrick(l.Player); err != nil {
		return err
	}

	v.comparer.Reset()
	v.warState = NoWar
	return nil
}

func (v *Validator) checkWarDeclaration(commencing bool) error {
	winners, err := v.comparer.Winners()
	if err != nil {
		return err
	}

	if len(winners) == 1 {
		verb := "continue"
		if commencing {
			verb = "commence"
		}
		return fmt.Errorf("single winner (%v), but line says war is to %s", winners, verb)
	}

	if commencing {
		v.warRound = 1
	} else {
		v.warRound++
	}

	v.warState = WarOngoing
	v.comparer.Reset()
	return nil
}

// deriveOutcome recomputes the game-end outcome before a round or war-round
// header advances the counters. A player must hold more than n cards to play
// the upcoming round; with exactly one player left that player wins, with
// none left the game is a draw.
func (v *Validator) deriveOutcome(n int) {
	counts := v.tracker.RemainingCounts()

	left := []int{}
	for _, player := range []int{1, 2} {
		if counts[player] > n {
			left = append(left, player)
		}
	}

	switch len(left) {
	case 0:
		v.outcome = OutcomeDraw
	case 1:
		if left[0] == 1 {
			v.outcome = OutcomePlayer1Win
		} else {
			v.outcome = OutcomePlayer2Win
		}
	}
}

// playerToAct derives whose card line is due purely from the protocol state.
// Zero means no card can legally be played right now.
func (v *Validator) playerToAct() int {
	switch v.machine.State() {
	case StatePlayer1Card, StateWarPlayer1FaceUp, StateWarPlayer1FaceDown:
		return 1
	case StatePlayer2Card, StateWarPlayer2FaceUp, StateWarPlayer2FaceDown:
		return 2
	}
	return 0
}
