// Package protocol defines the transcript line grammar: the closed set of
// typed line records and the classifier that maps raw text onto them. The
// literal textual forms are a wire format and must be reproduced exactly.
package protocol

import (
	"fmt"

	"github.com/minaorangina/warlog/deck"
)

// Kind identifies the category of a transcript line
type Kind int

const (
	Round Kind = iota
	PlayerLabel
	FaceUpCard
	FaceDownCard
	RoundWinner
	CommencingWar
	WarRound
	ContinuingWar
	GameWinner
	Draw
	Empty
	Malformed
)

var kindNames = []string{
	"Round",
	"PlayerLabel",
	"FaceUpCard",
	"FaceDownCard",
	"RoundWinner",
	"CommencingWar",
	"WarRound",
	"ContinuingWar",
	"GameWinner",
	"Draw",
	"Empty",
	"Malformed",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Line is a classified transcript line. Every line maps to exactly one of the
// concrete types below; String renders the exact textual form the classifier
// accepts.
type Line interface {
	Kind() Kind
	String() string
}

// RoundLine is a round header, e.g. "Round 3"
type RoundLine struct {
	Number int
}

func (l RoundLine) Kind() Kind { return Round }

func (l RoundLine) String() string {
	return fmt.Sprintf("Round %d", l.Number)
}

// PlayerLabelLine announces whose cards follow, e.g. "Player 1:"
type PlayerLabelLine struct {
	Player int
}

func (l PlayerLabelLine) Kind() Kind { return PlayerLabel }

func (l PlayerLabelLine) String() string {
	return fmt.Sprintf("Player %d:", l.Player)
}

// FaceUpCardLine is a card played face up, e.g. "- Ace of Spades"
type FaceUpCardLine struct {
	Card deck.Card
}

func (l FaceUpCardLine) Kind() Kind { return FaceUpCard }

func (l FaceUpCardLine) String() string {
	return fmt.Sprintf("- %s", l.Card)
}

// FaceDownCardLine is a card played face down during a war
type FaceDownCardLine struct {
	Card deck.Card
}

func (l FaceDownCardLine) Kind() Kind { return FaceDownCard }

func (l FaceDownCardLine) String() string {
	return fmt.Sprintf("- %s (face down)", l.Card)
}

// RoundWinnerLine declares a round's winner and their winning card
type RoundWinnerLine struct {
	Player int
	Card   deck.Card
}

func (l RoundWinnerLine) Kind() Kind { return RoundWinner }

func (l RoundWinnerLine) String() string {
	return fmt.Sprintf("Round winner: Player %d (%s)", l.Player, l.Card)
}

// CommencingWarLine opens the first war round of a tied trick
type CommencingWarLine struct{}

func (l CommencingWarLine) Kind() Kind { return CommencingWar }

func (l CommencingWarLine) String() string {
	return "Commencing war..."
}

// WarRoundLine is a war round header, e.g. "Round 3, War 2"
type WarRoundLine struct {
	Round int
	War   int
}

func (l WarRoundLine) Kind() Kind { return WarRound }

func (l WarRoundLine) String() string {
	return fmt.Sprintf("Round %d, War %d", l.Round, l.War)
}

// ContinuingWarLine opens a subsequent war round after another tie
type ContinuingWarLine struct{}

func (l ContinuingWarLine) Kind() Kind { return ContinuingWar }

func (l ContinuingWarLine) String() string {
	return "Continuing war..."
}

// GameWinnerLine declares the winner of the whole game
type GameWinnerLine struct {
	Player int
	Cards  int
}

func (l GameWinnerLine) Kind() Kind { return GameWinner }

func (l GameWinnerLine) String() string {
	return fmt.Sprintf("Player %d wins with %d cards in their deck", l.Player, l.Cards)
}

// DrawLine declares the game ended with no winner
type DrawLine struct{}

func (l DrawLine) Kind() Kind { return Draw }

func (l DrawLine) String() string {
	return "The game ended in a draw"
}

// EmptyLine is a blank (or whitespace-only) line
type EmptyLine struct{}

func (l EmptyLine) Kind() Kind { return Empty }

func (l EmptyLine) String() string {
	return ""
}

// MalformedLine is any line no grammar rule fully accepts
type MalformedLine struct {
	Text string
}

func (l MalformedLine) Kind() Kind { return Malformed }

func (l MalformedLine) String() string {
	return l.Text
}
