package deck

import "fmt"

// Rank represents a rank in a deck of cards.
// Ranks are ordered low to high, Ace first; there is no high-Ace rule.
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// ParseRank matches s against the exact rank names. Case-sensitive, no
// abbreviations.
func ParseRank(s string) (Rank, bool) {
	for i, name := range rankNames {
		if name == s {
			return Rank(i), true
		}
	}
	return 0, false
}

// Suit represents a suit in a deck of cards. Suits carry no ordering.
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// ParseSuit matches s against the exact suit names. Case-sensitive.
func ParseSuit(s string) (Suit, bool) {
	for i, name := range suitNames {
		if name == s {
			return Suit(i), true
		}
	}
	return 0, false
}

// Card represents a playing card. Cards are immutable values and compare by
// value.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
