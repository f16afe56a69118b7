package deck

// Deck represents a deck of cards
type Deck []Card

// New creates the standard deck: all 52 rank/suit combinations, each card
// appearing exactly once.
func New() Deck {
	cards := Deck{}
	for rank := Ace; rank <= King; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}
