package game

import (
	"fmt"

	"github.com/minaorangina/warlog/deck"
)

// Comparer holds the face-up cards on the table for the current trick and
// resolves winners by rank alone; suits carry no ordering. A rank tie returns
// every tied player, which signals a war rather than an error.
type Comparer struct {
	players []int
	faceUp  map[int]deck.Card
}

// NewComparer constructs a Comparer for the given players
func NewComparer(players []int) *Comparer {
	return &Comparer{players: players, faceUp: map[int]deck.Card{}}
}

// PlayFaceUp records card for player. A player cannot have two face-up cards
// pending in the same trick.
func (c *Comparer) PlayFaceUp(card deck.Card, player int) error {
	if pending, ok := c.faceUp[player]; ok {
		return fmt.Errorf("Player %d tried to play face up card %s, but already has face up card %s in play", player, card, pending)
	}

	c.faceUp[player] = card
	return nil
}

// FaceUp returns player's pending face-up card
func (c *Comparer) FaceUp(player int) (deck.Card, bool) {
	card, ok := c.faceUp[player]
	return card, ok
}

// Winners resolves the current trick. Every player must have a face-up card
// pending; the highest rank wins and ties return all tied players.
func (c *Comparer) Winners() ([]int, error) {
	winners := []int{}
	var best deck.Card
	haveBest := false

	for _, player := range c.players {
		card, ok := c.faceUp[player]
		if !ok {
			return nil, fmt.Errorf("Player %d still has no face up card", player)
		}

		if !haveBest {
			best = card
			haveBest = true
			winners = append(winners, player)
			continue
		}

		if card.Rank > best.Rank {
			winners = winners[:0]
			best = card
		}
		if card.Rank >= best.Rank {
			winners = append(winners, player)
		}
	}

	return winners, nil
}

// Reset clears the table; called after every round and war-round resolution
func (c *Comparer) Reset() {
	c.faceUp = map[int]deck.Card{}
}
