package game

import (
	"testing"

	"github.com/minaorangina/warlog/deck"
	utils "github.com/minaorangina/warlog/internal"
	"github.com/stretchr/testify/assert"
)

func TestComparerPlayFaceUp(t *testing.T) {
	t.Run("records one card per player", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ace, deck.Spades), 1))

		card, ok := c.FaceUp(1)
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, card, deck.NewCard(deck.Ace, deck.Spades))

		_, ok = c.FaceUp(2)
		assert.False(t, ok)
	})

	t.Run("rejects a second pending card for the same player", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ace, deck.Spades), 1))

		err := c.PlayFaceUp(deck.NewCard(deck.Two, deck.Spades), 1)
		utils.AssertErrorContains(t, err, "already has face up card Ace of Spades")
	})
}

func TestComparerWinners(t *testing.T) {
	t.Run("fails until every player has played", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		_, err := c.Winners()
		utils.AssertErrorContains(t, err, "Player 1 still has no face up card")

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ace, deck.Spades), 1))
		_, err = c.Winners()
		utils.AssertErrorContains(t, err, "Player 2 still has no face up card")
	})

	t.Run("highest rank wins", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ace, deck.Spades), 1))
		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.King, deck.Clubs), 2))

		winners, err := c.Winners()
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, winners, []int{2})
	})

	t.Run("suit does not break a rank comparison", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ten, deck.Spades), 1))
		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Nine, deck.Clubs), 2))

		winners, err := c.Winners()
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, winners, []int{1})
	})

	t.Run("rank tie returns all tied players", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Seven, deck.Spades), 1))
		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Seven, deck.Clubs), 2))

		winners, err := c.Winners()
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, winners, []int{1, 2})
	})

	t.Run("winners can be resolved repeatedly before a reset", func(t *testing.T) {
		c := NewComparer([]int{1, 2})

		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Two, deck.Spades), 1))
		utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Two, deck.Clubs), 2))

		first, err := c.Winners()
		utils.AssertNoError(t, err)
		second, err := c.Winners()
		utils.AssertNoError(t, err)
		utils.AssertDeepEqual(t, first, second)
	})
}

func TestComparerReset(t *testing.T) {
	c := NewComparer([]int{1, 2})

	utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ace, deck.Spades), 1))
	c.Reset()

	_, ok := c.FaceUp(1)
	assert.False(t, ok)

	// the card can be played again once the table is cleared
	utils.AssertNoError(t, c.PlayFaceUp(deck.NewCard(deck.Ace, deck.Spades), 1))
}
