package game

import (
	"fmt"

	"github.com/minaorangina/warlog/deck"
)

// GroupDeck is an ordered sequence of unordered card groups. A card is
// drawable only from the oldest group; reclaimed trick cards join the back as
// one block and stay together until the blocks ahead are exhausted.
type GroupDeck struct {
	groups []map[deck.Card]struct{}
}

// NewGroupDeck constructs a GroupDeck with cards as its single initial group
func NewGroupDeck(cards []deck.Card) *GroupDeck {
	d := &GroupDeck{}
	if len(cards) > 0 {
		d.groups = append(d.groups, newGroup(cards))
	}
	return d
}

func newGroup(cards []deck.Card) map[deck.Card]struct{} {
	group := map[deck.Card]struct{}{}
	for _, c := range cards {
		group[c] = struct{}{}
	}
	return group
}

// Size returns the number of cards across all groups
func (d *GroupDeck) Size() int {
	size := 0
	for _, group := range d.groups {
		size += len(group)
	}
	return size
}

// CanDraw reports whether card is in the oldest group
func (d *GroupDeck) CanDraw(card deck.Card) bool {
	if len(d.groups) == 0 {
		return false
	}
	_, ok := d.groups[0][card]
	return ok
}

// Remove deletes card from whichever group holds it, dropping the group if it
// empties. A card absent from every group is a no-op.
func (d *GroupDeck) Remove(card deck.Card) {
	for i, group := range d.groups {
		if _, ok := group[card]; !ok {
			continue
		}

		delete(group, card)
		if len(group) == 0 {
			d.groups = append(d.groups[:i], d.groups[i+1:]...)
		}
		return
	}
}

// AddToBottom appends cards as a single new group
func (d *GroupDeck) AddToBottom(cards []deck.Card) {
	d.groups = append(d.groups, newGroup(cards))
}

// Tracker enforces card provenance over the 52-card universe: no card is
// played twice, from the wrong owner, or from a deck position it hasn't
// reached. All state belongs to a single validation run.
type Tracker struct {
	owner  map[deck.Card]int
	inPlay map[deck.Card]struct{}
	decks  map[int]*GroupDeck
	counts map[int]int
}

// NewTracker starts both players on 26 live cards. The actual split of the
// deck is unknown until cards appear in the transcript, so each player's
// possible draws start as the full deck.
func NewTracker() *Tracker {
	return &Tracker{
		owner:  map[deck.Card]int{},
		inPlay: map[deck.Card]struct{}{},
		decks: map[int]*GroupDeck{
			1: NewGroupDeck(deck.New()),
			2: NewGroupDeck(deck.New()),
		},
		counts: map[int]int{1: 26, 2: 26},
	}
}

// PlayCard validates and records player playing card. A successful play
// moves the card out of every deck and into the shared in-play set.
func (t *Tracker) PlayCard(card deck.Card, player int) error {
	if owner, ok := t.owner[card]; ok && owner != player {
		return fmt.Errorf("%s is not in deck of Player %d", card, player)
	}

	if !t.decks[player].CanDraw(card) {
		return fmt.Errorf("%s is not in topmost card group of deck of Player %d", card, player)
	}

	if _, ok := t.inPlay[card]; ok {
		return fmt.Errorf("%s is already in play", card)
	}

	delete(t.owner, card)
	t.inPlay[card] = struct{}{}
	t.counts[player]--

	for _, d := range t.decks {
		d.Remove(card)
	}

	return nil
}

// CollectTrick moves every in-play card into player's deck as one new bottom
// group and marks the player as their owner.
func (t *Tracker) CollectTrick(player int) error {
	cards := make([]deck.Card, 0, len(t.inPlay))
	for card := range t.inPlay {
		if err := t.ensureInPlay(card, player); err != nil {
			return err
		}
		cards = append(cards, card)
	}

	t.decks[player].AddToBottom(cards)
	for _, card := range cards {
		t.owner[card] = player
	}
	t.counts[player] += len(cards)
	t.inPlay = map[deck.Card]struct{}{}

	return nil
}

// ensureInPlay is a defensive invariant; PlayCard's bookkeeping makes a
// failure unreachable through the public API.
func (t *Tracker) ensureInPlay(card deck.Card, player int) error {
	if _, ok := t.inPlay[card]; ok {
		return nil
	}
	if _, ok := t.owner[card]; ok {
		return nil
	}
	return fmt.Errorf("%s to be taken by Player %d is not in play", card, player)
}

// RemainingCounts returns a snapshot of the live card count per player
func (t *Tracker) RemainingCounts() map[int]int {
	counts := map[int]int{}
	for player, count := range t.counts {
		counts[player] = count
	}
	return counts
}

// InPlayCount returns the number of cards currently on the table
func (t *Tracker) InPlayCount() int {
	return len(t.inPlay)
}
