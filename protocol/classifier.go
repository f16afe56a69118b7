package protocol

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/minaorangina/warlog/deck"
)

var (
	roundPattern         = regexp.MustCompile(`^Round (\d+)$`)
	playerLabelPattern   = regexp.MustCompile(`^Player (\d+):$`)
	faceUpCardPattern    = regexp.MustCompile(`^- ([A-Za-z]+) of ([A-Za-z]+)$`)
	faceDownCardPattern  = regexp.MustCompile(`^- ([A-Za-z]+) of ([A-Za-z]+) \(face down\)$`)
	roundWinnerPattern   = regexp.MustCompile(`^Round winner: Player (\d+) \(([A-Za-z]+) of ([A-Za-z]+)\)$`)
	commencingWarPattern = regexp.MustCompile(`^Commencing war\.\.\.$`)
	warRoundPattern      = regexp.MustCompile(`^Round (\d+), War (\d+)$`)
	continuingWarPattern = regexp.MustCompile(`^Continuing war\.\.\.$`)
	gameWinnerPattern    = regexp.MustCompile(`^Player (\d+) wins with (\d+) cards in their deck$`)
	drawPattern          = regexp.MustCompile(`^The game ended in a draw$`)
)

// Classifier turns raw transcript text into typed Line records. It is
// stateless and safe to call any number of times.
type Classifier struct {
	validPlayers map[int]struct{}
	maxCards     int
}

// NewClassifier constructs a Classifier accepting the given player numbers
// and card counts up to maxCards.
func NewClassifier(validPlayers []int, maxCards int) *Classifier {
	players := map[int]struct{}{}
	for _, p := range validPlayers {
		players[p] = struct{}{}
	}
	return &Classifier{validPlayers: players, maxCards: maxCards}
}

// DefaultClassifier accepts players 1 and 2 over the standard 52-card deck
func DefaultClassifier() *Classifier {
	return NewClassifier([]int{1, 2}, len(deck.New()))
}

// Classify maps any input to exactly one Line record. Input containing an
// embedded line break is malformed outright; otherwise surrounding whitespace
// is trimmed and each grammar rule is tried in priority order. A structural
// match whose captured fields fail validation falls through to the next rule;
// if no rule fully succeeds the line is malformed.
func (c *Classifier) Classify(text string) Line {
	if strings.Contains(text, "\n") {
		return MalformedLine{Text: text}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyLine{}
	}

	rules := []func(string) (Line, bool){
		c.classifyRound,
		c.classifyPlayerLabel,
		c.classifyFaceUpCard,
		c.classifyFaceDownCard,
		c.classifyRoundWinner,
		c.classifyCommencingWar,
		c.classifyWarRound,
		c.classifyContinuingWar,
		c.classifyGameWinner,
		c.classifyDraw,
	}

	for _, rule := range rules {
		if line, ok := rule(text); ok {
			return line
		}
	}

	return MalformedLine{Text: text}
}

func (c *Classifier) validPlayer(player int) bool {
	_, ok := c.validPlayers[player]
	return ok
}

func (c *Classifier) classifyRound(text string) (Line, bool) {
	m := roundPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}

	return RoundLine{Number: number}, true
}

func (c *Classifier) classifyPlayerLabel(text string) (Line, bool) {
	m := playerLabelPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	player, err := strconv.Atoi(m[1])
	if err != nil || !c.validPlayer(player) {
		return nil, false
	}

	return PlayerLabelLine{Player: player}, true
}

func (c *Classifier) classifyFaceUpCard(text string) (Line, bool) {
	m := faceUpCardPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	card, ok := parseCard(m[1], m[2])
	if !ok {
		return nil, false
	}

	return FaceUpCardLine{Card: card}, true
}

func (c *Classifier) classifyFaceDownCard(text string) (Line, bool) {
	m := faceDownCardPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	card, ok := parseCard(m[1], m[2])
	if !ok {
		return nil, false
	}

	return FaceDownCardLine{Card: card}, true
}

func (c *Classifier) classifyRoundWinner(text string) (Line, bool) {
	m := roundWinnerPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	player, err := strconv.Atoi(m[1])
	if err != nil || !c.validPlayer(player) {
		return nil, false
	}

	card, ok := parseCard(m[2], m[3])
	if !ok {
		return nil, false
	}

	return RoundWinnerLine{Player: player, Card: card}, true
}

func (c *Classifier) classifyCommencingWar(text string) (Line, bool) {
	if !commencingWarPattern.MatchString(text) {
		return nil, false
	}
	return CommencingWarLine{}, true
}

func (c *Classifier) classifyWarRound(text string) (Line, bool) {
	m := warRoundPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	round, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}

	war, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, false
	}

	return WarRoundLine{Round: round, War: war}, true
}

func (c *Classifier) classifyContinuingWar(text string) (Line, bool) {
	if !continuingWarPattern.MatchString(text) {
		return nil, false
	}
	return ContinuingWarLine{}, true
}

func (c *Classifier) classifyGameWinner(text string) (Line, bool) {
	m := gameWinnerPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	player, err := strconv.Atoi(m[1])
	if err != nil || !c.validPlayer(player) {
		return nil, false
	}

	cards, err := strconv.Atoi(m[2])
	if err != nil || cards < 0 || cards > c.maxCards {
		return nil, false
	}

	return GameWinnerLine{Player: player, Cards: cards}, true
}

func (c *Classifier) classifyDraw(text string) (Line, bool) {
	if !drawPattern.MatchString(text) {
		return nil, false
	}
	return DrawLine{}, true
}

func parseCard(rankToken, suitToken string) (deck.Card, bool) {
	rank, ok := deck.ParseRank(rankToken)
	if !ok {
		return deck.Card{}, false
	}

	suit, ok := deck.ParseSuit(suitToken)
	if !ok {
		return deck.Card{}, false
	}

	return deck.NewCard(rank, suit), true
}
