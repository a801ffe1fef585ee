package render

import (
	"fmt"
	"sync"

	"arbitrage-dashboard-go/internal/models"
)

// ContainerID identifies the page's primary content region.
const ContainerID = "content"

// CardClass is the class attribute of every rendered card.
const CardClass = "card"

// Paragraph is one labelled line of a card.
type Paragraph struct {
	Label string
	Text  string
}

// Card is the visual block for one trade record.
type Card struct {
	Heading    string
	Paragraphs []Paragraph
}

// NewCard lays out a record with the fixed card template.
func NewCard(r models.TradeRecord) Card {
	return Card{
		Heading: r.Token,
		Paragraphs: []Paragraph{
			{Label: "Vrijeme", Text: r.Timestamp},
			{Label: "Kupi na", Text: fmt.Sprintf("%s (%s)", r.BuyExchange, r.BuyPrice)},
			{Label: "Prodaj na", Text: fmt.Sprintf("%s (%s)", r.SellExchange, r.SellPrice)},
			{Label: "Profit", Text: fmt.Sprintf("%s (%s%%)", r.Profit, r.ProfitPercentage)},
		},
	}
}

// Container accumulates cards in append order. It is safe for concurrent use.
type Container struct {
	mu    sync.Mutex
	id    string
	cards []Card
}

// NewContainer returns an empty content container.
func NewContainer() *Container {
	return &Container{id: ContainerID}
}

// ID returns the element identifier of the container.
func (c *Container) ID() string {
	return c.id
}

// Append adds cards after the existing ones. It never replaces what is already there.
func (c *Container) Append(cards ...Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = append(c.cards, cards...)
}

// Cards returns a copy of the cards in display order.
func (c *Container) Cards() []Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len reports how many cards the container holds.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cards)
}

// RenderCards builds one card per record and appends them in the given order.
func RenderCards(records []models.TradeRecord, container *Container) error {
	if container == nil {
		return ErrNoContainer
	}
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r))
	}
	container.Append(cards...)
	return nil
}
