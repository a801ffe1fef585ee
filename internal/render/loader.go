package render

import (
	"context"
	"errors"
	"fmt"

	"arbitrage-dashboard-go/internal/orders"
	"go.uber.org/zap"
)

// ErrNoContainer is returned when there is no container to render into.
var ErrNoContainer = errors.New("content container not found")

// Loader fetches orders.csv and renders it into a container.
type Loader struct {
	source orders.Source
	logger *zap.Logger
}

// NewLoader creates a loader reading from source.
func NewLoader(source orders.Source, logger *zap.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// LoadData fetches the CSV once, parses it and appends one card per data line,
// newest first. If the fetch fails nothing is appended.
// Calling it twice on the same container appends a second full set of cards.
func (l *Loader) LoadData(ctx context.Context, container *Container) error {
	if container == nil {
		l.logger.Error("Cannot render orders", zap.Error(ErrNoContainer))
		return ErrNoContainer
	}

	text, err := l.source.FetchText(ctx)
	if err != nil {
		l.logger.Error("Failed to load orders", zap.Error(err))
		return fmt.Errorf("load data: %w", err)
	}

	records, issues := orders.Parse(text)
	for _, issue := range issues {
		l.logger.Warn("Malformed order row rendered with blank fields",
			zap.Int("line", issue.Line),
			zap.Int("fields", issue.Fields))
	}

	if err := RenderCards(records, container); err != nil {
		return err
	}

	l.logger.Debug("Rendered order cards", zap.Int("cards", len(records)), zap.String("container", container.ID()))
	return nil
}
