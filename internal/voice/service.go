package voice

import (
	"context"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"

	"go.uber.org/zap"
)

// CartSink receives the items a resolved voice order adds.
// Implemented by the session manager.
type CartSink interface {
	AddItem(userID string, item catalog.Item)
}

type Service struct {
	catalog catalog.Repository
	carts   CartSink
	logger  *zap.SugaredLogger
}

func NewService(catalogRepo catalog.Repository, carts CartSink, logger *zap.SugaredLogger) *Service {
	return &Service{
		catalog: catalogRepo,
		carts:   carts,
		logger:  logger,
	}
}

// OrderFromTranscript parses one utterance, resolves it against the
// menu and adds every matched item to the caller's cart, one unit per
// counted quantity. Unmatched intents are dropped, never an error.
func (s *Service) OrderFromTranscript(
	ctx context.Context,
	userID string,
	transcript string,
) ([]Intent, []Match, error) {

	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, nil, err
	}

	// sold-out items cannot be ordered by voice either
	available := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}

	intents := ParseOrder(transcript)
	matches := MatchIntents(intents, available)

	for _, match := range matches {
		for i := 0; i < match.Quantity; i++ {
			s.carts.AddItem(userID, match.Item)
		}
	}

	s.logger.Infow("voice order processed",
		"user_id", userID,
		"intents", len(intents),
		"matched", len(matches),
	)

	return intents, matches, nil
}

// Listen consumes a recognizer's transcript stream until it closes or
// the context is cancelled, feeding each utterance through the order
// pipeline. The recognizer decides when transcripts arrive; this side
// only reacts.
func (s *Service) Listen(ctx context.Context, userID string, rec Recognizer) error {
	if err := rec.Start(); err != nil {
		return err
	}
	defer rec.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case transcript, ok := <-rec.Transcripts():
			if !ok {
				return nil
			}
			if _, _, err := s.OrderFromTranscript(ctx, userID, transcript); err != nil {
				s.logger.Errorw("voice order failed", "user_id", userID, "error", err)
			}
		}
	}
}
