package commands

import (
	"context"

	"freightflow/internal/core/domain/model/raterequest"
)

// AddLineQuoteCommandHandler attaches a carrier quote to a rate request and
// makes it the single selected quote.
//
// The at-most-one-selected invariant is enforced here, not in the domain
// type: the handler loads the parent rate request with a row lock, so two
// concurrent additions to the same request serialize, and the repository
// clears every sibling's selected flag and inserts the new quote in the
// same transaction. Readers never observe zero or two selected quotes.
type AddLineQuoteCommandHandler struct {
	uowFactory RateRequestUoWFactory
}

// NewAddLineQuoteCommandHandler creates a handler for quote attachment.
func NewAddLineQuoteCommandHandler(uowFactory RateRequestUoWFactory) AddLineQuoteCommandHandler {
	return AddLineQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quote attachment command.
func (h *AddLineQuoteCommandHandler) Handle(ctx context.Context, cmd AddLineQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RateRequestRepository()
	if _, err := repo.GetForUpdate(ctx, cmd.RateRequestID()); err != nil {
		return err
	}

	quote, err := raterequest.NewLineQuote(cmd.RateRequestID(), cmd.LineID(), cmd.TermsJSON(), cmd.ValidTo())
	if err != nil {
		return err
	}

	if err = repo.ReplaceSelectedQuote(ctx, cmd.RateRequestID(), quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
