// Package notify turns workflow effects into durable notification queue
// items. Recipient resolution (role fan-out, pricing-team membership)
// happens here, at enqueue time; delivery is the dispatcher's job.
package notify

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/core/ports"
	"freightflow/pkg/logger"
	"freightflow/pkg/metrics"
)

// UoW is the transaction boundary the publisher enqueues through.
type UoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	UserRepository() ports.UserRepository
	NotificationRepository() ports.NotificationRepository
}

// UoWFactory creates publisher unit of work instances.
type UoWFactory interface {
	Create() UoW
}

// Publisher resolves workflow effects into per-recipient queue items.
//
// Publishing is best-effort by contract: the business operation that
// emitted the effects has already committed, so enqueue failures are
// logged and swallowed rather than surfaced. Workflow notifications are
// in-app SYSTEM messages; EMAIL and SMS items enter the queue through
// channel-specific callers.
type Publisher struct {
	uowFactory UoWFactory
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewPublisher creates an effect publisher.
func NewPublisher(uowFactory UoWFactory, log logger.Logger, m *metrics.Metrics) *Publisher {
	return &Publisher{
		uowFactory: uowFactory,
		log:        log,
		metrics:    m,
	}
}

// Publish enqueues the effects' resolved recipients. It never returns an
// error to the caller.
func (p *Publisher) Publish(ctx context.Context, effects []workflow.Effect, actor workflow.Actor) {
	if len(effects) == 0 {
		return
	}

	if err := p.publish(ctx, effects, actor); err != nil {
		p.log.Error("failed to enqueue notifications", "error", err)
	}
}

func (p *Publisher) publish(ctx context.Context, effects []workflow.Effect, actor workflow.Actor) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var items []*notification.QueueItem
	for _, effect := range effects {
		resolved, err := p.resolve(ctx, uow.UserRepository(), effect, actor)
		if err != nil {
			return err
		}
		items = append(items, resolved...)
	}

	if len(items) == 0 {
		return uow.Commit(ctx)
	}

	if err := uow.NotificationRepository().Enqueue(ctx, items); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for range items {
		p.metrics.NotificationsQueued.Inc()
	}
	return nil
}

// resolve expands one effect into queue items, one per recipient.
func (p *Publisher) resolve(ctx context.Context, users ports.UserRepository, effect workflow.Effect, actor workflow.Actor) ([]*notification.QueueItem, error) {
	switch effect.Kind {
	case workflow.EffectNotifyUser:
		item, err := notification.NewQueueItem(
			effect.UserID, notification.ChannelSystem, effect.Subject, effect.Body, effect.Meta,
		)
		if err != nil {
			return nil, err
		}
		return []*notification.QueueItem{item}, nil

	case workflow.EffectNotifyRole:
		recipients, err := users.GetActiveByRole(ctx, effect.Role)
		if err != nil {
			return nil, err
		}
		return p.fanOut(recipients, effect, actor)

	case workflow.EffectNotifyGroup:
		recipients, err := users.GetPricingTeamByTradeLane(ctx, effect.TradeLaneID)
		if err != nil {
			return nil, err
		}
		return p.fanOut(recipients, effect, actor)
	}

	p.log.Warn("dropping effect of unknown kind", "kind", string(effect.Kind))
	return nil, nil
}

func (p *Publisher) fanOut(recipients []*user.User, effect workflow.Effect, actor workflow.Actor) ([]*notification.QueueItem, error) {
	items := make([]*notification.QueueItem, 0, len(recipients))
	for _, recipient := range recipients {
		if effect.ExcludeActor && recipient.ID().IsEqual(actor.ID) {
			continue
		}

		item, err := notification.NewQueueItem(
			recipient.ID(), notification.ChannelSystem, effect.Subject, effect.Body, effect.Meta,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
