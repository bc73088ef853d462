package workflow

import (
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/user"
)

// EffectKind tags the variants of a notification effect.
type EffectKind string

const (
	// EffectNotifyUser targets a single user.
	EffectNotifyUser EffectKind = "NOTIFY_USER"
	// EffectNotifyRole fans out to every active user holding a role.
	EffectNotifyRole EffectKind = "NOTIFY_ROLE"
	// EffectNotifyGroup fans out to the pricing team assigned to a trade lane.
	EffectNotifyGroup EffectKind = "NOTIFY_GROUP"
)

// Effect is a tagged variant describing a notification a transition wants
// delivered. The dispatch subsystem resolves role and group membership at
// enqueue time; the effect itself is immutable data.
type Effect struct {
	Kind EffectKind

	// UserID is the target for EffectNotifyUser.
	UserID kernel.UUID
	// Role is the fan-out role for EffectNotifyRole.
	Role user.Role
	// ExcludeActor omits the triggering actor from a role fan-out.
	ExcludeActor bool
	// TradeLaneID keys the pricing-team membership for EffectNotifyGroup.
	TradeLaneID kernel.UUID

	Subject string
	Body    string
	Meta    map[string]any
}

// NotifyUser builds an effect targeting one user on the SYSTEM channel.
func NotifyUser(userID kernel.UUID, subject, body string) Effect {
	return Effect{Kind: EffectNotifyUser, UserID: userID, Subject: subject, Body: body}
}

// NotifyRole builds an effect fanning out to every active holder of role.
func NotifyRole(role user.Role, subject, body string, excludeActor bool) Effect {
	return Effect{Kind: EffectNotifyRole, Role: role, Subject: subject, Body: body, ExcludeActor: excludeActor}
}

// NotifyGroup builds an effect fanning out to the pricing team assigned to
// the given trade lane.
func NotifyGroup(tradeLaneID kernel.UUID, subject, body string) Effect {
	return Effect{
		Kind:        EffectNotifyGroup,
		TradeLaneID: tradeLaneID,
		Subject:     subject,
		Body:        body,
		Meta:        map[string]any{"tradeLaneId": tradeLaneID.String()},
	}
}
