package workflow_test

import (
	"errors"
	"testing"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	statePending    workflow.State = "PENDING"
	stateProcessing workflow.State = "PROCESSING"
	stateDone       workflow.State = "DONE"
)

func testDefinition(guardErr error) workflow.Definition {
	return workflow.Definition{
		Entity: "TEST",
		Edges: []workflow.Edge{
			{
				Name: "advance",
				From: []workflow.State{statePending},
				To:   stateProcessing,
				Guard: func(_ any, _ workflow.TransitionContext) error {
					return guardErr
				},
			},
			{
				Name: "finish",
				From: []workflow.State{stateProcessing},
				To:   stateDone,
			},
		},
	}
}

func TestDefinitionApply(t *testing.T) {
	tc := workflow.TransitionContext{Actor: workflow.Actor{ID: kernel.NewUUID()}}

	t.Run("legal transition returns target edge", func(t *testing.T) {
		edge, err := testDefinition(nil).Apply(statePending, "advance", nil, tc)
		require.NoError(t, err)
		assert.Equal(t, stateProcessing, edge.To)
	})

	t.Run("unknown transition is a guard violation", func(t *testing.T) {
		_, err := testDefinition(nil).Apply(statePending, "launch", nil, tc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrGuardViolation))
	})

	t.Run("known transition from wrong state is a guard violation", func(t *testing.T) {
		_, err := testDefinition(nil).Apply(stateDone, "advance", nil, tc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrGuardViolation))
	})

	t.Run("guard rejection propagates", func(t *testing.T) {
		guardErr := errs.NewGuardViolationError("advance", "payload incomplete")
		_, err := testDefinition(guardErr).Apply(statePending, "advance", nil, tc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrGuardViolation))
	})

	t.Run("nil guard passes", func(t *testing.T) {
		edge, err := testDefinition(nil).Apply(stateProcessing, "finish", nil, tc)
		require.NoError(t, err)
		assert.Equal(t, stateDone, edge.To)
	})
}

func TestEffectConstructors(t *testing.T) {
	userID := kernel.NewUUID()
	laneID := kernel.NewUUID()

	e := workflow.NotifyUser(userID, "subj", "body")
	assert.Equal(t, workflow.EffectNotifyUser, e.Kind)
	assert.Equal(t, userID, e.UserID)

	e = workflow.NotifyRole("PRICING", "subj", "body", true)
	assert.Equal(t, workflow.EffectNotifyRole, e.Kind)
	assert.True(t, e.ExcludeActor)

	e = workflow.NotifyGroup(laneID, "subj", "body")
	assert.Equal(t, workflow.EffectNotifyGroup, e.Kind)
	assert.Equal(t, laneID.String(), e.Meta["tradeLaneId"])
}
