package booking

import (
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Job is an operational fulfillment unit opened in the ERP against a
// confirmed booking. A job with at least one completion is fulfilled.
type Job struct {
	id          kernel.UUID
	erpJobNo    string
	openedByID  kernel.UUID
	openedAt    time.Time
	completions []JobCompletion
}

// JobCompletion records one completion of a job by a CSE user.
// Completions are append-only.
type JobCompletion struct {
	id          kernel.UUID
	cseUserID   kernel.UUID
	detailsJSON []byte
	completedAt time.Time
}

// NewJob opens a job against a booking request.
func NewJob(erpJobNo string, openedByID kernel.UUID) (*Job, error) {
	if erpJobNo == "" {
		return nil, errs.NewValueIsRequiredError("erpJobNo")
	}
	if err := openedByID.Validate(); err != nil {
		return nil, err
	}

	return &Job{
		id:         kernel.NewUUID(),
		erpJobNo:   erpJobNo,
		openedByID: openedByID,
		openedAt:   time.Now(),
	}, nil
}

// RestoreJob reconstructs a job from persistence.
func RestoreJob(id kernel.UUID, erpJobNo string, openedByID kernel.UUID, openedAt time.Time, completions []JobCompletion) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Job{
		id:          id,
		erpJobNo:    erpJobNo,
		openedByID:  openedByID,
		openedAt:    openedAt,
		completions: completions,
	}, nil
}

// Complete appends a completion record.
func (j *Job) Complete(cseUserID kernel.UUID, detailsJSON []byte) (JobCompletion, error) {
	if err := cseUserID.Validate(); err != nil {
		return JobCompletion{}, err
	}

	completion := JobCompletion{
		id:          kernel.NewUUID(),
		cseUserID:   cseUserID,
		detailsJSON: detailsJSON,
		completedAt: time.Now(),
	}
	j.completions = append(j.completions, completion)
	return completion, nil
}

// ID returns the job identifier.
func (j *Job) ID() kernel.UUID { return j.id }

// ErpJobNo returns the ERP job number.
func (j *Job) ErpJobNo() string { return j.erpJobNo }

// OpenedBy returns who opened the job.
func (j *Job) OpenedBy() kernel.UUID { return j.openedByID }

// OpenedAt returns when the job was opened.
func (j *Job) OpenedAt() time.Time { return j.openedAt }

// Completions returns the append-only completion records.
func (j *Job) Completions() []JobCompletion { return j.completions }

// IsFulfilled reports whether the job has at least one completion.
func (j *Job) IsFulfilled() bool { return len(j.completions) > 0 }

// RestoreJobCompletion reconstructs a completion from persistence.
func RestoreJobCompletion(id, cseUserID kernel.UUID, detailsJSON []byte, completedAt time.Time) (JobCompletion, error) {
	if err := id.Validate(); err != nil {
		return JobCompletion{}, err
	}

	return JobCompletion{
		id:          id,
		cseUserID:   cseUserID,
		detailsJSON: detailsJSON,
		completedAt: completedAt,
	}, nil
}

// ID returns the completion identifier.
func (c JobCompletion) ID() kernel.UUID { return c.id }

// CseUser returns the completing CSE user.
func (c JobCompletion) CseUser() kernel.UUID { return c.cseUserID }

// DetailsJSON returns the opaque completion details.
func (c JobCompletion) DetailsJSON() []byte { return c.detailsJSON }

// CompletedAt returns when the completion was recorded.
func (c JobCompletion) CompletedAt() time.Time { return c.completedAt }
