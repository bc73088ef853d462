package http

import (
	"encoding/json"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// createRateRequestRequest is the body for POST /api/v1/rate-requests.
type createRateRequestRequest struct {
	Mode            string    `json:"mode"`
	Type            string    `json:"type"`
	PolID           string    `json:"polId"`
	PodID           string    `json:"podId"`
	EquipTypeID     string    `json:"equipTypeId"`
	PreferredLineID *string   `json:"preferredLineId,omitempty"`
	Weight          float64   `json:"weight"`
	CargoReadyDate  time.Time `json:"cargoReadyDate"`
	VesselRequired  bool      `json:"vesselRequired"`
	CustomerID      *string   `json:"customerId,omitempty"`
}

// respondRequest is the payload body for the rate request "respond" transition.
type respondRequest struct {
	LineNo      int             `json:"lineNo"`
	LineID      *string         `json:"lineId,omitempty"`
	EquipTypeID *string         `json:"equipTypeId,omitempty"`
	VesselName  string          `json:"vesselName,omitempty"`
	ETA         *time.Time      `json:"eta,omitempty"`
	ETD         *time.Time      `json:"etd,omitempty"`
	FclCutoff   *time.Time      `json:"fclCutoff,omitempty"`
	DocCutoff   *time.Time      `json:"docCutoff,omitempty"`
	ValidTo     time.Time       `json:"validTo"`
	Charges     json.RawMessage `json:"charges,omitempty"`
}

// rejectRequest is the payload body for the rate request "reject" transition.
type rejectRequest struct {
	Remark string `json:"remark"`
}

// addLineQuoteRequest is the body for POST /api/v1/rate-requests/:id/quotes.
type addLineQuoteRequest struct {
	LineID  string          `json:"lineId"`
	Terms   json.RawMessage `json:"terms,omitempty"`
	ValidTo time.Time       `json:"validTo"`
}

// requestRateUpdateRequest is the body for POST /api/v1/rate-updates.
type requestRateUpdateRequest struct {
	TradeLaneID string `json:"tradeLaneId"`
	Note        string `json:"note"`
}

// createBookingRequestRequest is the body for POST /api/v1/booking-requests.
type createBookingRequestRequest struct {
	CustomerID string `json:"customerId"`
	RateSource string `json:"rateSource"`
	RateRefID  string `json:"rateRefId"`
}

// confirmRequest is the payload body for the booking "confirm" transition.
type confirmRequest struct {
	OverrideValidity bool `json:"overrideValidity"`
}

// cancelRequest is the payload body for the booking "cancel" transition.
type cancelRequest struct {
	Reason string `json:"reason"`
}

// addRoDocumentRequest is the body for POST /api/v1/booking-requests/:id/ro-documents.
type addRoDocumentRequest struct {
	Number  string `json:"number"`
	FileURL string `json:"fileUrl"`
}

// openJobRequest is the body for POST /api/v1/booking-requests/:id/jobs.
type openJobRequest struct {
	ErpJobNo string `json:"erpJobNo"`
}

// completeJobRequest is the body for job completion endpoints.
type completeJobRequest struct {
	Details json.RawMessage `json:"details,omitempty"`
}

// createItineraryRequest is the body for POST /api/v1/itineraries.
type createItineraryRequest struct {
	Type      string    `json:"type"`
	WeekStart time.Time `json:"weekStart"`
}

// addItineraryItemRequest is the body for POST /api/v1/itineraries/:id/items.
type addItineraryItemRequest struct {
	Seq         int       `json:"seq"`
	CustomerID  *string   `json:"customerId,omitempty"`
	LeadID      *string   `json:"leadId,omitempty"`
	Purpose     string    `json:"purpose"`
	PlannedDate time.Time `json:"plannedDate"`
}

// decisionRequest is the payload body for itinerary approve and reject.
type decisionRequest struct {
	Note string `json:"note,omitempty"`
}

// customerRequest is the body for customer creation and updates.
type customerRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// parseUUID converts a path or body parameter into a domain UUID.
func parseUUID(paramName, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// parseOptionalUUID converts an optional parameter into a domain UUID pointer.
func parseOptionalUUID(paramName string, value *string) (*kernel.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	id, err := parseUUID(paramName, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
