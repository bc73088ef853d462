// Package http provides the inbound HTTP adapter. It translates REST
// requests into commands and queries and hands transition effects to the
// notification publisher after the business operation commits.
package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"freightflow/internal/core/application/notify"
	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/booking"
	"freightflow/internal/core/domain/model/itinerary"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/raterequest"
	"freightflow/internal/core/domain/model/user"
	"freightflow/internal/core/domain/model/workflow"
	"freightflow/internal/pkg/errs"
)

// QuoteValidityCheck verifies that a booking's referenced quote is still
// valid at confirmation time. Injected by the composition root; nil is
// permissive.
type QuoteValidityCheck func(ctx context.Context, b *booking.BookingRequest) error

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	transitionHandler               commands.TransitionCommandHandler
	createRateRequestHandler        commands.CreateRateRequestCommandHandler
	addLineQuoteHandler             commands.AddLineQuoteCommandHandler
	requestRateUpdateHandler        commands.RequestRateUpdateCommandHandler
	createBookingRequestHandler     commands.CreateBookingRequestCommandHandler
	addRoDocumentHandler            commands.AddRoDocumentCommandHandler
	openJobHandler                  commands.OpenJobCommandHandler
	completeJobHandler              commands.CompleteJobCommandHandler
	createItineraryHandler          commands.CreateItineraryCommandHandler
	addItineraryItemHandler         commands.AddItineraryItemCommandHandler
	createCustomerHandler           commands.CreateCustomerCommandHandler
	updateCustomerHandler           commands.UpdateCustomerCommandHandler
	markNotificationReadHandler     commands.MarkNotificationReadCommandHandler
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler
	getRateRequestsHandler          queries.GetRateRequestsQueryHandler
	getProcessedPercentageHandler   queries.GetProcessedPercentageQueryHandler
	getUserNotificationsHandler     queries.GetUserNotificationsQueryHandler
	publisher                       *notify.Publisher
	quoteValidity                   QuoteValidityCheck
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	transitionHandler commands.TransitionCommandHandler,
	createRateRequestHandler commands.CreateRateRequestCommandHandler,
	addLineQuoteHandler commands.AddLineQuoteCommandHandler,
	requestRateUpdateHandler commands.RequestRateUpdateCommandHandler,
	createBookingRequestHandler commands.CreateBookingRequestCommandHandler,
	addRoDocumentHandler commands.AddRoDocumentCommandHandler,
	openJobHandler commands.OpenJobCommandHandler,
	completeJobHandler commands.CompleteJobCommandHandler,
	createItineraryHandler commands.CreateItineraryCommandHandler,
	addItineraryItemHandler commands.AddItineraryItemCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler,
	getRateRequestsHandler queries.GetRateRequestsQueryHandler,
	getProcessedPercentageHandler queries.GetProcessedPercentageQueryHandler,
	getUserNotificationsHandler queries.GetUserNotificationsQueryHandler,
	publisher *notify.Publisher,
	quoteValidity QuoteValidityCheck,
) *Server {
	return &Server{
		transitionHandler:               transitionHandler,
		createRateRequestHandler:        createRateRequestHandler,
		addLineQuoteHandler:             addLineQuoteHandler,
		requestRateUpdateHandler:        requestRateUpdateHandler,
		createBookingRequestHandler:     createBookingRequestHandler,
		addRoDocumentHandler:            addRoDocumentHandler,
		openJobHandler:                  openJobHandler,
		completeJobHandler:              completeJobHandler,
		createItineraryHandler:          createItineraryHandler,
		addItineraryItemHandler:         addItineraryItemHandler,
		createCustomerHandler:           createCustomerHandler,
		updateCustomerHandler:           updateCustomerHandler,
		markNotificationReadHandler:     markNotificationReadHandler,
		markAllNotificationsReadHandler: markAllNotificationsReadHandler,
		getRateRequestsHandler:          getRateRequestsHandler,
		getProcessedPercentageHandler:   getProcessedPercentageHandler,
		getUserNotificationsHandler:     getUserNotificationsHandler,
		publisher:                       publisher,
		quoteValidity:                   quoteValidity,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/rate-requests", s.CreateRateRequest)
	api.GET("/rate-requests", s.GetRateRequests)
	api.POST("/rate-requests/:id/transitions/:transition", s.TransitionRateRequest)
	api.GET("/rate-requests/:id/processed-percentage", s.GetProcessedPercentage)
	api.POST("/rate-requests/:id/quotes", s.AddLineQuote)
	api.POST("/rate-updates", s.RequestRateUpdate)

	api.POST("/booking-requests", s.CreateBookingRequest)
	api.POST("/booking-requests/:id/transitions/:transition", s.TransitionBookingRequest)
	api.POST("/booking-requests/:id/ro-documents", s.AddRoDocument)
	api.POST("/booking-requests/:id/jobs", s.OpenJob)
	api.POST("/booking-requests/:id/jobs/:jobId/completions", s.CompleteJob)

	api.POST("/itineraries", s.CreateItinerary)
	api.POST("/itineraries/:id/items", s.AddItineraryItem)
	api.POST("/itineraries/:id/transitions/:transition", s.TransitionItinerary)

	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.POST("/customers/:id/transitions/:transition", s.TransitionCustomer)

	api.GET("/users/:id/notifications", s.GetUserNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateRateRequest handles POST /api/v1/rate-requests. The actor becomes
// the salesperson on the request.
func (s *Server) CreateRateRequest(ctx echo.Context) error {
	var body createRateRequestRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	polID, err := parseUUID("polId", body.PolID)
	if err != nil {
		return respondError(ctx, err)
	}
	podID, err := parseUUID("podId", body.PodID)
	if err != nil {
		return respondError(ctx, err)
	}
	equipTypeID, err := parseUUID("equipTypeId", body.EquipTypeID)
	if err != nil {
		return respondError(ctx, err)
	}
	preferredLineID, err := parseOptionalUUID("preferredLineId", body.PreferredLineID)
	if err != nil {
		return respondError(ctx, err)
	}
	customerID, err := parseOptionalUUID("customerId", body.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	rateRequestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRateRequestCommand(
		rateRequestID,
		raterequest.Mode(body.Mode),
		raterequest.Type(body.Type),
		polID, podID, equipTypeID,
		preferredLineID,
		body.Weight,
		body.CargoReadyDate,
		body.VesselRequired,
		actor.ID,
		customerID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	effects, err := s.createRateRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.publisher.Publish(ctx.Request().Context(), effects, actor)
	return ctx.JSON(http.StatusCreated, map[string]string{"id": rateRequestID.String()})
}

// GetRateRequests handles GET /api/v1/rate-requests.
func (s *Server) GetRateRequests(ctx echo.Context) error {
	var salespersonID *kernel.UUID
	if raw := ctx.QueryParam("salespersonId"); raw != "" {
		id, err := parseUUID("salespersonId", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		salespersonID = &id
	}

	query, err := queries.NewGetRateRequestsQuery(ctx.QueryParam("status"), salespersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getRateRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rows)
}

// TransitionRateRequest handles the respond, complete, and reject
// transitions of the rate request lifecycle.
func (s *Server) TransitionRateRequest(ctx echo.Context) error {
	name := workflow.TransitionName(ctx.Param("transition"))

	var payload any
	switch name {
	case raterequest.TransitionRespond:
		var body respondRequest
		if err := ctx.Bind(&body); err != nil {
			return respondBindError(ctx)
		}

		lineID, err := parseOptionalUUID("lineId", body.LineID)
		if err != nil {
			return respondError(ctx, err)
		}
		equipTypeID, err := parseOptionalUUID("equipTypeId", body.EquipTypeID)
		if err != nil {
			return respondError(ctx, err)
		}

		payload = raterequest.RespondPayload{
			LineNo:      body.LineNo,
			LineID:      lineID,
			EquipTypeID: equipTypeID,
			VesselName:  body.VesselName,
			ETA:         body.ETA,
			ETD:         body.ETD,
			FclCutoff:   body.FclCutoff,
			DocCutoff:   body.DocCutoff,
			ValidTo:     body.ValidTo,
			ChargesJSON: body.Charges,
		}
	case raterequest.TransitionReject:
		var body rejectRequest
		if err := ctx.Bind(&body); err != nil {
			return respondBindError(ctx)
		}
		payload = raterequest.RejectPayload{Remark: body.Remark}
	}

	return s.applyTransition(ctx, workflow.EntityRateRequest, name, payload)
}

// GetProcessedPercentage handles GET /api/v1/rate-requests/:id/processed-percentage.
func (s *Server) GetProcessedPercentage(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProcessedPercentageQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	percentage, err := s.getProcessedPercentageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"processedPercentage": percentage})
}

// AddLineQuote handles POST /api/v1/rate-requests/:id/quotes. The new quote
// becomes the selected one for the rate request.
func (s *Server) AddLineQuote(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body addLineQuoteRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	lineID, err := parseUUID("lineId", body.LineID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddLineQuoteCommand(id, lineID, body.Terms, body.ValidTo)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addLineQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RequestRateUpdate handles POST /api/v1/rate-updates, notifying the pricing
// team assigned to the trade lane.
func (s *Server) RequestRateUpdate(ctx echo.Context) error {
	var body requestRateUpdateRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	tradeLaneID, err := parseUUID("tradeLaneId", body.TradeLaneID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestRateUpdateCommand(tradeLaneID, actor.ID, body.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	effects, err := s.requestRateUpdateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.publisher.Publish(ctx.Request().Context(), effects, actor)
	return ctx.NoContent(http.StatusAccepted)
}

// CreateBookingRequest handles POST /api/v1/booking-requests.
func (s *Server) CreateBookingRequest(ctx echo.Context) error {
	var body createBookingRequestRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID, err := parseUUID("customerId", body.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	rateRefID, err := parseUUID("rateRefId", body.RateRefID)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingRequestID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingRequestCommand(
		bookingRequestID, customerID,
		booking.RateSource(body.RateSource),
		rateRefID, actor.ID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createBookingRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": bookingRequestID.String()})
}

// TransitionBookingRequest handles the confirm and cancel transitions of
// the booking request lifecycle.
func (s *Server) TransitionBookingRequest(ctx echo.Context) error {
	name := workflow.TransitionName(ctx.Param("transition"))

	var payload any
	switch name {
	case booking.TransitionConfirm:
		var body confirmRequest
		if err := ctx.Bind(&body); err != nil {
			return respondBindError(ctx)
		}

		confirm := booking.ConfirmPayload{OverrideValidity: body.OverrideValidity}
		if s.quoteValidity != nil {
			reqCtx := ctx.Request().Context()
			confirm.ValidityCheck = func(b *booking.BookingRequest) error {
				return s.quoteValidity(reqCtx, b)
			}
		}
		payload = confirm
	case booking.TransitionCancel:
		var body cancelRequest
		if err := ctx.Bind(&body); err != nil {
			return respondBindError(ctx)
		}
		payload = booking.CancelPayload{Reason: body.Reason}
	}

	return s.applyTransition(ctx, workflow.EntityBookingRequest, name, payload)
}

// AddRoDocument handles POST /api/v1/booking-requests/:id/ro-documents.
func (s *Server) AddRoDocument(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body addRoDocumentRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewAddRoDocumentCommand(id, body.Number, body.FileURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addRoDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// OpenJob handles POST /api/v1/booking-requests/:id/jobs. Jobs can only be
// opened on confirmed bookings; the actor becomes the opener.
func (s *Server) OpenJob(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body openJobRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewOpenJobCommand(id, body.ErpJobNo, actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.openJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CompleteJob handles POST /api/v1/booking-requests/:id/jobs/:jobId/completions.
func (s *Server) CompleteJob(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := parseUUID("jobId", ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body completeJobRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteJobCommand(id, jobID, actor.ID, body.Details)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateItinerary handles POST /api/v1/itineraries. The actor becomes the
// itinerary owner; the owning SBU is taken from the actor as well.
func (s *Server) CreateItinerary(ctx echo.Context) error {
	var body createItineraryRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itineraryID := kernel.NewUUID()
	cmd, err := commands.NewCreateItineraryCommand(
		itineraryID, actor.ID, actor.SBUID,
		itinerary.Type(body.Type), body.WeekStart,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createItineraryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itineraryID.String()})
}

// AddItineraryItem handles POST /api/v1/itineraries/:id/items.
func (s *Server) AddItineraryItem(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body addItineraryItemRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	customerID, err := parseOptionalUUID("customerId", body.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	leadID, err := parseOptionalUUID("leadId", body.LeadID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddItineraryItemCommand(
		id, body.Seq, customerID, leadID, body.Purpose, body.PlannedDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addItineraryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// TransitionItinerary handles the submit, approve, and reject transitions
// of the itinerary lifecycle.
func (s *Server) TransitionItinerary(ctx echo.Context) error {
	name := workflow.TransitionName(ctx.Param("transition"))

	var payload any
	switch name {
	case itinerary.TransitionApprove, itinerary.TransitionReject:
		var body decisionRequest
		if err := ctx.Bind(&body); err != nil {
			return respondBindError(ctx)
		}
		payload = itinerary.DecisionPayload{Note: body.Note}
	}

	return s.applyTransition(ctx, workflow.EntityItinerary, name, payload)
}

// CreateCustomer handles POST /api/v1/customers. New customers start in
// PENDING and await a management decision.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body customerRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, body.CompanyName, body.ContactPerson, body.Email, body.Phone, actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": customerID.String()})
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body customerRequest
	if err = ctx.Bind(&body); err != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		id, body.CompanyName, body.ContactPerson, body.Email, body.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionCustomer handles the approve and reject transitions of the
// customer approval lifecycle.
func (s *Server) TransitionCustomer(ctx echo.Context) error {
	name := workflow.TransitionName(ctx.Param("transition"))
	return s.applyTransition(ctx, workflow.EntityCustomer, name, nil)
}

// GetUserNotifications handles GET /api/v1/users/:id/notifications.
func (s *Server) GetUserNotifications(ctx echo.Context) error {
	userID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	limit := 20
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, convErr := strconv.Atoi(raw)
		if convErr != nil || parsed <= 0 {
			return respondError(ctx, errs.NewValueIsInvalidError("limit"))
		}
		limit = parsed
	}

	query, err := queries.NewGetUserNotificationsQuery(userID, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getUserNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rows)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read. The
// read flip is scoped to the acting user.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id, actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.markAllNotificationsReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"updated": updated})
}

// applyTransition runs one lifecycle transition and enqueues its effects
// once the transaction has committed.
func (s *Server) applyTransition(
	ctx echo.Context,
	entity workflow.EntityType,
	name workflow.TransitionName,
	payload any,
) error {
	id, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionCommand(entity, id, name, actor, payload)
	if err != nil {
		return respondError(ctx, err)
	}

	effects, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.publisher.Publish(ctx.Request().Context(), effects, actor)
	return ctx.NoContent(http.StatusNoContent)
}

// actorFromRequest builds the acting user from the identity headers set by
// the gateway. Authentication happened upstream; the adapter only relays
// identity into guard evaluation.
func actorFromRequest(ctx echo.Context) (workflow.Actor, error) {
	rawID := ctx.Request().Header.Get("X-User-Id")
	if rawID == "" {
		return workflow.Actor{}, errs.NewValueIsRequiredError("X-User-Id")
	}

	id, err := parseUUID("X-User-Id", rawID)
	if err != nil {
		return workflow.Actor{}, err
	}

	actor := workflow.Actor{
		ID:   id,
		Role: user.Role(ctx.Request().Header.Get("X-User-Role")),
	}

	if rawSBU := ctx.Request().Header.Get("X-Sbu-Id"); rawSBU != "" {
		sbuID, sbuErr := parseUUID("X-Sbu-Id", rawSBU)
		if sbuErr != nil {
			return workflow.Actor{}, sbuErr
		}
		actor.SBUID = &sbuID
	}

	return actor, nil
}
