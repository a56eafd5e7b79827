// Package http exposes the order-entry workflow over a JSON API.
// It coordinates between HTTP handlers and application use cases: draft
// sessions live in process memory, committed orders go through the
// command and query handlers.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the order manager.
type Server struct {
	// Command handlers
	commitOrderHandler commands.CommitOrderCommandHandler
	removeOrderHandler commands.RemoveOrderCommandHandler

	// Query handlers
	searchOrdersHandler queries.SearchOrdersQueryHandler
	exportOrderHandler  queries.ExportOrderQueryHandler

	orders ports.OrderRepository
	drafts *DraftStore
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The repository is used read-only, to open edit drafts from
// stored orders.
func NewServer(
	commitOrderHandler commands.CommitOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	exportOrderHandler queries.ExportOrderQueryHandler,
	orders ports.OrderRepository,
) *Server {
	return &Server{
		commitOrderHandler:  commitOrderHandler,
		removeOrderHandler:  removeOrderHandler,
		searchOrdersHandler: searchOrdersHandler,
		exportOrderHandler:  exportOrderHandler,
		orders:              orders,
		drafts:              NewDraftStore(),
		logger:              slog.With("component", "http"),
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/drafts", s.CreateDraft)
	api.GET("/drafts/:id", s.GetDraft)
	api.DELETE("/drafts/:id", s.DiscardDraft)
	api.PATCH("/drafts/:id/customer", s.SetDraftCustomer)
	api.POST("/drafts/:id/advance", s.AdvanceDraft)
	api.POST("/drafts/:id/back", s.DraftBackToCustomer)
	api.POST("/drafts/:id/lines", s.AddDraftLine)
	api.POST("/drafts/:id/lines/:index/edit", s.EditDraftLine)
	api.DELETE("/drafts/:id/lines/:index", s.RemoveDraftLine)
	api.POST("/drafts/:id/commit", s.CommitDraft)

	api.GET("/orders", s.SearchOrders)
	api.DELETE("/orders/:id", s.RemoveOrder)
	api.GET("/orders/:id/export", s.ExportOrder)
}

// CreateDraft handles POST /api/v1/drafts - opens a draft session.
// With ?from=ORD-NNN the draft edits that stored order and starts at the
// product-lines step; without it a blank new-order draft is opened.
func (s *Server) CreateDraft(ctx echo.Context) error {
	var draft *order.Draft

	if from := ctx.QueryParam("from"); from != "" {
		orderID, err := kernel.ParseOrderID(from)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}

		existing, err := s.orders.Get(ctx.Request().Context(), orderID)
		if err != nil {
			return s.orderError(ctx, err)
		}

		draft, err = order.NewDraftFromOrder(existing)
		if err != nil {
			return s.orderError(ctx, err)
		}
	} else {
		draft = order.NewDraft()
	}

	id := s.drafts.Put(draft)
	s.logger.Info("draft opened", "draft", id, "new", draft.IsNew())
	return s.respondDraft(ctx, http.StatusCreated, id, draft)
}

// GetDraft handles GET /api/v1/drafts/:id - returns the draft state.
func (s *Server) GetDraft(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// DiscardDraft handles DELETE /api/v1/drafts/:id - cancels a draft.
// Nothing entered into the draft survives; the order collection is not
// touched.
func (s *Server) DiscardDraft(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid draft id")
	}

	s.drafts.Delete(id)
	return ctx.NoContent(http.StatusNoContent)
}

// SetDraftCustomer handles PATCH /api/v1/drafts/:id/customer - stores
// customer field values. The body is a flat object of wire field names to
// values, applied as one batch: a rejected field leaves the profile
// unchanged. Completeness is re-evaluated and reported in the response.
func (s *Server) SetDraftCustomer(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	var fields map[string]string
	if err = ctx.Bind(&fields); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	values := make(map[customer.Field]string, len(fields))
	for field, value := range fields {
		values[customer.Field(field)] = value
	}

	if err = draft.SetCustomerFields(values); err != nil {
		return badRequest(ctx, "Invalid customer field: "+err.Error())
	}

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// AdvanceDraft handles POST /api/v1/drafts/:id/advance - moves the draft
// to the product-lines step. Fails with 422 while the customer profile is
// incomplete.
func (s *Server) AdvanceDraft(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	if err = draft.AdvanceStep(); err != nil {
		return s.orderError(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// DraftBackToCustomer handles POST /api/v1/drafts/:id/back - returns the
// draft to the customer step. Always succeeds; entered lines are kept.
func (s *Server) DraftBackToCustomer(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	if err = draft.ReturnToCustomerStep(); err != nil {
		return s.orderError(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// AddDraftLine handles POST /api/v1/drafts/:id/lines - commits the line
// buffer. Appends a new line, or replaces the line under edit. Blank
// input is accepted and changes nothing.
func (s *Server) AddDraftLine(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	var req AddLineRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err = draft.AddOrUpdateLine(req.Name, req.Price, req.Quantity); err != nil {
		return s.orderError(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// EditDraftLine handles POST /api/v1/drafts/:id/lines/:index/edit - loads
// a line into the entry buffer for in-place replacement.
func (s *Server) EditDraftLine(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Invalid line index")
	}

	if err = draft.StartLineEdit(index); err != nil {
		return s.orderError(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// RemoveDraftLine handles DELETE /api/v1/drafts/:id/lines/:index -
// deletes a line from the draft. An out-of-range index changes nothing.
func (s *Server) RemoveDraftLine(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Invalid line index")
	}

	if err = draft.RemoveLine(index); err != nil {
		return s.orderError(ctx, err)
	}

	return s.respondDraft(ctx, http.StatusOK, id, draft)
}

// CommitDraft handles POST /api/v1/drafts/:id/commit - finalizes the
// draft into the order collection. On success the session is closed and
// the assigned identifier returned; a not-ready draft fails with 422 and
// stays open.
func (s *Server) CommitDraft(ctx echo.Context) error {
	id, draft, release, err := s.draftFromPath(ctx)
	if err != nil {
		return s.orderError(ctx, err)
	}
	defer release()

	cmd, err := commands.NewCommitOrderCommand(draft, time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid commit request: "+err.Error())
	}

	orderID, err := s.commitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderError(ctx, err)
	}

	s.drafts.Delete(id)
	s.logger.Info("draft committed", "draft", id, "order", orderID)
	return ctx.JSON(http.StatusOK, CommitResponse{ID: orderID.String()})
}

// SearchOrders handles GET /api/v1/orders - lists the collection, newest
// first, optionally filtered with ?q= (case-insensitive substring over
// identifier and customer name).
func (s *Server) SearchOrders(ctx echo.Context) error {
	query := queries.NewSearchOrdersQuery(ctx.QueryParam("q"))

	rows, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("order search failed", "error", err)
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderSummaryModel, len(rows))
	for i, row := range rows {
		response[i] = summaryFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RemoveOrder handles DELETE /api/v1/orders/:id - removes an order from
// the collection. Unknown identifiers succeed without effect; the
// identifier sequence does not rewind.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.Error("order removal failed", "order", orderID, "error", err)
		return internalError(ctx, "Failed to remove order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrder handles GET /api/v1/orders/:id/export - renders the order
// as a printable text document, stamped with the export time.
func (s *Server) ExportOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewExportOrderQuery(orderID, time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid export request: "+err.Error())
	}

	doc, err := s.exportOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orderError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return ctx.String(http.StatusOK, strings.Join(doc.Render(), "\n")+"\n")
}

// draftFromPath resolves the :id path parameter to an open draft session
// and locks the session for the duration of the request. On success the
// caller must invoke release when done with the draft. Failures come back
// as domain errors for the caller to map onto the response; nothing is
// written here.
func (s *Server) draftFromPath(ctx echo.Context) (uuid.UUID, *order.Draft, func(), error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.UUID{}, nil, nil, errs.NewValueIsInvalidErrorWithCause("draftID", err)
	}

	draft, release, ok := s.drafts.Acquire(id)
	if !ok {
		return uuid.UUID{}, nil, nil, errs.NewObjectNotFoundError("draftID", id)
	}

	return id, draft, release, nil
}

func (s *Server) respondDraft(ctx echo.Context, status int, id uuid.UUID, draft *order.Draft) error {
	resp, err := draftResponse(id, draft)
	if err != nil {
		s.logger.Error("draft projection failed", "draft", id, "error", err)
		return internalError(ctx, "Failed to render draft")
	}

	return ctx.JSON(status, resp)
}

// orderError maps domain errors to HTTP status codes: missing objects to
// 404, not-ready drafts to 422, bad input to 400, the rest to 500.
func (s *Server) orderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrCustomerInfoIncomplete),
		errors.Is(err, order.ErrNoProductLines):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidNumericInput),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		return internalError(ctx, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
