// Package http exposes the MES use cases over a REST API built on Echo.
// Handlers bind and validate request DTOs, dispatch to command and query
// handlers, and map domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"
	"mes/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createWorkOrderHandler       commands.CreateWorkOrderCommandHandler
	changeWorkOrderStatusHandler commands.ChangeWorkOrderStatusCommandHandler
	createShipmentHandler        commands.CreateShipmentCommandHandler

	// Query handlers
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler
	getWorkOrderHandler  queries.GetWorkOrderQueryHandler
	getShipmentsHandler  queries.GetShipmentsQueryHandler

	validator *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	changeWorkOrderStatusHandler commands.ChangeWorkOrderStatusCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
) *Server {
	return &Server{
		createWorkOrderHandler:       createWorkOrderHandler,
		changeWorkOrderStatusHandler: changeWorkOrderStatusHandler,
		createShipmentHandler:        createShipmentHandler,
		getWorkOrdersHandler:         getWorkOrdersHandler,
		getWorkOrderHandler:          getWorkOrderHandler,
		getShipmentsHandler:          getShipmentsHandler,
		validator:                    validator.New(),
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders", s.GetWorkOrders)
	api.GET("/work-orders/:id", s.GetWorkOrder)
	api.POST("/work-orders/:id/status", s.ChangeWorkOrderStatus)
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipments)
	e.GET("/health", s.Health)
}

// CreateWorkOrder handles POST /api/v1/work-orders.
// Issues the next WO document number and creates the work order in Draft.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req createWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), req.ProductCode, req.Quantity, req.PlannedStart)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	wo, err := s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, workOrderResponseFromDomain(wo))
}

// GetWorkOrders handles GET /api/v1/work-orders.
// An optional status query parameter narrows the result to one lifecycle
// state; an unknown status name is a 400.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	var query queries.GetWorkOrdersQuery
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := workorder.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		query, err = queries.NewGetWorkOrdersQueryWithStatus(status)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	} else {
		query = queries.NewGetWorkOrdersQuery()
	}

	orders, err := s.getWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	response := make([]workOrderResponse, len(orders))
	for i, wo := range orders {
		response[i] = workOrderResponseFromReadModel(wo)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkOrder handles GET /api/v1/work-orders/:id.
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid work order id")
	}

	query, err := queries.NewGetWorkOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	wo, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workOrderResponseFromReadModel(*wo))
}

// ChangeWorkOrderStatus handles POST /api/v1/work-orders/:id/status.
// Legal transitions return 200 with the updated work order; lifecycle
// violations return 422 with the current status and the allowed set.
func (s *Server) ChangeWorkOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid work order id")
	}

	var req changeWorkOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validator.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := workorder.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(id, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	wo, err := s.changeWorkOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workOrderResponseFromDomain(wo))
}

// CreateShipment handles POST /api/v1/shipments.
// Issues the next SHP document number and registers the shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	workOrderID, err := kernel.UUIDFromString(req.WorkOrderID)
	if err != nil {
		return badRequest(ctx, "invalid work order id")
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shp, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResponseFromDomain(shp))
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), queries.NewGetShipmentsQuery())
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	response := make([]shipmentResponse, len(shipments))
	for i, shp := range shipments {
		response[i] = shipmentResponseFromReadModel(shp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// mapDomainError translates use case failures into HTTP responses:
// lifecycle violations are 422 with the allowed transitions, missing objects
// are 404, optimistic-concurrency losses are 409, validation failures are
// 400, and everything else is 500 without leaking internals.
func (s *Server) mapDomainError(ctx echo.Context, err error) error {
	var transitionErr *workorder.InvalidTransitionError
	switch {
	case errors.As(err, &transitionErr):
		allowed := make([]string, len(transitionErr.Allowed))
		for i, status := range transitionErr.Allowed {
			allowed[i] = status.String()
		}
		return ctx.JSON(http.StatusUnprocessableEntity, invalidTransitionResponse{
			Code:          codeInvalidTransition,
			Message:       transitionErr.Error(),
			CurrentStatus: transitionErr.Current.String(),
			Allowed:       allowed,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    codeNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    codeConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    codeInternalError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    codeBadRequest,
		Message: message,
	})
}
