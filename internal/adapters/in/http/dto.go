package http

import (
	"time"

	"mes/internal/core/application/usecases/queries"
	"mes/internal/core/domain/model/shipment"
	"mes/internal/core/domain/model/workorder"
)

// Error codes used in response bodies alongside the HTTP status.
const (
	codeBadRequest        = "BAD_REQUEST"
	codeNotFound          = "NOT_FOUND"
	codeConflict          = "CONFLICT"
	codeInvalidTransition = "INVALID_TRANSITION"
	codeInternalError     = "INTERNAL_ERROR"
)

type createWorkOrderRequest struct {
	ProductCode  string     `json:"productCode" validate:"required"`
	Quantity     int        `json:"quantity"    validate:"required,gt=0"`
	PlannedStart *time.Time `json:"plannedStart,omitempty"`
}

type changeWorkOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createShipmentRequest struct {
	WorkOrderID string `json:"workOrderId" validate:"required,uuid4"`
}

type workOrderResponse struct {
	ID           string     `json:"id"`
	Number       string     `json:"number"`
	ProductCode  string     `json:"productCode"`
	Quantity     int        `json:"quantity"`
	PlannedStart *time.Time `json:"plannedStart,omitempty"`
	Status       string     `json:"status"`
	ActualStart  *time.Time `json:"actualStart,omitempty"`
	ActualEnd    *time.Time `json:"actualEnd,omitempty"`
}

type shipmentResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	WorkOrderID string    `json:"workOrderId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// invalidTransitionResponse is the 422 body for lifecycle violations. It
// names the current status and the full set of legal next statuses so the
// caller can correct the request without consulting documentation.
type invalidTransitionResponse struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	CurrentStatus string   `json:"currentStatus"`
	Allowed       []string `json:"allowed"`
}

func workOrderResponseFromDomain(wo *workorder.WorkOrder) workOrderResponse {
	return workOrderResponse{
		ID:           wo.ID().String(),
		Number:       wo.Number().String(),
		ProductCode:  wo.ProductCode(),
		Quantity:     wo.Quantity(),
		PlannedStart: wo.PlannedStart(),
		Status:       wo.Status().String(),
		ActualStart:  wo.ActualStart(),
		ActualEnd:    wo.ActualEnd(),
	}
}

func workOrderResponseFromReadModel(wo queries.GetWorkOrdersQueryResponse) workOrderResponse {
	return workOrderResponse{
		ID:           wo.ID.String(),
		Number:       wo.Number,
		ProductCode:  wo.ProductCode,
		Quantity:     wo.Quantity,
		PlannedStart: wo.PlannedStart,
		Status:       wo.Status.String(),
		ActualStart:  wo.ActualStart,
		ActualEnd:    wo.ActualEnd,
	}
}

func shipmentResponseFromDomain(s *shipment.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:          s.ID().String(),
		Number:      s.Number().String(),
		WorkOrderID: s.WorkOrderID().String(),
		CreatedAt:   s.CreatedAt(),
	}
}

func shipmentResponseFromReadModel(s queries.GetShipmentsQueryResponse) shipmentResponse {
	return shipmentResponse{
		ID:          s.ID.String(),
		Number:      s.Number,
		WorkOrderID: s.WorkOrderID.String(),
		CreatedAt:   s.CreatedAt,
	}
}
