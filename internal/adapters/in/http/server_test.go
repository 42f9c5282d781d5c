package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	meshttp "mes/internal/adapters/in/http"
	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"
	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"
	"mes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	server           *meshttp.Server
	workOrderFactory *MockWorkOrderUoWFactory
	shipmentFactory  *MockShipmentUoWFactory
}

func newServerFixture() *serverFixture {
	workOrderFactory := new(MockWorkOrderUoWFactory)
	shipmentFactory := new(MockShipmentUoWFactory)

	server := meshttp.NewServer(
		commands.NewCreateWorkOrderCommandHandler(workOrderFactory),
		commands.NewChangeWorkOrderStatusCommandHandler(workOrderFactory),
		commands.NewCreateShipmentCommandHandler(shipmentFactory),
		queries.GetWorkOrdersQueryHandler{},
		queries.GetWorkOrderQueryHandler{},
		queries.GetShipmentsQueryHandler{},
	)

	return &serverFixture{
		server:           server,
		workOrderFactory: workOrderFactory,
		shipmentFactory:  shipmentFactory,
	}
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func (f *serverFixture) expectWorkOrderUoW() (*MockWorkOrderUoW, *MockWorkOrderRepository, *MockSequenceRepository) {
	uow := new(MockWorkOrderUoW)
	repo := new(MockWorkOrderRepository)
	sequenceRepo := new(MockSequenceRepository)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("WorkOrderRepository").Return(repo)
	uow.On("SequenceRepository").Return(sequenceRepo)
	f.workOrderFactory.On("Create").Return(uow).Once()

	return uow, repo, sequenceRepo
}

func TestCreateWorkOrder_Success(t *testing.T) {
	f := newServerFixture()
	uow, repo, sequenceRepo := f.expectWorkOrderUoW()
	sequenceRepo.On("Next", mock.Anything, docnumber.WorkOrder).Return(1, "20260221", nil).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/api/v1/work-orders",
		`{"productCode":"WIDGET-01","quantity":500}`)

	require.NoError(t, f.server.CreateWorkOrder(ctx))

	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "WO-20260221-001", body["number"])
	assert.Equal(t, "draft", body["status"])
	assert.Equal(t, "WIDGET-01", body["productCode"])
	assert.Equal(t, float64(500), body["quantity"])
	assert.NotContains(t, body, "actualStart")
	assert.NotContains(t, body, "actualEnd")
}

func TestCreateWorkOrder_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"missing product code", `{"quantity":500}`},
		{"zero quantity", `{"productCode":"WIDGET-01","quantity":0}`},
		{"negative quantity", `{"productCode":"WIDGET-01","quantity":-5}`},
		{"malformed json", `{"productCode":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServerFixture()
			ctx, rec := newJSONContext(t, nethttp.MethodPost, "/api/v1/work-orders", tc.body)

			require.NoError(t, f.server.CreateWorkOrder(ctx))

			assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
			f.workOrderFactory.AssertNotCalled(t, "Create")
		})
	}
}

func TestChangeWorkOrderStatus_Success(t *testing.T) {
	f := newServerFixture()
	id := kernel.NewUUID()
	number, err := docnumber.New(docnumber.WorkOrder, "20260221", 1)
	require.NoError(t, err)
	wo, err := workorder.RestoreWorkOrder(id, number, "WIDGET-01", 500, nil, workorder.Issued, nil, nil, 2)
	require.NoError(t, err)

	uow, repo, _ := f.expectWorkOrderUoW()
	repo.On("Get", mock.Anything, id).Return(wo, nil).Once()
	repo.On("Update", mock.Anything, wo).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"in_progress"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "in_progress", body["status"])
	assert.Contains(t, body, "actualStart")
}

func TestChangeWorkOrderStatus_InvalidTransition_Returns422WithAllowedSet(t *testing.T) {
	f := newServerFixture()
	id := kernel.NewUUID()
	number, err := docnumber.New(docnumber.WorkOrder, "20260221", 1)
	require.NoError(t, err)
	wo, err := workorder.RestoreWorkOrder(id, number, "WIDGET-01", 500, nil, workorder.Draft, nil, nil, 1)
	require.NoError(t, err)

	_, repo, _ := f.expectWorkOrderUoW()
	repo.On("Get", mock.Anything, id).Return(wo, nil).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"completed"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	require.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code          string   `json:"code"`
		Message       string   `json:"message"`
		CurrentStatus string   `json:"currentStatus"`
		Allowed       []string `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_TRANSITION", body.Code)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, "draft", body.CurrentStatus)
	assert.ElementsMatch(t, []string{"issued", "cancelled"}, body.Allowed)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeWorkOrderStatus_TerminalState_Returns422WithEmptyAllowedSet(t *testing.T) {
	f := newServerFixture()
	id := kernel.NewUUID()
	number, err := docnumber.New(docnumber.WorkOrder, "20260221", 1)
	require.NoError(t, err)
	wo, err := workorder.RestoreWorkOrder(id, number, "WIDGET-01", 500, nil, workorder.Cancelled, nil, nil, 2)
	require.NoError(t, err)

	_, repo, _ := f.expectWorkOrderUoW()
	repo.On("Get", mock.Anything, id).Return(wo, nil).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"issued"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	require.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Allowed []string `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Allowed)
	assert.Empty(t, body.Allowed)
}

func TestChangeWorkOrderStatus_UnknownStatusName_Returns400(t *testing.T) {
	f := newServerFixture()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"paused"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues(kernel.NewUUID().String())

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	f.workOrderFactory.AssertNotCalled(t, "Create")
}

func TestChangeWorkOrderStatus_MalformedID_Returns400(t *testing.T) {
	f := newServerFixture()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"issued"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestChangeWorkOrderStatus_UnknownWorkOrder_Returns404(t *testing.T) {
	f := newServerFixture()
	id := kernel.NewUUID()

	_, repo, _ := f.expectWorkOrderUoW()
	repo.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("workOrderId", id)).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"issued"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	require.Equal(t, nethttp.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestChangeWorkOrderStatus_ConcurrentModification_Returns409(t *testing.T) {
	f := newServerFixture()
	id := kernel.NewUUID()
	number, err := docnumber.New(docnumber.WorkOrder, "20260221", 1)
	require.NoError(t, err)
	wo, err := workorder.RestoreWorkOrder(id, number, "WIDGET-01", 500, nil, workorder.Draft, nil, nil, 1)
	require.NoError(t, err)

	_, repo, _ := f.expectWorkOrderUoW()
	repo.On("Get", mock.Anything, id).Return(wo, nil).Once()
	repo.On("Update", mock.Anything, wo).
		Return(errs.NewConcurrentModificationError("workOrderId", id)).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/", `{"status":"issued"}`)
	ctx.SetPath("/api/v1/work-orders/:id/status")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	require.NoError(t, f.server.ChangeWorkOrderStatus(ctx))

	require.Equal(t, nethttp.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestCreateShipment_Success(t *testing.T) {
	f := newServerFixture()
	workOrderID := kernel.NewUUID()
	number, err := docnumber.New(docnumber.WorkOrder, "20260221", 1)
	require.NoError(t, err)
	wo, err := workorder.RestoreWorkOrder(
		workOrderID, number, "WIDGET-01", 500, nil, workorder.Completed, nil, nil, 4)
	require.NoError(t, err)

	uow := new(MockShipmentUoW)
	workOrderRepo := new(MockWorkOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	sequenceRepo := new(MockSequenceRepository)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(workOrderRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("SequenceRepository").Return(sequenceRepo)
	workOrderRepo.On("Get", mock.Anything, workOrderID).Return(wo, nil).Once()
	sequenceRepo.On("Next", mock.Anything, docnumber.Shipment).Return(7, "20260221", nil).Once()
	shipmentRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	f.shipmentFactory.On("Create").Return(uow).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/api/v1/shipments",
		`{"workOrderId":"`+workOrderID.String()+`"}`)

	require.NoError(t, f.server.CreateShipment(ctx))

	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SHP-20260221-007", body["number"])
	assert.Equal(t, workOrderID.String(), body["workOrderId"])
}

func TestCreateShipment_UnknownWorkOrder_Returns404(t *testing.T) {
	f := newServerFixture()
	workOrderID := kernel.NewUUID()

	uow := new(MockShipmentUoW)
	workOrderRepo := new(MockWorkOrderRepository)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("WorkOrderRepository").Return(workOrderRepo)
	workOrderRepo.On("Get", mock.Anything, workOrderID).
		Return(nil, errs.NewObjectNotFoundError("workOrderId", workOrderID)).Once()
	f.shipmentFactory.On("Create").Return(uow).Once()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/api/v1/shipments",
		`{"workOrderId":"`+workOrderID.String()+`"}`)

	require.NoError(t, f.server.CreateShipment(ctx))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestCreateShipment_MalformedWorkOrderID_Returns400(t *testing.T) {
	f := newServerFixture()

	ctx, rec := newJSONContext(t, nethttp.MethodPost, "/api/v1/shipments", `{"workOrderId":"nope"}`)

	require.NoError(t, f.server.CreateShipment(ctx))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	f.shipmentFactory.AssertNotCalled(t, "Create")
}

func TestGetWorkOrders_UnknownStatusFilter_Returns400(t *testing.T) {
	f := newServerFixture()

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/work-orders?status=bogus", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, f.server.GetWorkOrders(ctx))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newServerFixture()
	ctx, rec := newJSONContext(t, nethttp.MethodGet, "/health", "")

	require.NoError(t, f.server.Health(ctx))

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
