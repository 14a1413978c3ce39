package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorbook-backend/config"
	"tailorbook-backend/controllers"
	"tailorbook-backend/models"
	"tailorbook-backend/routes"
	"tailorbook-backend/services"
	"tailorbook-backend/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	st := store.New(true)
	r := routes.SetupRouter(routes.Deps{
		Config:    config.Config{CORSOrigins: []string{"http://localhost:3000"}},
		Store:     st,
		Reminders: services.NewReminderService(st.Orders, st.Settings, nil),
		Backups:   services.NewBackupService(st, nil),
	})
	return r, st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCreateAndSearchCustomers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", map[string]any{
		"name":  "Lakshmi Iyer",
		"phone": "91234 56789",
		"measurements": map[string]any{
			"blouse": map[string]any{"bust": "34", "sleeveLength": "6"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Customer](t, w)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.LastVisit)
	assert.Equal(t, "34", created.Measurements.Blouse.Bust)
	assert.Equal(t, "", created.Measurements.Kurti.Length)

	w = doJSON(t, r, http.MethodGet, "/api/customers?search=LAKSHMI", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]models.Customer](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/customers?search=555-", nil)
	assert.Len(t, decode[[]models.Customer](t, w), 2)

	w = doJSON(t, r, http.MethodGet, "/api/customers", nil)
	assert.Len(t, decode[[]models.Customer](t, w), 6)
}

func TestCreateCustomerValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", map[string]any{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/customers", map[string]any{
		"name": "Bad Email", "phone": "555-000-1111", "email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCustomerKeepsID(t *testing.T) {
	r, st := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/customers/1", map[string]any{
		"id":    "999",
		"name":  "Priya S.",
		"phone": "98765 43210",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Customer](t, w)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "2024-01-15", updated.LastVisit)

	stored, err := st.Customers.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Priya S.", stored.Name)
	assert.Equal(t, 5, st.Customers.Count())

	w = doJSON(t, r, http.MethodPut, "/api/customers/missing", map[string]any{"name": "x", "phone": "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomerLeavesOrders(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), body["referencingOrders"])

	w = doJSON(t, r, http.MethodGet, "/api/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customers/1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode[[]models.Order](t, w)
	require.Len(t, orders, 1)
	assert.Equal(t, "Priya Sharma", orders[0].CustomerName)

	w = doJSON(t, r, http.MethodDelete, "/api/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderRecalculatesTotals(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
		"customerId":      "3",
		"items":           []map[string]any{{"type": "blouse", "quantity": 2, "pricePerItem": 700}},
		"advanceAmount":   400,
		"totalAmount":     99999,
		"remainingAmount": 99999,
		"dueDate":         "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[models.Order](t, w)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Maria Rodriguez", order.CustomerName)
	assert.Equal(t, "555-234-5678", order.CustomerPhone)
	assert.Equal(t, 1400.0, order.TotalAmount)
	assert.Equal(t, 1000.0, order.RemainingAmount)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.PriorityMedium, order.Priority)
	require.Len(t, order.Items, 1)
	assert.NotEmpty(t, order.Items[0].ID)
}

func TestCreateOrderValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := map[string]map[string]any{
		"no items": {
			"customerId": "1", "items": []map[string]any{}, "dueDate": "2024-03-01",
		},
		"unknown garment": {
			"customerId": "1", "dueDate": "2024-03-01",
			"items": []map[string]any{{"type": "saree", "quantity": 1, "pricePerItem": 10}},
		},
		"zero quantity": {
			"customerId": "1", "dueDate": "2024-03-01",
			"items": []map[string]any{{"type": "kurti", "quantity": 0, "pricePerItem": 10}},
		},
		"bad status": {
			"customerId": "1", "dueDate": "2024-03-01", "status": "lost",
			"items": []map[string]any{{"type": "kurti", "quantity": 1, "pricePerItem": 10}},
		},
		"bad due date": {
			"customerId": "1", "dueDate": "03/01/2024",
			"items": []map[string]any{{"type": "kurti", "quantity": 1, "pricePerItem": 10}},
		},
		"unknown customer without name": {
			"customerId": "nope", "dueDate": "2024-03-01",
			"items": []map[string]any{{"type": "kurti", "quantity": 1, "pricePerItem": 10}},
		},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/orders", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestOrderItemEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/1/items", map[string]any{
		"type": "kurti", "quantity": 2, "pricePerItem": 800,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[models.Order](t, w)
	assert.Equal(t, 3100.0, order.TotalAmount)
	assert.Equal(t, 2600.0, order.RemainingAmount)
	require.Len(t, order.Items, 2)
	added := order.Items[1].ID

	w = doJSON(t, r, http.MethodPut, "/api/orders/1/items/"+added, map[string]any{
		"type": "kurti", "quantity": 1, "pricePerItem": 800,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order = decode[models.Order](t, w)
	assert.Equal(t, 2300.0, order.TotalAmount)

	w = doJSON(t, r, http.MethodDelete, "/api/orders/1/items/"+added, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order = decode[models.Order](t, w)
	assert.Equal(t, 1500.0, order.TotalAmount)
	assert.Equal(t, 1000.0, order.RemainingAmount)

	w = doJSON(t, r, http.MethodDelete, "/api/orders/1/items/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/orders/1/items/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/orders/nope/items", map[string]any{
		"type": "kurti", "quantity": 1, "pricePerItem": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderStatusAndAdvance(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", map[string]any{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode[models.Order](t, w)
	assert.Equal(t, models.StatusDelivered, order.Status)
	assert.NotEmpty(t, order.DeliveryDate)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/1/status", map[string]any{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/1/advance", map[string]any{"advanceAmount": 2000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order = decode[models.Order](t, w)
	assert.Equal(t, -500.0, order.RemainingAmount)

	w = doJSON(t, r, http.MethodPut, "/api/orders/1/advance", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteOrder(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/orders/2", map[string]any{
		"customerId":    "2",
		"items":         []map[string]any{{"id": "2", "type": "kurti", "quantity": 3, "pricePerItem": 800}},
		"advanceAmount": 800,
		"dueDate":       "2024-02-10",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode[models.Order](t, w)
	assert.Equal(t, "2", order.ID)
	assert.Equal(t, "Anjali Patel", order.CustomerName)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "2024-01-20", order.OrderDate)
	assert.Equal(t, 2400.0, order.TotalAmount)
	assert.Equal(t, 1600.0, order.RemainingAmount)

	w = doJSON(t, r, http.MethodDelete, "/api/orders/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/orders/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/orders/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode[[]models.Order](t, w)
	require.Len(t, orders, 1)
	assert.Equal(t, "2", orders[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/orders?search=anjali", nil)
	assert.Len(t, decode[[]models.Order](t, w), 1)

	w = doJSON(t, r, http.MethodGet, "/api/orders?search=anjali&status=ready", nil)
	assert.Len(t, decode[[]models.Order](t, w), 0)

	w = doJSON(t, r, http.MethodGet, "/api/orders?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[services.OrderStats](t, w)
	assert.Equal(t, services.OrderStats{TotalOrders: 2, Pending: 1, InProgress: 1, TotalRevenue: 3100}, stats)
}

func TestDashboardAndReports(t *testing.T) {
	st := store.New(true)
	now := func() time.Time { return time.Date(2024, 1, 22, 10, 0, 0, 0, time.Local) }

	r := gin.New()
	dashboard := &controllers.DashboardController{Store: st, Now: now}
	report := &controllers.ReportController{Store: st, Now: now}
	r.GET("/dashboard", dashboard.GetDashboardOverview)
	r.GET("/reports", report.GetReportAnalytics)

	w := doJSON(t, r, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := decode[services.DashboardOverview](t, w)
	assert.Equal(t, 5, d.TotalCustomers)
	assert.Equal(t, 2, d.TotalOrders)
	assert.Equal(t, 2, d.ActiveOrders)
	assert.Equal(t, 3100.0, d.TotalRevenue)
	assert.Equal(t, 1800.0, d.PendingPayments)
	require.Len(t, d.DueThisWeek, 1)
	assert.Equal(t, "1", d.DueThisWeek[0].ID)

	w = doJSON(t, r, http.MethodGet, "/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rep := decode[services.AnalyticsSummary](t, w)
	assert.Equal(t, 2, rep.CurrentMonthOrders)
	assert.Equal(t, 1550.0, rep.AverageOrderValue)
	assert.Equal(t, 58, rep.PendingPercentage)
	require.Len(t, rep.GarmentBreakdown, 2)
	assert.Equal(t, services.GarmentSummary{Type: models.GarmentBlouse, Count: 1, Revenue: 1500}, rep.GarmentBreakdown[0])
	assert.Equal(t, services.GarmentSummary{Type: models.GarmentKurti, Count: 2, Revenue: 1600}, rep.GarmentBreakdown[1])
}

func TestSettingsValidationAndBackupSchedule(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	current := decode[models.ShopSettings](t, w)
	assert.Equal(t, models.DefaultSettings(), current)

	bad := current
	bad.Currency = "JPY"
	w = doJSON(t, r, http.MethodPut, "/api/settings", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	bad = current
	bad.MeasurementUnit = "feet"
	w = doJSON(t, r, http.MethodPut, "/api/settings", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	next := current
	next.ShopName = "Stitch & Style"
	next.BackupFrequency = "weekly"
	w = doJSON(t, r, http.MethodPut, "/api/settings", next)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/settings", nil)
	assert.Equal(t, next, decode[models.ShopSettings](t, w))

	w = doJSON(t, r, http.MethodGet, "/api/backups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[services.BackupStatus](t, w)
	assert.False(t, status.Enabled)
	assert.Equal(t, "weekly", status.Frequency)

	w = doJSON(t, r, http.MethodPost, "/api/backups/run", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRunRemindersEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", map[string]any{"status": "ready"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/reminders/run", nil)
	require.Equal(t, http.StatusOK, w.Code)
	run := decode[struct {
		Count     int                  `json:"count"`
		Reminders []models.ReminderLog `json:"reminders"`
	}](t, w)
	require.Equal(t, 1, run.Count)
	assert.Equal(t, "1", run.Reminders[0].OrderID)
	assert.Equal(t, "sent", run.Reminders[0].Status)
	assert.Contains(t, run.Reminders[0].Message, "Balance due: INR 1000.00")

	w = doJSON(t, r, http.MethodPost, "/api/reminders/run", nil)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["count"], "already reminded today")

	w = doJSON(t, r, http.MethodGet, "/api/reminders", nil)
	assert.Len(t, decode[[]models.ReminderLog](t, w), 1)
}
