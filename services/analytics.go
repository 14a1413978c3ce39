// services/analytics.go
package services

import (
	"math"
	"sort"
	"time"

	"tailorbook-backend/models"
	"tailorbook-backend/utils"
)

const (
	dueWindowDays    = 7
	recentWindowDays = 30
	topCustomerLimit = 4
	recentOrderLimit = 5
)

type DashboardOverview struct {
	TotalCustomers  int               `json:"totalCustomers"`
	RecentCount     int               `json:"recentCustomerCount"`
	TotalOrders     int               `json:"totalOrders"`
	ActiveOrders    int               `json:"activeOrders"`
	TotalRevenue    float64           `json:"totalRevenue"`
	PendingPayments float64           `json:"pendingPayments"`
	DueThisWeek     []models.Order    `json:"dueThisWeek"`
	RecentCustomers []models.Customer `json:"recentCustomers"`
	RecentOrders    []models.Order    `json:"recentOrders"`
	StatusBreakdown []StatusCount     `json:"statusBreakdown"`
	Garments        []GarmentSummary  `json:"garments"`
}

// AnalyticsSummary is the reports view.
type AnalyticsSummary struct {
	TotalCustomers       int               `json:"totalCustomers"`
	TotalOrders          int               `json:"totalOrders"`
	TotalRevenue         float64           `json:"totalRevenue"`
	TotalPending         float64           `json:"totalPending"`
	AverageOrderValue    float64           `json:"averageOrderValue"`
	PendingPercentage    int               `json:"pendingPercentage"`
	CurrentMonthOrders   int               `json:"currentMonthOrders"`
	CurrentMonthRevenue  float64           `json:"currentMonthRevenue"`
	PreviousMonthRevenue float64           `json:"previousMonthRevenue"`
	MonthGrowth          float64           `json:"monthGrowth"`
	StatusBreakdown      []StatusCount     `json:"statusBreakdown"`
	GarmentBreakdown     []GarmentSummary  `json:"garmentBreakdown"`
	TopCustomers         []CustomerSummary `json:"topCustomers"`
}

type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

type GarmentSummary struct {
	Type    models.GarmentType `json:"type"`
	Count   int                `json:"count"`
	Revenue float64            `json:"revenue"`
}

type CustomerSummary struct {
	CustomerID string  `json:"customerId"`
	Name       string  `json:"name"`
	Orders     int     `json:"orders"`
	Spent      float64 `json:"spent"`
}

type OrderStats struct {
	TotalOrders  int     `json:"totalOrders"`
	Pending      int     `json:"pending"`
	InProgress   int     `json:"inProgress"`
	Ready        int     `json:"ready"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// BuildDashboard derives the dashboard from the current collections.
// Records whose dates do not parse are left out of the time windows.
func BuildDashboard(customers []models.Customer, orders []models.Order, now time.Time) DashboardOverview {
	d := DashboardOverview{
		TotalCustomers:  len(customers),
		TotalOrders:     len(orders),
		TotalRevenue:    TotalRevenue(orders),
		PendingPayments: PendingPayments(orders),
		DueThisWeek:     DueWithin(orders, now, dueWindowDays),
		RecentCustomers: RecentCustomers(customers, now, recentWindowDays),
		StatusBreakdown: StatusBreakdown(orders),
		Garments:        GarmentItemCounts(orders),
	}
	d.RecentCount = len(d.RecentCustomers)
	for _, o := range orders {
		if o.Status.IsActive() {
			d.ActiveOrders++
		}
	}

	recent := make([]models.Order, 0, recentOrderLimit)
	for i := len(orders) - 1; i >= 0 && len(recent) < recentOrderLimit; i-- {
		recent = append(recent, orders[i])
	}
	d.RecentOrders = recent
	return d
}

// BuildReport derives the reports view from the current collections.
func BuildReport(customers []models.Customer, orders []models.Order, now time.Time) AnalyticsSummary {
	r := AnalyticsSummary{
		TotalCustomers:   len(customers),
		TotalOrders:      len(orders),
		TotalRevenue:     TotalRevenue(orders),
		TotalPending:     PendingPayments(orders),
		StatusBreakdown:  StatusBreakdown(orders),
		GarmentBreakdown: GarmentBreakdown(orders),
		TopCustomers:     TopCustomers(orders, topCustomerLimit),
	}
	if r.TotalOrders > 0 {
		r.AverageOrderValue = r.TotalRevenue / float64(r.TotalOrders)
	}
	if r.TotalRevenue != 0 {
		r.PendingPercentage = int(math.Round(r.TotalPending / r.TotalRevenue * 100))
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfPrevious := firstOfMonth.AddDate(0, -1, 0)
	for _, o := range orders {
		date, err := utils.ParseDate(o.OrderDate, now.Location())
		if err != nil {
			continue
		}
		switch {
		case !date.Before(firstOfMonth) && date.Before(firstOfMonth.AddDate(0, 1, 0)):
			r.CurrentMonthOrders++
			r.CurrentMonthRevenue += o.TotalAmount
		case !date.Before(firstOfPrevious) && date.Before(firstOfMonth):
			r.PreviousMonthRevenue += o.TotalAmount
		}
	}
	r.MonthGrowth = calculateGrowthPercentage(r.CurrentMonthRevenue, r.PreviousMonthRevenue)
	return r
}

func BuildOrderStats(orders []models.Order) OrderStats {
	s := OrderStats{TotalOrders: len(orders), TotalRevenue: TotalRevenue(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusReady:
			s.Ready++
		}
	}
	return s
}

func TotalRevenue(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.TotalAmount
	}
	return total
}

// PendingPayments sums remaining balances, negative ones included.
func PendingPayments(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.RemainingAmount
	}
	return total
}

// DueWithin returns undelivered orders whose due date falls in
// [today, today+days].
func DueWithin(orders []models.Order, now time.Time, days int) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.Status == models.StatusDelivered {
			continue
		}
		due, err := utils.ParseDate(o.DueDate, now.Location())
		if err != nil {
			continue
		}
		if utils.WithinDays(due, now, days) {
			out = append(out, o)
		}
	}
	return out
}

// RecentCustomers returns customers who visited within the last days days.
func RecentCustomers(customers []models.Customer, now time.Time, days int) []models.Customer {
	out := []models.Customer{}
	for _, c := range customers {
		visit, err := utils.ParseDate(c.LastVisit, now.Location())
		if err != nil {
			continue
		}
		if utils.WithinDays(visit, now, -days) {
			out = append(out, c)
		}
	}
	return out
}

// StatusBreakdown counts orders per status, in lifecycle order.
func StatusBreakdown(orders []models.Order) []StatusCount {
	counts := make(map[models.OrderStatus]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]StatusCount, 0, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}

// GarmentBreakdown sums quantity and line revenue per garment type across
// all orders. Types with no items are omitted.
func GarmentBreakdown(orders []models.Order) []GarmentSummary {
	return summarizeGarments(orders, func(item models.OrderItem) int { return item.Quantity })
}

// GarmentItemCounts is the dashboard card: Count is the number of line items
// of each type, whatever their quantity.
func GarmentItemCounts(orders []models.Order) []GarmentSummary {
	return summarizeGarments(orders, func(models.OrderItem) int { return 1 })
}

func summarizeGarments(orders []models.Order, count func(models.OrderItem) int) []GarmentSummary {
	byType := make(map[models.GarmentType]*GarmentSummary)
	for _, o := range orders {
		for _, item := range o.Items {
			g, ok := byType[item.Type]
			if !ok {
				g = &GarmentSummary{Type: item.Type}
				byType[item.Type] = g
			}
			g.Count += count(item)
			g.Revenue += item.LineTotal()
		}
	}
	out := []GarmentSummary{}
	for _, t := range models.GarmentTypes {
		if g, ok := byType[t]; ok {
			out = append(out, *g)
			delete(byType, t)
		}
	}
	// unknown types last, in name order
	var rest []models.GarmentType
	for t := range byType {
		rest = append(rest, t)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, t := range rest {
		out = append(out, *byType[t])
	}
	return out
}

// TopCustomers ranks customers by order value. Orders are grouped by
// customerId, so deleted customers still show under their snapshot name.
func TopCustomers(orders []models.Order, limit int) []CustomerSummary {
	byCustomer := make(map[string]*CustomerSummary)
	var keys []string
	for _, o := range orders {
		cs, ok := byCustomer[o.CustomerID]
		if !ok {
			cs = &CustomerSummary{CustomerID: o.CustomerID, Name: o.CustomerName}
			byCustomer[o.CustomerID] = cs
			keys = append(keys, o.CustomerID)
		}
		cs.Orders++
		cs.Spent += o.TotalAmount
	}
	out := make([]CustomerSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byCustomer[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Spent > out[j].Spent })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
