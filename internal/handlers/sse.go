package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"ecomdash/internal/models"
	"ecomdash/internal/services"
	"github.com/starfederation/datastar-go/datastar"
)

const maxTableRows = 50

var segmentTableTemplate = template.Must(template.New("segmentTable").Parse(`
<div id="segments-content">
<table class="modern-table">
<thead><tr><th>Segment</th><th>Customers</th><th>Avg Recency</th><th>Avg Frequency</th><th>Avg Value</th><th>Revenue Share</th></tr></thead>
<tbody>
{{range .}}<tr>
<td><span class="segment-badge">{{.Segment}}</span></td>
<td>{{.Customers}}</td>
<td>{{printf "%.1f" .AvgRecency}} days</td>
<td>{{printf "%.1f" .AvgFrequency}}</td>
<td><strong>₹{{printf "%.0f" .AvgMonetary}}</strong></td>
<td>{{printf "%.1f" .RevenueShare}}%</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var categoryTableTemplate = template.Must(template.New("categoryTable").Parse(`
<div id="categories-content">
<table class="modern-table">
<thead><tr><th>Category</th><th>Revenue</th><th>Share</th><th>Orders</th><th>AOV</th><th>Rating</th><th>Returns</th></tr></thead>
<tbody>
{{range $i, $item := .Data}}{{if lt $i $.MaxRows}}<tr>
<td><span class="category-badge">{{.Category}}</span></td>
<td><strong>₹{{printf "%.0f" .TotalRevenue}}</strong></td>
<td>{{printf "%.1f" .MarketShare}}%</td>
<td>{{.Transactions}}</td>
<td>₹{{printf "%.0f" .AvgOrder}}</td>
<td>{{printf "%.2f" .AvgRating}}</td>
<td>{{printf "%.1f" .ReturnRate}}%</td>
</tr>{{end}}{{end}}
</tbody>
</table>
</div>`))

var stateTableTemplate = template.Must(template.New("stateTable").Parse(`
<div id="states-content">
<table class="modern-table">
<thead><tr><th>State</th><th>Tier</th><th>Revenue</th><th>Orders</th><th>Customers</th><th>AOV</th></tr></thead>
<tbody>
{{range $i, $item := .Data}}{{if lt $i $.MaxRows}}<tr>
<td>{{.State}}</td>
<td><span class="tier-badge">{{.Tier}}</span></td>
<td><strong>₹{{printf "%.0f" .TotalRevenue}}</strong></td>
<td>{{.Transactions}}</td>
<td>{{.UniqueCustomers}}</td>
<td>₹{{printf "%.0f" .AvgOrder}}</td>
</tr>{{end}}{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

type templateData struct {
	Data    interface{}
	MaxRows int
}

func (h *SSEHandlers) renderCategoryTable(data []models.CategoryPerformance) (string, error) {
	var buf strings.Builder
	err := categoryTableTemplate.Execute(&buf, templateData{Data: data, MaxRows: maxTableRows})
	return buf.String(), err
}

func (h *SSEHandlers) renderStateTable(data []models.StatePerformance) (string, error) {
	var buf strings.Builder
	err := stateTableTemplate.Execute(&buf, templateData{Data: data, MaxRows: maxTableRows})
	return buf.String(), err
}

func (h *SSEHandlers) renderSegmentTable(data []models.SegmentSummary) (string, error) {
	var buf strings.Builder
	err := segmentTableTemplate.Execute(&buf, data)
	return buf.String(), err
}

func (h *SSEHandlers) patchSignals(sse *datastar.ServerSentEventGenerator, w http.ResponseWriter, signals map[string]any) bool {
	jsonData, err := json.Marshal(signals)
	if err != nil {
		h.logger.Error("marshal signals", "error", err)
		return false
	}
	sse.PatchSignals(jsonData)
	return true
}

func flush(w http.ResponseWriter) {
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRevenue streams the revenue page data: yearly trend, monthly
// heatmap and weekday chart signals.
func (h *SSEHandlers) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if !h.patchSignals(sse, w, map[string]any{
		"yearlyData":  h.analytics.YearlyRevenue(),
		"monthlyData": h.analytics.MonthlyPivot(),
		"weekdayData": h.analytics.WeekdayPatterns(),
	}) {
		return
	}

	sse.PatchElements(`<div id="revenue-content">✅ Revenue chart data loaded</div>`)
	flush(w)
}

// HandleCustomers streams the customer page: segment table plus cohort and
// lifecycle chart signals.
func (h *SSEHandlers) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderSegmentTable(h.analytics.SegmentSummary())
	if err != nil {
		h.logger.Error("render segment table", "error", err)
		return
	}
	sse.PatchElements(html)

	if !h.patchSignals(sse, w, map[string]any{
		"cohortData":    h.analytics.Cohorts(),
		"clvData":       h.analytics.CLVQuartiles(),
		"lifecycleData": h.analytics.LifecycleSegments(),
	}) {
		return
	}
	flush(w)
}

// HandleProducts streams the merchandising page: category table plus
// brand, price, discount and rating band signals.
func (h *SSEHandlers) HandleProducts(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCategoryTable(h.analytics.CategoryPerformance())
	if err != nil {
		h.logger.Error("render category table", "error", err)
		return
	}
	sse.PatchElements(html)

	if !h.patchSignals(sse, w, map[string]any{
		"brandData":    h.analytics.TopBrands(maxBrands),
		"priceData":    h.analytics.PriceBands(),
		"discountData": h.analytics.DiscountBands(),
		"ratingData":   h.analytics.RatingBands(),
		"phaseData":    h.analytics.ProductPhases(),
	}) {
		return
	}
	flush(w)
}

// HandleOperations streams payment, delivery, returns and Prime signals.
func (h *SSEHandlers) HandleOperations(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if !h.patchSignals(sse, w, map[string]any{
		"paymentData":  h.analytics.PaymentTrends(),
		"deliveryData": h.analytics.DeliveryPerformance(),
		"returnData":   h.analytics.Returns(),
		"primeData":    h.analytics.PrimeImpact(),
	}) {
		return
	}

	sse.PatchElements(`<div id="operations-content">✅ Operations chart data loaded</div>`)
	flush(w)
}

// HandleGeography streams the state table plus tier and festival signals.
func (h *SSEHandlers) HandleGeography(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderStateTable(h.analytics.StatePerformance())
	if err != nil {
		h.logger.Error("render state table", "error", err)
		return
	}
	sse.PatchElements(html)

	if !h.patchSignals(sse, w, map[string]any{
		"tierData":     h.analytics.TierSummary(),
		"festivalData": h.analytics.FestivalImpact(),
		"slowStates":   h.analytics.SlowestStates(maxSlowStates),
	}) {
		return
	}
	flush(w)
}

// HandleOverview streams the executive summary cards.
func (h *SSEHandlers) HandleOverview(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if !h.patchSignals(sse, w, map[string]any{
		"healthData": h.analytics.BusinessHealth(),
		"yearlyData": h.analytics.YearlyRevenue(),
	}) {
		return
	}

	sse.PatchElements(`<div id="overview-content">✅ Executive summary loaded</div>`)
	flush(w)
}

// HandleRefreshAll re-patches every table and signal in one stream.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	for _, render := range []func() (string, error){
		func() (string, error) { return h.renderSegmentTable(h.analytics.SegmentSummary()) },
		func() (string, error) { return h.renderCategoryTable(h.analytics.CategoryPerformance()) },
		func() (string, error) { return h.renderStateTable(h.analytics.StatePerformance()) },
	} {
		html, err := render()
		if err != nil {
			h.logger.Error("render table", "error", err)
			return
		}
		sse.PatchElements(html)
	}

	if !h.patchSignals(sse, w, map[string]any{
		"healthData":    h.analytics.BusinessHealth(),
		"yearlyData":    h.analytics.YearlyRevenue(),
		"monthlyData":   h.analytics.MonthlyPivot(),
		"weekdayData":   h.analytics.WeekdayPatterns(),
		"cohortData":    h.analytics.Cohorts(),
		"clvData":       h.analytics.CLVQuartiles(),
		"lifecycleData": h.analytics.LifecycleSegments(),
		"brandData":     h.analytics.TopBrands(maxBrands),
		"priceData":     h.analytics.PriceBands(),
		"discountData":  h.analytics.DiscountBands(),
		"ratingData":    h.analytics.RatingBands(),
		"phaseData":     h.analytics.ProductPhases(),
		"paymentData":   h.analytics.PaymentTrends(),
		"deliveryData":  h.analytics.DeliveryPerformance(),
		"returnData":    h.analytics.Returns(),
		"primeData":     h.analytics.PrimeImpact(),
		"tierData":      h.analytics.TierSummary(),
		"festivalData":  h.analytics.FestivalImpact(),
		"slowStates":    h.analytics.SlowestStates(maxSlowStates),
	}) {
		return
	}
	flush(w)
}
