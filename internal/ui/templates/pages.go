package templates

import (
	"github.com/a-h/templ"
)

// Overview is the executive summary page.
func Overview() templ.Component {
	body := raw(`
<div data-signals="{healthData: {}, yearlyData: []}" data-on-load="@get('/sse/overview')">
<div class="cards">` +
		metricCard("Total Revenue", "'₹' + ($healthData.total_revenue ?? 0).toLocaleString()") +
		metricCard("Transactions", "($healthData.transactions ?? 0).toLocaleString()") +
		metricCard("Unique Customers", "($healthData.unique_customers ?? 0).toLocaleString()") +
		metricCard("Avg Order Value", "'₹' + ($healthData.avg_order_value ?? 0).toFixed(0)") +
		metricCard("YoY Growth", "($healthData.yoy_growth ?? 0).toFixed(1) + '%'") +
		metricCard("Retention", "($healthData.retention_rate ?? 0).toFixed(1) + '%'") +
		metricCard("Avg Delivery", "($healthData.avg_delivery_days ?? 0).toFixed(1) + ' days'") +
		metricCard("Return Rate", "($healthData.return_rate ?? 0).toFixed(1) + '%'") + `
</div>
<div class="panel">
<h2>Revenue by Year</h2>
<div id="overview-chart" class="chart" data-effect="renderYearlyChart('overview-chart', $yearlyData)"></div>
</div>
<div id="overview-content"></div>
</div>
<script>
function renderYearlyChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    series: [{ name: 'Revenue', data: rows.map(r => r.total_revenue) }],
    xaxis: { categories: rows.map(r => r.year) },
    colors: ['#ff9900'],
  }).render();
}
</script>`)
	return Shell("Overview", "/", body)
}

// Revenue is the trend page: yearly growth, monthly heatmap, weekday mix.
func Revenue() templ.Component {
	body := raw(`
<div data-signals="{yearlyData: [], monthlyData: [], weekdayData: []}" data-on-load="@get('/sse/revenue')">
<div class="panel">
<h2>Yearly Revenue &amp; Growth</h2>
<div id="yearly-chart" class="chart" data-effect="renderGrowthChart('yearly-chart', $yearlyData)"></div>
</div>
<div class="panel">
<h2>Monthly Revenue Heatmap</h2>
<div id="monthly-chart" class="chart" data-effect="renderHeatmap('monthly-chart', $monthlyData)"></div>
</div>
<div class="panel">
<h2>Weekday Patterns</h2>
<div id="weekday-chart" class="chart" data-effect="renderWeekdayChart('weekday-chart', $weekdayData)"></div>
</div>
<div id="revenue-content"></div>
</div>
<script>
function renderGrowthChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { height: 320 },
    series: [
      { name: 'Revenue', type: 'column', data: rows.map(r => r.total_revenue) },
      { name: 'Growth %', type: 'line', data: rows.map(r => r.growth_rate) },
    ],
    xaxis: { categories: rows.map(r => r.year) },
    yaxis: [{ title: { text: 'Revenue' } }, { opposite: true, title: { text: 'Growth %' } }],
  }).render();
}
function renderHeatmap(id, cells) {
  if (!cells || !cells.length) return;
  const byYear = {};
  cells.forEach(c => { (byYear[c.year] ??= Array(12).fill(0))[c.month - 1] = c.revenue; });
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'heatmap', height: 320 },
    series: Object.keys(byYear).sort().map(y => ({ name: y, data: byYear[y].map((v, i) => ({ x: i + 1, y: v })) })),
    colors: ['#ff9900'],
  }).render();
}
function renderWeekdayChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    series: [{ name: 'Revenue', data: rows.map(r => r.total_revenue) }],
    xaxis: { categories: rows.map(r => r.day_name) },
    colors: ['#2b6cb0'],
  }).render();
}
</script>`)
	return Shell("Revenue", "/revenue", body)
}

// Customers is the RFM / cohort / lifecycle page.
func Customers() templ.Component {
	body := raw(`
<div data-signals="{cohortData: [], clvData: [], lifecycleData: []}" data-on-load="@get('/sse/customers')">
<div class="panel">
<h2>RFM Segments</h2>
<div id="segments-content">Loading segment table…</div>
</div>
<div class="panel">
<h2>Cohort Lifetime Value</h2>
<div id="cohort-chart" class="chart" data-effect="renderCohortChart('cohort-chart', $cohortData)"></div>
</div>
<div class="panel">
<h2>CLV Quartiles</h2>
<div id="clv-chart" class="chart" data-effect="renderQuartileChart('clv-chart', $clvData)"></div>
</div>
<div class="panel">
<h2>Lifecycle Mix</h2>
<div id="lifecycle-chart" class="chart" data-effect="renderLifecycleChart('lifecycle-chart', $lifecycleData)"></div>
</div>
</div>
<script>
function renderCohortChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'line', height: 320 },
    series: [{ name: 'Avg CLV', data: rows.map(r => r.avg_clv) }],
    xaxis: { categories: rows.map(r => r.cohort_year) },
  }).render();
}
function renderQuartileChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'donut', height: 320 },
    series: rows.map(r => r.total_value),
    labels: rows.map(r => r.label),
  }).render();
}
function renderLifecycleChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    series: [{ name: 'Customers', data: rows.map(r => r.customers) }],
    xaxis: { categories: rows.map(r => r.lifecycle) },
    colors: ['#2b6cb0'],
  }).render();
}
</script>`)
	return Shell("Customers", "/customers", body)
}

// Products is the merchandising page: categories, brands, bands, phases.
func Products() templ.Component {
	body := raw(`
<div data-signals="{brandData: [], priceData: [], discountData: [], ratingData: [], phaseData: []}" data-on-load="@get('/sse/products')">
<div class="panel">
<h2>Category Performance</h2>
<div id="categories-content">Loading category table…</div>
</div>
<div class="panel">
<h2>Top Brands</h2>
<div id="brand-chart" class="chart" data-effect="renderBandChart('brand-chart', $brandData, 'brand', 'total_revenue', 'Revenue')"></div>
</div>
<div class="panel">
<h2>Price Bands</h2>
<div id="price-chart" class="chart" data-effect="renderBandChart('price-chart', $priceData, 'label', 'total_revenue', 'Revenue')"></div>
</div>
<div class="panel">
<h2>Discount Effectiveness</h2>
<div id="discount-chart" class="chart" data-effect="renderBandChart('discount-chart', $discountData, 'label', 'total_revenue', 'Revenue')"></div>
</div>
<div class="panel">
<h2>Rating Distribution</h2>
<div id="rating-chart" class="chart" data-effect="renderBandChart('rating-chart', $ratingData, 'label', 'transactions', 'Orders')"></div>
</div>
<div class="panel">
<h2>Product Lifecycle Phases</h2>
<div id="phase-chart" class="chart" data-effect="renderBandChart('phase-chart', $phaseData, 'phase', 'products', 'Products')"></div>
</div>
</div>
<script>
function renderBandChart(id, rows, labelKey, valueKey, name) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    plotOptions: { bar: { horizontal: true } },
    series: [{ name: name, data: rows.map(r => r[valueKey]) }],
    xaxis: { categories: rows.map(r => r[labelKey]) },
    colors: ['#ff9900'],
  }).render();
}
</script>`)
	return Shell("Products", "/products", body)
}

// Operations covers payments, delivery, returns and Prime impact.
func Operations() templ.Component {
	body := raw(`
<div data-signals="{paymentData: [], deliveryData: [], returnData: [], primeData: []}" data-on-load="@get('/sse/operations')">
<div class="panel">
<h2>Payment Method Evolution</h2>
<div id="payment-chart" class="chart" data-effect="renderPaymentChart('payment-chart', $paymentData)"></div>
</div>
<div class="panel">
<h2>Delivery Performance</h2>
<div id="delivery-chart" class="chart" data-effect="renderDeliveryChart('delivery-chart', $deliveryData)"></div>
</div>
<div class="panel">
<h2>Returns by Status</h2>
<div id="return-chart" class="chart" data-effect="renderReturnChart('return-chart', $returnData)"></div>
</div>
<div class="panel">
<h2>Prime vs Non-Prime</h2>
<div id="prime-chart" class="chart" data-effect="renderPrimeChart('prime-chart', $primeData)"></div>
</div>
<div id="operations-content"></div>
</div>
<script>
function renderPaymentChart(id, rows) {
  if (!rows || !rows.length) return;
  const methods = {};
  rows.forEach(r => { (methods[r.payment_method] ??= {})[r.year] = r.share_of_year; });
  const years = [...new Set(rows.map(r => r.year))].sort();
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'line', height: 320 },
    series: Object.keys(methods).map(m => ({ name: m, data: years.map(y => methods[m][y] ?? 0) })),
    xaxis: { categories: years },
    yaxis: { title: { text: 'Share %' } },
  }).render();
}
function renderDeliveryChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    series: [
      { name: 'Avg Days', data: rows.map(r => r.avg_days) },
      { name: 'On-time ≤7d %', data: rows.map(r => r.on_time_7d_pct) },
    ],
    xaxis: { categories: rows.map(r => r.delivery_type) },
  }).render();
}
function renderReturnChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'donut', height: 320 },
    series: rows.map(r => r.transactions),
    labels: rows.map(r => r.status),
  }).render();
}
function renderPrimeChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    series: [
      { name: 'Avg Order', data: rows.map(r => r.avg_order_value) },
      { name: 'Return Rate %', data: rows.map(r => r.return_rate) },
    ],
    xaxis: { categories: rows.map(r => r.membership) },
  }).render();
}
</script>`)
	return Shell("Operations", "/operations", body)
}

// Geography covers states, tiers, festivals and slow corridors.
func Geography() templ.Component {
	body := raw(`
<div data-signals="{tierData: [], festivalData: [], slowStates: []}" data-on-load="@get('/sse/geography')">
<div class="panel">
<h2>State Performance</h2>
<div id="states-content">Loading state table…</div>
</div>
<div class="panel">
<h2>City Tier Summary</h2>
<div id="tier-chart" class="chart" data-effect="renderTierChart('tier-chart', $tierData)"></div>
</div>
<div class="panel">
<h2>Festival Impact</h2>
<div id="festival-chart" class="chart" data-effect="renderFestivalChart('festival-chart', $festivalData)"></div>
</div>
<div class="panel">
<h2>Slowest Delivery States</h2>
<div id="slow-chart" class="chart" data-effect="renderSlowChart('slow-chart', $slowStates)"></div>
</div>
</div>
<script>
function renderTierChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'donut', height: 320 },
    series: rows.map(r => r.total_revenue),
    labels: rows.map(r => r.tier),
  }).render();
}
function renderFestivalChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    plotOptions: { bar: { horizontal: true } },
    series: [{ name: 'Revenue', data: rows.map(r => r.total_revenue) }],
    xaxis: { categories: rows.map(r => r.festival) },
    colors: ['#ff9900'],
  }).render();
}
function renderSlowChart(id, rows) {
  if (!rows || !rows.length) return;
  const el = document.getElementById(id);
  el.innerHTML = '';
  new ApexCharts(el, {
    chart: { type: 'bar', height: 320 },
    plotOptions: { bar: { horizontal: true } },
    series: [{ name: 'Avg Days', data: rows.map(r => r.avg_days) }],
    xaxis: { categories: rows.map(r => r.state) },
    colors: ['#e53e3e'],
  }).render();
}
</script>`)
	return Shell("Geography", "/geography", body)
}
