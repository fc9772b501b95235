package services

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ecomdash/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize    = 10000
	maxWorkers   = 10
	cacheVersion = "v2"
	cacheDir     = ".cache"

	transactionColumns = 23
)

// Snapshot holds every precomputed analysis for one load of the dataset.
// It is immutable once published; handlers read it without copying.
type Snapshot struct {
	SnapshotID string `json:"snapshot_id"`

	Yearly         []models.YearlyRevenue  `json:"yearly_revenue"`
	MonthlyPivot   []models.MonthlyCell    `json:"monthly_pivot"`
	MonthlySummary []models.MonthlySummary `json:"monthly_summary"`
	Weekdays       []models.WeekdayPattern `json:"weekday_patterns"`
	Health         models.BusinessHealth   `json:"business_health"`

	Profiles     []models.RFMProfile       `json:"rfm_profiles"`
	Segments     []models.SegmentSummary   `json:"segments"`
	Cohorts      []models.CohortCLV        `json:"cohorts"`
	CLVQuartiles []models.CLVQuartile      `json:"clv_quartiles"`
	Lifecycles   []models.LifecycleSegment `json:"lifecycles"`

	Categories    []models.CategoryPerformance `json:"categories"`
	Brands        []models.BrandPerformance    `json:"brands"`
	PriceBands    []models.PriceBand           `json:"price_bands"`
	DiscountBands []models.DiscountBand        `json:"discount_bands"`
	RatingBands   []models.RatingBand          `json:"rating_bands"`
	ProductPhases []models.LifecyclePhase      `json:"product_phases"`

	Payments        []models.PaymentTrend        `json:"payment_trends"`
	Deliveries      []models.DeliveryPerformance `json:"delivery_performance"`
	Returns         []models.ReturnStats         `json:"returns"`
	CategoryReturns []models.CategoryReturnRate  `json:"category_returns"`
	Prime           []models.PrimeImpact         `json:"prime_impact"`

	States        []models.StatePerformance `json:"states"`
	Tiers         []models.TierSummary      `json:"tiers"`
	Festivals     []models.FestivalImpact   `json:"festivals"`
	FestivalSplit models.FestivalSplit      `json:"festival_split"`
	SlowestStates []models.StateDelivery    `json:"slowest_states"`

	LastModified time.Time `json:"last_modified"`
	RecordCount  int64     `json:"record_count"`
}

type Analytics struct {
	mu               sync.RWMutex
	snapshot         *Snapshot
	csvPath          string
	recordsProcessed atomic.Int64
	logger           *slog.Logger
}

func NewAnalytics() *Analytics {
	return &Analytics{
		snapshot: &Snapshot{},
		logger:   slog.Default(),
	}
}

// SetData replaces the published snapshot with one computed from the given
// transactions. Used by the warehouse path and by tests.
func (a *Analytics) SetData(data []models.Transaction) {
	snap := computeSnapshot(data)

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()

	a.recordsProcessed.Store(snap.RecordCount)
}

func (a *Analytics) LoadFromCSV(ctx context.Context, filename string) error {
	a.mu.Lock()
	a.csvPath = filename
	a.mu.Unlock()

	if cached, err := a.loadFromCache(filename); err == nil {
		fileInfo, err := os.Stat(filename)
		if err == nil && fileInfo.ModTime().Before(cached.LastModified) {
			a.mu.Lock()
			a.snapshot = cached
			a.mu.Unlock()
			a.recordsProcessed.Store(cached.RecordCount)
			a.logger.Info("loaded from cache", "records", cached.RecordCount)
			return nil
		}
	}

	start := time.Now()
	a.logger.Info("processing dataset", "filename", filename)

	data, err := a.streamReadCSV(ctx, filename)
	if err != nil {
		return fmt.Errorf("process csv: %w", err)
	}

	a.SetData(data)

	if err := a.saveToCache(filename); err != nil {
		a.logger.Warn("failed to save cache", "error", err)
	}

	duration := time.Since(start)
	count := a.recordsProcessed.Load()
	a.logger.Info("dataset processing complete",
		"records", count,
		"duration", duration,
		"rate", fmt.Sprintf("%.0f records/sec", float64(count)/duration.Seconds()))

	return nil
}

func (a *Analytics) streamReadCSV(ctx context.Context, filename string) ([]models.Transaction, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB buffer

	// Skip header
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty file")
	}

	var (
		mu   sync.Mutex
		data []models.Transaction
	)

	batch := make([]string, 0, batchSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())

		if len(batch) >= batchSize {
			if err := a.parseBatch(ctx, batch, &mu, &data); err != nil {
				return nil, err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := a.parseBatch(ctx, batch, &mu, &data); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no valid records found")
	}

	return data, nil
}

func (a *Analytics) parseBatch(ctx context.Context, batch []string, mu *sync.Mutex, data *[]models.Transaction) error {
	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	parsed := make([]models.Transaction, len(batch))
	valid := make([]bool, len(batch))

	for i, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			record := strings.Split(line, ",")
			tx, err := parseTransactionFast(record)
			if err != nil {
				return nil // Skip invalid records
			}

			parsed[i] = tx
			valid[i] = true
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return err
	}

	mu.Lock()
	for i := range parsed {
		if valid[i] {
			*data = append(*data, parsed[i])
		}
	}
	mu.Unlock()

	return nil
}

func parseTransactionFast(record []string) (models.Transaction, error) {
	if len(record) < transactionColumns {
		return models.Transaction{}, fmt.Errorf("insufficient columns")
	}

	orderDate, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
	if err != nil {
		return models.Transaction{}, err
	}

	originalPrice, err := strconv.ParseFloat(strings.TrimSpace(record[10]), 64)
	if err != nil {
		return models.Transaction{}, err
	}

	discountPct, err := strconv.ParseFloat(strings.TrimSpace(record[11]), 64)
	if err != nil {
		return models.Transaction{}, err
	}

	finalAmount, err := strconv.ParseFloat(strings.TrimSpace(record[12]), 64)
	if err != nil {
		return models.Transaction{}, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(record[13]))
	if err != nil {
		return models.Transaction{}, err
	}

	deliveryDays, err := strconv.Atoi(strings.TrimSpace(record[16]))
	if err != nil {
		return models.Transaction{}, err
	}

	isPrime, err := strconv.ParseBool(strings.TrimSpace(record[17]))
	if err != nil {
		return models.Transaction{}, err
	}

	isFestival, err := strconv.ParseBool(strings.TrimSpace(record[18]))
	if err != nil {
		return models.Transaction{}, err
	}

	customerRating, err := strconv.ParseFloat(strings.TrimSpace(record[20]), 64)
	if err != nil {
		return models.Transaction{}, err
	}

	productRating, err := strconv.ParseFloat(strings.TrimSpace(record[21]), 64)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		TransactionID:  strings.TrimSpace(record[0]),
		OrderDate:      orderDate,
		CustomerID:     strings.TrimSpace(record[2]),
		CustomerState:  strings.TrimSpace(record[3]),
		CustomerCity:   strings.TrimSpace(record[4]),
		AgeGroup:       strings.TrimSpace(record[5]),
		ProductID:      strings.TrimSpace(record[6]),
		ProductName:    strings.TrimSpace(record[7]),
		Category:       strings.TrimSpace(record[8]),
		Brand:          strings.TrimSpace(record[9]),
		OriginalPrice:  originalPrice,
		DiscountPct:    discountPct,
		FinalAmount:    finalAmount,
		Quantity:       quantity,
		PaymentMethod:  strings.TrimSpace(record[14]),
		DeliveryType:   strings.TrimSpace(record[15]),
		DeliveryDays:   deliveryDays,
		IsPrimeMember:  isPrime,
		IsFestivalSale: isFestival,
		FestivalName:   strings.TrimSpace(record[19]),
		CustomerRating: customerRating,
		ProductRating:  productRating,
		ReturnStatus:   strings.TrimSpace(record[22]),
	}, nil
}

func computeSnapshot(data []models.Transaction) *Snapshot {
	snap := &Snapshot{
		SnapshotID:   uuid.NewString(),
		LastModified: time.Now(),
		RecordCount:  int64(len(data)),
	}

	snap.Yearly = buildYearlyRevenue(data)
	snap.MonthlyPivot = buildMonthlyPivot(data)
	snap.MonthlySummary = buildMonthlySummary(data)
	snap.Weekdays = buildWeekdayPatterns(data)
	snap.Health = buildBusinessHealth(data)

	snap.Profiles = BuildRFM(data)
	snap.Segments = buildSegmentSummary(snap.Profiles)
	snap.Cohorts = buildCohorts(data)
	snap.CLVQuartiles = buildCLVQuartiles(data)
	snap.Lifecycles = buildLifecycleSegments(data)

	snap.Categories = buildCategoryPerformance(data)
	snap.Brands = buildBrandPerformance(data)
	snap.PriceBands = buildPriceBands(data)
	snap.DiscountBands = buildDiscountBands(data)
	snap.RatingBands = buildRatingBands(data)
	snap.ProductPhases = buildProductPhases(data)

	snap.Payments = buildPaymentTrends(data)
	snap.Deliveries = buildDeliveryPerformance(data)
	snap.Returns, snap.CategoryReturns = buildReturns(data)
	snap.Prime = buildPrimeImpact(data)

	snap.States = buildStatePerformance(data)
	snap.Tiers = buildTierSummary(snap.States)
	snap.Festivals, snap.FestivalSplit = buildFestivalImpact(data)
	snap.SlowestStates = buildSlowestStates(data)

	return snap
}

// Cache management
func (a *Analytics) getCacheFilename(csvPath string) string {
	return fmt.Sprintf("%s/%s_%s.gob", cacheDir, strings.ReplaceAll(csvPath, "/", "_"), cacheVersion)
}

func (a *Analytics) saveToCache(csvPath string) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}

	filename := a.getCacheFilename(csvPath)
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	a.mu.RLock()
	defer a.mu.RUnlock()

	encoder := gob.NewEncoder(file)
	return encoder.Encode(a.snapshot)
}

func (a *Analytics) loadFromCache(csvPath string) (*Snapshot, error) {
	filename := a.getCacheFilename(csvPath)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var snap Snapshot
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Utility method for monitoring
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return map[string]any{
		"snapshot_id":    a.snapshot.SnapshotID,
		"source_file":    a.csvPath,
		"record_count":   a.snapshot.RecordCount,
		"last_processed": a.snapshot.LastModified,
		"years":          len(a.snapshot.Yearly),
		"customers":      len(a.snapshot.Profiles),
		"categories":     len(a.snapshot.Categories),
		"brands":         len(a.snapshot.Brands),
		"states":         len(a.snapshot.States),
	}
}
