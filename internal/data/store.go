package data

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"dashboard.aifa.mx/internal/logging"
	"dashboard.aifa.mx/internal/models"
)

// Config controls whether the monthly series are simulated and how often
// they are regenerated.
type Config struct {
	Simulate    bool
	RefreshSpec string
	Seed        uint64
}

// DefaultRefreshSpec matches the 30 second browser refresh interval.
const DefaultRefreshSpec = "@every 30s"

// Snapshot is one generation of the simulated series.
type Snapshot struct {
	Historical  models.HistoricalSeries
	Financial   models.FinancialSeries
	States      []models.StatePenetration
	GeneratedAt time.Time
}

// Store serves the monthly series, either the literal tables or a simulated
// snapshot regenerated on a cron schedule.
type Store struct {
	config   Config
	logger   *slog.Logger
	now      func() time.Time
	rngMutex sync.Mutex
	rng      *rand.Rand

	snapshotMutex sync.RWMutex
	snapshot      Snapshot
	generation    int

	scheduler    *cron.Cron
	shutdownOnce sync.Once
}

// NewStore builds a Store and takes its first snapshot. Call Start to begin
// periodic refreshes.
func NewStore(config Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	store := &Store{
		config: config,
		logger: logger,
		now:    time.Now,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	store.Refresh()
	return store
}

// Start schedules Refresh. It is a no-op when simulation is disabled.
func (store *Store) Start() error {
	if !store.config.Simulate {
		return nil
	}
	spec := store.config.RefreshSpec
	if spec == "" {
		spec = DefaultRefreshSpec
	}

	store.scheduler = cron.New()
	if _, err := store.scheduler.AddFunc(spec, store.Refresh); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	store.scheduler.Start()

	logging.LogOperation(store.logger, "simulation_scheduled",
		slog.String("component", "data_store"),
		slog.String("schedule", spec))
	return nil
}

// Shutdown stops the scheduler and waits for a running refresh to finish.
func (store *Store) Shutdown() {
	store.shutdownOnce.Do(func() {
		if store.scheduler != nil {
			<-store.scheduler.Stop().Done()
		}
	})
}

// Refresh regenerates the snapshot.
func (store *Store) Refresh() {
	now := store.now()

	var snapshot Snapshot
	if store.config.Simulate {
		store.rngMutex.Lock()
		snapshot = Snapshot{
			Historical: simulateHistorical(store.rng, now),
			Financial:  simulateFinancial(store.rng, now),
			States:     simulateStates(store.rng),
		}
		store.rngMutex.Unlock()
	} else {
		snapshot = Snapshot{
			Historical: Historical(),
			Financial:  Financial(),
			States:     StatePenetration(),
		}
	}
	snapshot.GeneratedAt = now

	store.snapshotMutex.Lock()
	store.snapshot = snapshot
	store.generation++
	generation := store.generation
	store.snapshotMutex.Unlock()

	store.logger.Debug("snapshot refreshed",
		slog.String("component", "data_store"),
		slog.Int("generation", generation),
		slog.Bool("simulated", store.config.Simulate))
}

// Snapshot returns the current generation. The slices are copies.
func (store *Store) Snapshot() Snapshot {
	store.snapshotMutex.RLock()
	defer store.snapshotMutex.RUnlock()
	return Snapshot{
		Historical: models.HistoricalSeries{
			Months:     append([]string(nil), store.snapshot.Historical.Months...),
			Passengers: append([]float64(nil), store.snapshot.Historical.Passengers...),
			Operations: append([]float64(nil), store.snapshot.Historical.Operations...),
			Cargo:      append([]float64(nil), store.snapshot.Historical.Cargo...),
		},
		Financial: models.FinancialSeries{
			Months:  append([]string(nil), store.snapshot.Financial.Months...),
			Revenue: append([]float64(nil), store.snapshot.Financial.Revenue...),
			Costs:   append([]float64(nil), store.snapshot.Financial.Costs...),
		},
		States:      append([]models.StatePenetration(nil), store.snapshot.States...),
		GeneratedAt: store.snapshot.GeneratedAt,
	}
}

// Historical returns the participation series of the current snapshot.
func (store *Store) Historical() models.HistoricalSeries {
	return store.Snapshot().Historical
}

// Financial returns the financial series of the current snapshot.
func (store *Store) Financial() models.FinancialSeries {
	return store.Snapshot().Financial
}

// States returns the state penetration table of the current snapshot.
func (store *Store) States() []models.StatePenetration {
	return store.Snapshot().States
}

// Generation counts refreshes since the store was built.
func (store *Store) Generation() int {
	store.snapshotMutex.RLock()
	defer store.snapshotMutex.RUnlock()
	return store.generation
}

// Simulated reports whether the series are jittered.
func (store *Store) Simulated() bool {
	return store.config.Simulate
}

// MonthsEnding returns twelve month abbreviations ending with the month of t.
func MonthsEnding(t time.Time) []string {
	months := make([]string, 12)
	last := int(t.Month()) - 1
	for i := 0; i < 12; i++ {
		months[i] = MonthNames[(last+1+i)%12]
	}
	return months
}

// lastCompletedMonth returns a day in the latest month whose last day is not
// after t: the current month on its final day, the previous month otherwise.
func lastCompletedMonth(t time.Time) time.Time {
	if t.AddDate(0, 0, 1).Month() != t.Month() {
		return t
	}
	return time.Date(t.Year(), t.Month(), 0, 0, 0, 0, 0, t.Location())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func normal(rng *rand.Rand, sigma float64) float64 {
	return rng.NormFloat64() * sigma
}

func simulateHistorical(rng *rand.Rand, now time.Time) models.HistoricalSeries {
	series := models.HistoricalSeries{
		Months:     MonthsEnding(lastCompletedMonth(now)),
		Passengers: make([]float64, 12),
		Operations: make([]float64, 12),
		Cargo:      make([]float64, 12),
	}
	const base = 8.0
	for i := 0; i < 12; i++ {
		value := base + float64(i)*0.4 + normal(rng, 0.3)
		series.Passengers[i] = round1(math.Max(0, value+normal(rng, 0.2)))
		series.Operations[i] = round1(math.Max(0, value-1.5+normal(rng, 0.15)))
		series.Cargo[i] = round1(math.Max(0, value-2.0+normal(rng, 0.25)))
	}
	return series
}

func simulateFinancial(rng *rand.Rand, now time.Time) models.FinancialSeries {
	series := models.FinancialSeries{
		Months:  MonthsEnding(lastCompletedMonth(now)),
		Revenue: make([]float64, 12),
		Costs:   make([]float64, 12),
	}
	const baseRevenue = 150.0
	for i := 0; i < 12; i++ {
		revenue := math.Max(0, baseRevenue+float64(i)*8+normal(rng, 10))
		series.Revenue[i] = round1(revenue)
		series.Costs[i] = round1(math.Max(0, revenue*0.75+normal(rng, 5)))
	}
	return series
}

func simulateStates(rng *rand.Rand) []models.StatePenetration {
	states := StatePenetration()
	for i := range states {
		jitter := rng.IntN(10000) - 5000
		states[i].Passengers = max(0, states[i].Passengers+jitter)
	}
	return states
}
