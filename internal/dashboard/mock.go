package dashboard

import (
	"math"
	"math/rand"
	"time"

	"github.com/trustlens/tlens/internal/api"
)

// The demo catalog: four fixed sources and five canned alert messages.
// Shapes are fixed; statuses, severities, and metric values are sampled
// fresh on every load so the demo looks alive.
var mockSourceCatalog = []struct {
	id   string
	name string
	typ  string
}{
	{"1", "Orders DB", "postgres"},
	{"2", "Users API", "api"},
	{"3", "Inventory S3", "s3"},
	{"4", "Billing Warehouse", "postgres"},
}

var mockAlertCatalog = []string{
	"Orders freshness > 60 min",
	"Email NULL rate spiked",
	"Inventory sync delayed",
	"Users API schema drift detected",
	"Billing rows below forecast",
}

const mockAlertCount = 5

var allStatuses = []api.Status{api.StatusHealthy, api.StatusWarning, api.StatusFailing}

var allSeverities = []api.Severity{api.SeverityLow, api.SeverityMedium, api.SeverityHigh}

// synthSources builds the four demo sources with uniformly random statuses
// and lastRun = now.
func synthSources(rng *rand.Rand, now time.Time) []api.Source {
	sources := make([]api.Source, 0, len(mockSourceCatalog))
	for _, tmpl := range mockSourceCatalog {
		sources = append(sources, api.Source{
			ID:      tmpl.id,
			Name:    tmpl.name,
			Type:    tmpl.typ,
			Status:  allStatuses[rng.Intn(len(allStatuses))],
			LastRun: now.UTC().Format(time.RFC3339),
		})
	}
	return sources
}

// synthAlerts builds five demo alerts with index-derived ids, staggered
// backward in time by index × uniform[1,9) minutes. The random multiplier
// means timestamps are usually, but not strictly, descending.
func synthAlerts(rng *rand.Rand, now time.Time) []api.Alert {
	alerts := make([]api.Alert, 0, mockAlertCount)
	for i := 1; i <= mockAlertCount; i++ {
		minutes := float64(i) * (1 + rng.Float64()*8)
		createdAt := now.Add(-time.Duration(minutes * float64(time.Minute)))
		alerts = append(alerts, api.Alert{
			ID:        i,
			Severity:  allSeverities[rng.Intn(len(allSeverities))],
			Message:   mockAlertCatalog[rng.Intn(len(mockAlertCatalog))],
			CreatedAt: createdAt.UTC().Format(time.RFC3339),
		})
	}
	return alerts
}

// synthTrend builds n trend points spaced exactly one minute apart, ending
// at now, each with freshly sampled metrics.
func synthTrend(rng *rand.Rand, now time.Time, n int) []api.TrendPoint {
	points := make([]api.TrendPoint, 0, n)
	for i := 0; i < n; i++ {
		ts := now.Add(-time.Duration(n-1-i) * time.Minute)
		points = append(points, api.TrendPoint{
			Label:            ts.Format("15:04"),
			NullRate:         sampleNullRate(rng),
			FreshnessMinutes: sampleFreshness(rng),
		})
	}
	return points
}

// sampleNullRate draws from uniform [0, 20) and rounds to one decimal place.
func sampleNullRate(rng *rand.Rand) float64 {
	return math.Round(rng.Float64()*20*10) / 10
}

// sampleFreshness draws from uniform [5, 120) minutes, rounded to a whole
// minute.
func sampleFreshness(rng *rand.Rand) float64 {
	return math.Round(5 + rng.Float64()*115)
}

// MockSourceNames lists the demo source names, for help text and tests.
func MockSourceNames() []string {
	names := make([]string, 0, len(mockSourceCatalog))
	for _, tmpl := range mockSourceCatalog {
		names = append(names, tmpl.name)
	}
	return names
}
