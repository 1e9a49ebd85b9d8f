package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nba-draft-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	poolLoads        metric.Int64Counter
	poolDropped      metric.Int64Counter
	poolSize         metric.Float64Histogram
	heightFallbacks  metric.Int64Counter
	picks            metric.Int64Counter
	draftsCompleted  metric.Int64Counter
	evaluations      metric.Int64Counter
	evaluationScore  metric.Float64Histogram
	evaluationMs     metric.Float64Histogram
	sessionsEvicted  metric.Int64Counter
	snapshotsPruned  metric.Int64Counter
	sweepFailures    metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	poolLoads, err := meter.Int64Counter("pool_loads_total")
	if err != nil {
		return nil, err
	}
	poolDropped, err := meter.Int64Counter("pool_dropped_records_total")
	if err != nil {
		return nil, err
	}
	poolSize, err := meter.Float64Histogram("pool_players")
	if err != nil {
		return nil, err
	}
	heightFallbacks, err := meter.Int64Counter("height_parse_fallbacks_total")
	if err != nil {
		return nil, err
	}
	picks, err := meter.Int64Counter("draft_picks_total")
	if err != nil {
		return nil, err
	}
	draftsCompleted, err := meter.Int64Counter("drafts_completed_total")
	if err != nil {
		return nil, err
	}
	evaluations, err := meter.Int64Counter("roster_evaluations_total")
	if err != nil {
		return nil, err
	}
	evaluationScore, err := meter.Float64Histogram("roster_evaluation_score",
		metric.WithExplicitBucketBoundaries(50, 65, 70, 75, 80, 85, 90, 95, 100))
	if err != nil {
		return nil, err
	}
	evaluationMs, err := meter.Float64Histogram("roster_evaluation_duration_ms")
	if err != nil {
		return nil, err
	}
	sessionsEvicted, err := meter.Int64Counter("sessions_evicted_total")
	if err != nil {
		return nil, err
	}
	snapshotsPruned, err := meter.Int64Counter("snapshots_pruned_total")
	if err != nil {
		return nil, err
	}
	sweepFailures, err := meter.Int64Counter("sweep_failures_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		requests:         requests,
		requestLatencyMs: requestLatency,
		poolLoads:        poolLoads,
		poolDropped:      poolDropped,
		poolSize:         poolSize,
		heightFallbacks:  heightFallbacks,
		picks:            picks,
		draftsCompleted:  draftsCompleted,
		evaluations:      evaluations,
		evaluationScore:  evaluationScore,
		evaluationMs:     evaluationMs,
		sessionsEvicted:  sessionsEvicted,
		snapshotsPruned:  snapshotsPruned,
		sweepFailures:    sweepFailures,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordPoolLoad(pool string, kept, dropped int) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrPool, pool)}
	o.recordCounter(o.poolLoads, 1, attrs...)
	if dropped > 0 {
		o.recordCounter(o.poolDropped, int64(dropped), attrs...)
	}
	o.recordHistogram(o.poolSize, float64(kept), attrs...)
}

func (o *otelInstruments) recordHeightFallback() {
	if o == nil {
		return
	}
	o.recordCounter(o.heightFallbacks, 1)
}

func (o *otelInstruments) recordPick(kind string) {
	if o == nil {
		return
	}
	o.recordCounter(o.picks, 1, attribute.String(AttrKind, kind))
}

func (o *otelInstruments) recordDraftCompleted() {
	if o == nil {
		return
	}
	o.recordCounter(o.draftsCompleted, 1)
}

func (o *otelInstruments) recordEvaluation(score int, rosterSize int, duration time.Duration) {
	if o == nil {
		return
	}
	o.recordCounter(o.evaluations, 1, attribute.Int("roster_size", rosterSize))
	o.recordHistogram(o.evaluationScore, float64(score))
	o.recordHistogram(o.evaluationMs, float64(duration.Microseconds())/1000)
}

func (o *otelInstruments) recordSweep(evicted, pruned int, err error) {
	if o == nil {
		return
	}
	if evicted > 0 {
		o.recordCounter(o.sessionsEvicted, int64(evicted))
	}
	if pruned > 0 {
		o.recordCounter(o.snapshotsPruned, int64(pruned))
	}
	if err != nil {
		o.recordCounter(o.sweepFailures, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
