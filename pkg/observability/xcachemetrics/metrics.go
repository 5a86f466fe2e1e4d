package xcachemetrics

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xintercept/pkg/intercept/xdcache"
)

// defaultInstrumentationName OTel instrumentation 名称。
const defaultInstrumentationName = "github.com/omeyang/xintercept/xcachemetrics"

// ErrNilCache 表示注册指标时未提供缓存。
var ErrNilCache = errors.New("xcachemetrics: nil cache")

type config struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义指标注册的配置选项。
type Option func(*config)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认使用全局 Provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// Registration 是一次指标注册的句柄。
type Registration struct {
	reg metric.Registration
}

// Unregister 注销采集回调。幂等性由 OTel SDK 保证。
func (r *Registration) Unregister() error {
	return r.reg.Unregister()
}

// Register 为 cache 注册异步计数采集。
func Register(cache *xdcache.Cache, opts ...Option) (*Registration, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	cfg := &config{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	hits, err := meter.Int64ObservableCounter(
		"xintercept.cache.hits",
		metric.WithDescription("registered-entry lookup hits"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcachemetrics: create counter failed: %w", err)
	}
	onDemand, err := meter.Int64ObservableCounter(
		"xintercept.cache.ondemand",
		metric.WithDescription("on-demand resolutions for unregistered types"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcachemetrics: create counter failed: %w", err)
	}
	redirects, err := meter.Int64ObservableCounter(
		"xintercept.cache.redirects",
		metric.WithDescription("interface method redirects"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcachemetrics: create counter failed: %w", err)
	}
	registrations, err := meter.Int64ObservableCounter(
		"xintercept.cache.registrations",
		metric.WithDescription("type registrations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcachemetrics: create counter failed: %w", err)
	}

	reg, err := meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			s := cache.Stats()
			o.ObserveInt64(hits, clampInt64(s.Hits))
			o.ObserveInt64(onDemand, clampInt64(s.OnDemand))
			o.ObserveInt64(redirects, clampInt64(s.Redirects))
			o.ObserveInt64(registrations, clampInt64(s.Registrations))
			return nil
		},
		hits, onDemand, redirects, registrations,
	)
	if err != nil {
		return nil, fmt.Errorf("xcachemetrics: register callback failed: %w", err)
	}
	return &Registration{reg: reg}, nil
}

// clampInt64 将 uint64 计数安全收敛到 int64 值域。
func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
