// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェアやサービス層、リポジトリから利用する。
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordDoctorCreated()
	RecordSlotCreated()
	RecordDoctorCacheLookup(hit bool)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	doctorsCreated    prometheus.Counter
	slotsCreated      prometheus.Counter
	doctorCacheLookup *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reallydirty_http_requests_total",
			Help: "HTTPリクエスト数（メソッド・ルート・ステータスコード別）",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reallydirty_http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		doctorsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reallydirty_doctors_created_total",
			Help: "登録された医師の合計数",
		}),
		slotsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reallydirty_slots_created_total",
			Help: "登録された予約枠の合計数",
		}),
		doctorCacheLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reallydirty_doctor_cache_lookups_total",
			Help: "医師キャッシュの参照数（hit/miss別）",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.doctorsCreated,
		c.slotsCreated,
		c.doctorCacheLookup,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエストの件数と処理時間を記録する。
// routeにはchiのルートパターン（例: /doctor/{doctorId}/slots）を渡し、ラベルの増殖を防ぐ。
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDoctorCreated は医師の登録を記録する。
func (c *Collector) RecordDoctorCreated() {
	c.doctorsCreated.Inc()
}

// RecordSlotCreated は予約枠の登録を記録する。
func (c *Collector) RecordSlotCreated() {
	c.slotsCreated.Inc()
}

// RecordDoctorCacheLookup は医師キャッシュのヒット/ミスを記録する。
func (c *Collector) RecordDoctorCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.doctorCacheLookup.WithLabelValues(result).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)
