package logger

import "github.com/prometheus/client_golang/prometheus"

const (
	metricsNamespace = "alienprobe"
	metricsSubsystem = "logger"
)

var (
	// MessagesTotal 按级别和分发器统计成功输出的日志条数
	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "messages_total",
			Help:      "Total number of log messages written by level and dispatcher",
		},
		[]string{"level", "dispatcher"},
	)

	// MessagesSuppressed 按级别统计被级别过滤掉的日志条数
	MessagesSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "messages_suppressed_total",
			Help:      "Total number of log messages suppressed by level filtering",
		},
		[]string{"level"},
	)

	// DispatchErrors 按分发器统计写入失败次数
	DispatchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "dispatch_errors_total",
			Help:      "Total number of dispatcher write failures",
		},
		[]string{"dispatcher"},
	)

	// DispatchDuration 按分发器统计单条日志的写入耗时
	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "dispatch_duration_seconds",
			Help:      "Duration of dispatcher writes in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"dispatcher"},
	)
)

func init() {
	prometheus.MustRegister(MessagesTotal)
	prometheus.MustRegister(MessagesSuppressed)
	prometheus.MustRegister(DispatchErrors)
	prometheus.MustRegister(DispatchDuration)
}
