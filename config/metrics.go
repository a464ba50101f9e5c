package config

import "github.com/prometheus/client_golang/prometheus"

const (
	metricsNamespace = "alienprobe"
	metricsSubsystem = "config"
)

var (
	// LevelReloadsTotal 按结果统计级别热重载次数
	LevelReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "level_reloads_total",
			Help:      "Total number of log level reload attempts by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(LevelReloadsTotal)
}
