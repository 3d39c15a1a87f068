package main

import (
	"github.com/yanqian/daily-horoscope/internal/domain/horoscope"
	"github.com/yanqian/daily-horoscope/internal/infra/config"
	"github.com/yanqian/daily-horoscope/pkg/metrics"
)

func provideHoroscopeConfig(cfg *config.Config) horoscope.Config {
	return horoscope.Config{
		Location: cfg.Location(),
	}
}

// provideMetricsRecorder returns nil when metrics are off; the recorder and
// the router both treat a nil *metrics.Recorder as disabled.
func provideMetricsRecorder(cfg *config.Config) *metrics.Recorder {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewRecorder()
}

func provideObserver(recorder *metrics.Recorder) horoscope.Observer {
	if recorder == nil {
		return nil
	}
	return recorder
}
