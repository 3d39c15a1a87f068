//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/daily-horoscope/internal/bootstrap"
	"github.com/yanqian/daily-horoscope/internal/domain/horoscope"
	"github.com/yanqian/daily-horoscope/internal/infra/config"
	httpiface "github.com/yanqian/daily-horoscope/internal/interface/http"
	"github.com/yanqian/daily-horoscope/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideHoroscopeConfig,
		provideMetricsRecorder,
		provideObserver,
		horoscope.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
