package app

import (
	"context"
	"testing"
	"time"

	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&config.Config{})
	m.Run()
}

// 트레이서 프로바이더는 App 생성 시점이 아니라 서버 종료 시점에 내려가야 한다.
func TestTracingLifecycle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Tracing.Enabled = true
	cfg.Tracing.CollectorEndpoint = "http://127.0.0.1:14268/api/traces"

	a := &App{Config: cfg}
	if err := a.initTracing(cfg); err != nil {
		t.Fatalf("initTracing() error = %v", err)
	}
	if a.tracer == nil {
		t.Fatal("tracer provider must stay alive on App after init")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	a.shutdownTracing(ctx)

	if a.tracer != nil {
		t.Error("tracer provider should be cleared after shutdown")
	}
}

func TestShutdownTracingWithoutInit(t *testing.T) {
	a := &App{Config: &config.Config{}}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// 트레이싱이 꺼져 있으면 아무 일도 하지 않아야 한다
	a.shutdownTracing(ctx)
}
