package configwatcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/pkg/logger"
)

const testConfigYAML = `server:
  port: "8080"
  mode: debug

jwt:
  secret: test-secret
  expire_hours: 72

scoring:
  cache_ttl_minutes: 30
`

func TestMain(m *testing.M) {
	logger.InitLogger(&config.Config{})
	m.Run()
}

func TestWatchConfigReloadsAfterWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	reloaded := make(chan *config.Config, 1)
	go WatchConfig(path, nil, func(cfg interface{}) {
		if c, ok := cfg.(*config.Config); ok {
			select {
			case reloaded <- c:
			default:
			}
		}
	})

	// watcher 등록이 끝나기를 기다린다
	time.Sleep(200 * time.Millisecond)

	updated := strings.Replace(testConfigYAML, "cache_ttl_minutes: 30", "cache_ttl_minutes: 45", 1)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Scoring.CacheTTLMinutes != 45 {
			t.Errorf("CacheTTLMinutes = %d, want 45", cfg.Scoring.CacheTTLMinutes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not reloaded")
	}
}

func TestWatchConfigDebouncesRepeatedWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	reloads := make(chan struct{}, 16)
	go WatchConfig(path, nil, func(cfg interface{}) {
		reloads <- struct{}{}
	})

	time.Sleep(200 * time.Millisecond)

	// 1초 디바운스 창 안에서 연속 저장하면 리로드는 한 번만 일어나야 한다
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(testConfigYAML), 0644); err != nil {
			t.Fatalf("rewrite config: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
	}

	select {
	case <-reloads:
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not reloaded")
	}

	select {
	case <-reloads:
		t.Error("writes inside the debounce window should collapse into one reload")
	case <-time.After(2 * time.Second):
	}
}
