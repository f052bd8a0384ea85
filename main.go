// @title 특수교육 수업 지도안 API
// @version 1.0
// @description 특수교육 수업 지도안 작성·점검·평가 백엔드 서버.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"sped_lesson_backend/internal/app"
	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/pkg/configwatcher"
	"sped_lesson_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "데이터베이스 마이그레이션만 실행하고 종료")
	migrate := flag.Bool("migrate", false, "release 모드에서도 시작 시 마이그레이션을 강제 실행")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, application.OnConfigReload)

	application.Run()
}
