// @title 리더십 영향력 진단 API
// @version 1.0
// @description 领导力影响策略问卷服务：加载题库、计算各分类平均分并返回图表数据。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"influence_survey/internal/app"
	"influence_survey/internal/config"
	"influence_survey/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	checkOnly := flag.Bool("check", false, "只加载并校验题库，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.CheckOnly = *checkOnly

	application := app.NewApp(cfg, *configDir)
	defer logger.Log.Sync()

	if cfg.CheckOnly {
		if err := application.Check(context.Background()); err != nil {
			logger.Log.Error("question set check failed", zap.Error(err))
			logger.Log.Sync()
			os.Exit(1)
		}
		return
	}

	application.Run()
}
