// @title StudyHub 后端 API
// @version 1.0
// @description 学习仪表盘的后端服务器：进度、学习记录、笔记、推荐资料与通知。
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
	"flag"
	"log"
	"path/filepath"

	"studyhub_backend/internal/app"
	"studyhub_backend/internal/config"
	"studyhub_backend/pkg/configwatcher"
	"studyhub_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	noSeed := flag.Bool("no-seed", false, "启动时不写入演示数据")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.SkipSeed = *noSeed

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热加载
	go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ApplyConfig)

	application.Run()
}
