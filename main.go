// @title InterviewMate 后端 API
// @version 1.0
// @description AI 模拟面试练习平台的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"interview_prep_backend/internal/app"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
)

func main() {
	// 命令行参数
	adminToken := flag.Bool("admin-token", false, "签发一个管理员令牌并退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 运维接口令牌通过带外方式签发
	if *adminToken {
		token, err := util.GenerateJWT("ops", util.AdminRole, cfg.JWT.Secret, cfg.JWT.ExpireTime)
		if err != nil {
			log.Fatalf("Failed to generate admin token: %v", err)
		}
		log.Println(token)
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
