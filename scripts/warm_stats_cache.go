// 手动预热仪表盘统计缓存脚本
//
// 主应用在请求未命中时按需计算并写入5分钟缓存。
// 此脚本仅用于手动预热，例如大版本发布前或批量导入历史训练数据后。
//
// 用法: go run scripts/warm_stats_cache.go

package main

import (
	"context"
	"log"
	"os"

	"footballpro_backend/internal/config"
	"footballpro_backend/internal/repository"
	"footballpro_backend/internal/service"
	"footballpro_backend/pkg/database"
	"footballpro_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Redis连接失败: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	dashboard := service.NewDashboardService(
		repository.NewActivityRepository(db),
		repository.NewProfileRepository(db),
		repository.NewBookingRepository(db),
		rdb,
	)

	ctx := context.Background()
	page, limit := 1, 200
	warmed, failed := 0, 0

	log.Println("手动触发统计缓存预热...")
	for {
		users, _, err := userRepo.List(page, limit)
		if err != nil {
			log.Fatalf("读取用户列表失败: %v", err)
		}
		if len(users) == 0 {
			break
		}

		for i := range users {
			if _, err := dashboard.GetStats(ctx, users[i].ID); err != nil {
				log.Printf("用户 %d 预热失败: %v", users[i].ID, err)
				failed++
				continue
			}
			warmed++
		}
		page++
	}

	log.Printf("完成！预热 %d 个用户，失败 %d 个", warmed, failed)
}
