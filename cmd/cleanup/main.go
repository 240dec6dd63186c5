package main

import (
	"flag"
	"log"
	"os"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/database"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

var (
	purgeCodes   = flag.Bool("purge-codes", true, "Delete expired verification codes")
	sweepOrphans = flag.Bool("sweep-orphans", true, "Delete folders/content whose category is gone")
)

func main() {
	flag.Parse()

	log.Println("Starting cleanup task...")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 1. 清理过期验证码
	if *purgeCodes {
		verifyRepo := repository.NewVerificationRepository(db)
		purged, err := verifyRepo.PurgeExpired()
		if err != nil {
			log.Printf("Failed to purge expired codes: %v", err)
		} else {
			log.Printf("Purged %d expired verification codes", purged)
		}
	}

	// 2. 清理孤儿数据（分类已删但目录/内容残留）
	if *sweepOrphans {
		folderRepo := repository.NewFolderRepository(db)
		contentRepo := repository.NewContentRepository(db)

		folders, err := folderRepo.DeleteOrphans()
		if err != nil {
			log.Printf("Failed to sweep orphan folders: %v", err)
		} else {
			log.Printf("Deleted %d orphan folders", folders)
		}

		content, err := contentRepo.DeleteOrphans()
		if err != nil {
			log.Printf("Failed to sweep orphan content: %v", err)
		} else {
			log.Printf("Deleted %d orphan content rows", content)
		}
	}

	log.Println("Cleanup completed")
}
