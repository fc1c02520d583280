package service

import (
	"tg-pingbot/internal/config"
	"tg-pingbot/internal/logger"
	"tg-pingbot/internal/models"
	"tg-pingbot/internal/storage"
)

var (
	groupInfoManager = models.NewGroupInfoManager()
	memberRepository *storage.MemberRepository
	globalConfig     *config.Config
)

// Initialize initializes the service with configuration
func Initialize(cfg *config.Config) {
	globalConfig = cfg
}

// InitRepositories initializes the repositories if database is enabled
func InitRepositories() {
	if globalConfig != nil && !globalConfig.Database.Enabled {
		logger.Infof("Member directory disabled by configuration")
		return
	}
	if db := storage.GetDB(); db != nil {
		memberRepository = storage.NewMemberRepository(db)
		if err := memberRepository.MigrateTable(); err != nil {
			logger.Warningf("Error migrating ChatMember table: %v", err)
		}
	}
}
