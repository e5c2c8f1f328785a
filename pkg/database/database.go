package database

import (
	"fmt"
	"log"

	"footballpro_backend/internal/config"
	"footballpro_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string, forceMigrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式不自动迁移，用 -migrate 参数显式触发
	if mode != "release" || forceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
		seedCourses(db)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.PlayerProfile{},
		&model.Course{},
		&model.Video{},
		&model.UserActivity{},
		&model.Booking{},
	)
}

// seedCourses 空库时插入入门课程，方便新环境直接试用
func seedCourses(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	defaultCourses := []model.Course{
		{Title: "控球基础", Description: "第一触球、带球与护球的基础训练", Position: model.Midfielder, Level: model.Beginner, Published: true},
		{Title: "射门入门", Description: "正脚背射门与推射的动作要领", Position: model.Forward, Level: model.Beginner, Published: true},
		{Title: "一对一防守", Description: "站位、卡位与抢断时机", Position: model.Defender, Level: model.Intermediate, Published: true},
		{Title: "门将手型与扑救", Description: "基本手型、侧扑与出击判断", Position: model.Goalkeeper, Level: model.Beginner, Published: true},
	}
	for _, c := range defaultCourses {
		db.Create(&c)
	}
}
