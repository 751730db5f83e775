package database

import (
	"fmt"
	"strings"

	"moneytracker/config"
	"moneytracker/logger"
	"moneytracker/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接并自动迁移
func Init(cfg *config.Config) error {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(LogLevel(cfg.Database.LogLevel)),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("自动迁移失败: %w", err)
	}

	DB = db
	logger.Get().Info("数据库初始化成功",
		zap.String("driver", cfg.Database.Driver),
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName))
	return nil
}

// Dialector 根据驱动名构造 gorm 方言
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		return postgres.Open(dsn), nil
	default:
		return mysql.Open(dsn), nil
	}
}

// DSN 构建连接字符串
func DSN(cfg config.DatabaseConfig) (string, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "mysql":
		charset := cfg.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, charset), nil
	case "postgres", "postgresql":
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBName, sslmode), nil
	default:
		return "", fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// LogLevel 把配置中的级别名映射为 gorm 日志级别
func LogLevel(name string) gormlogger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
