package sqlite

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewDB 打开内存SQLite数据库并迁移表结构
// 设计说明:
// 1. DSN必须是内存库(config.Validate保证),进程退出数据即消失
// 2. 共享缓存的内存库在最后一个连接关闭时被销毁,因此保持1个常驻连接
// 3. SQLite写入本身串行,连接池上限设为1避免 "database table is locked"
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.Storage.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := db.AutoMigrate(&BookModel{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if log != nil {
		log.Info("sqlite store ready", zap.String("dsn", cfg.Storage.DSN))
	}
	return db, nil
}

// Close 关闭底层连接,内存库随之销毁
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// BookModel 图书表
// Seq自增,用于按插入顺序返回列表
type BookModel struct {
	Seq        uint      `gorm:"primaryKey;autoIncrement"`
	ID         string    `gorm:"uniqueIndex;size:64;not null"`
	Name       string    `gorm:"size:255;not null"`
	Year       int
	Author     string    `gorm:"size:255"`
	Summary    string    `gorm:"type:text"`
	Publisher  string    `gorm:"size:255"`
	PageCount  int
	ReadPage   int
	Finished   bool
	Reading    bool
	InsertedAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName 表名
func (BookModel) TableName() string {
	return "books"
}
