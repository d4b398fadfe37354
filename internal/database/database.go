// Package database
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/config"
	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/log"
	"github.com/mse-lab/labbook/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type databaseCloser struct {
	db *gorm.DB
}

func (closer *databaseCloser) Invoke(_ context.Context) error {
	pool, err := closer.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// ConnectDatabase 建立数据库连接, 迁移表结构并组装操作集合.
// 返回的Callable用于在应用关闭时释放连接池
func ConnectDatabase(loggerInterface log.LoggerInterface, conf *config.Config, debug bool) (global.Callable, *operation.DatabaseOperations, error) {
	dialector := conf.Database.GetConnection(loggerInterface)
	if dialector == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", conf.Database.Type)
	}

	connectionConfig := gorm.Config{
		PrepareStmt:               true,
		DefaultTransactionTimeout: 5 * time.Second,
	}
	if debug {
		connectionConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	err = db.Migrator().AutoMigrate(&operation.BookingRecord{}, &operation.Equipment{}, &operation.Setting{})
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := float32(conf.Database.ServerMaxConnections) * 0.8 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                            // 空闲连接约为最大连接的20%

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxLifetime(conf.Database.ConnectIdleDuration)
	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}

	tableStore := NewGormStore(db)
	queryTimeout := conf.Database.QueryDuration
	operations := operation.NewDatabaseOperations(
		NewRecordOperation(loggerInterface, tableStore, queryTimeout),
		NewEquipmentOperation(loggerInterface, tableStore, queryTimeout),
		NewSettingOperation(loggerInterface, tableStore, queryTimeout, conf.Server.General.DefaultAdminPassword),
	)

	if err := operations.SettingOperation().InitDefaultSettings(); err != nil {
		return nil, nil, fmt.Errorf("error occured while initializing default settings: %v", err)
	}

	loggerInterface.InfoF("Database connected, type %s", conf.Database.Type)
	return &databaseCloser{db: db}, operations, nil
}
