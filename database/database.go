// File: /database/database.go
package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"motolog-api/models"
)

// Dialector picks the gorm driver for dbType. SQLite only enforces the cascading
// foreign keys when the DSN carries _pragma=foreign_keys(1).
func Dialector(dbType, databaseURL string) (gorm.Dialector, error) {
	switch dbType {
	case "mysql":
		return mysql.Open(databaseURL), nil
	case "postgres", "postgresql":
		return postgres.Open(databaseURL), nil
	case "sqlite":
		return sqlite.Open(databaseURL), nil
	case "sqlserver", "mssql":
		return sqlserver.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

func Initialize(dbType, databaseURL string, maxOpenConns int, debug bool) (*gorm.DB, error) {
	dialector, err := Dialector(dbType, databaseURL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}

	log.Printf("Connected to %s database", dbType)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Account{},
		&models.Verification{},
		&models.Motorcycle{},
		&models.Service{},
		&models.Event{},
		&models.Modification{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
