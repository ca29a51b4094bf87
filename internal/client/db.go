package client

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedding-registry-backend/internal/model"
)

// InitDatabase opens MySQL when a DSN is configured and falls back to a local
// sqlite file otherwise, then migrates the schema.
func InitDatabase(databaseURL, sqlitePath string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if databaseURL != "" {
		db, err = gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// Connection pool (important for webhooks)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Present{},
		&model.Order{},
		&model.Cart{},
		&model.CartItem{},
		&model.Sale{},
		&model.Config{},
		&model.Content{},
	)
}
