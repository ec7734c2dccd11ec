package database

import (
	"fmt"
	"log"
	"time"

	"github.com/klimatkollen/klimatkollen/app/models"
	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// GetDB returns the shared connection, nil before SetupDatabase ran
func GetDB() *gorm.DB {
	return DB
}

// DSN builds the MySQL data source name from the environment
func DSN() string {
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)
}

func SetupDatabase() {
	var err error
	dsn := DSN()

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,  // not supported before MySQL 5.6
			DontSupportRenameIndex:    true,  // drop & create on rename before MySQL 5.7 and MariaDB
			DontSupportRenameColumn:   true,  // `change` on rename before MySQL 8 and MariaDB
			SkipInitializeWithVersion: false, // auto configure based on the server version
		}), &gorm.Config{})
		if err == nil {
			if err = DB.AutoMigrate(&models.Municipality{}); err != nil {
				log.Printf("Failed to migrate municipalities: %v", err)
			}
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}
