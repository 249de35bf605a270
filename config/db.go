package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hammer-backend/models"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN(cfg App) (string, error) {
	raw := strings.TrimSpace(cfg.MySQLURL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
	), nil
}

// Connect opens the database, migrates the schema and seeds the bootstrap
// admin. The handle is returned to the caller; nothing global is kept.
func Connect(cfg App) (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	seedDatabase(db, cfg.AdminEmail)
	return db, nil
}

// Migrate applies the schema; split out so tests can run it on their own DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.ProfileUpdate{},
	)
}

// seedDatabase ensures at least one admin identity exists; without one, no
// caller could ever pass the admin gate to promote anybody.
func seedDatabase(db *gorm.DB, adminEmail string) {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" {
		return
	}

	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		log.Println("Admin identity already present")
		return
	}

	admin := models.User{Email: adminEmail, Role: models.RoleAdmin}
	if err := db.Where("email = ?", adminEmail).
		Assign(models.User{Role: models.RoleAdmin}).
		FirstOrCreate(&admin).Error; err != nil {
		log.Printf("warning: failed to seed admin %s: %v", adminEmail, err)
		return
	}
	log.Printf("Admin identity seeded (%s)", adminEmail)
}
