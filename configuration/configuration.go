package configuration

import (
	"log"
	"os"
	"sync"

	"clinic-connect/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the connection to the mobile-app database (doctors, patients,
// availability, appointments and everything else the apps touch).
var DB *gorm.DB

// AdminDB holds the connection to the admin-panel database (admin accounts).
var AdminDB *gorm.DB

// connections caches open handles per DSN so repeated lookups for the same
// database reuse one pool. Entries are created on first use and never evicted.
var (
	connections   = make(map[string]*gorm.DB)
	connectionsMu sync.Mutex
)

// GetConnection returns the cached handle for dsn, opening it on first use.
func GetConnection(dsn string) (*gorm.DB, error) {
	connectionsMu.Lock()
	defer connectionsMu.Unlock()

	if db, ok := connections[dsn]; ok {
		return db, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	connections[dsn] = db
	return db, nil
}

// ConfigDB initializes both database connections and runs migrations.
func ConfigDB() {

	err1 := godotenv.Load(".env")
	if err1 != nil {
		log.Println("Warning: could not load .env file")
	}

	var err error
	DB, err = GetConnection(os.Getenv("APP_DB"))
	if err != nil {
		panic("Failed to connect to the app database")
	}

	AdminDB, err = GetConnection(os.Getenv("ADMIN_DB"))
	if err != nil {
		panic("Failed to connect to the admin database")
	}

	DB.AutoMigrate(
		&models.Appointment{},
		&models.Doctor{},
		&models.Clinic{},
		&models.Patient{},
		&models.Invoice{},
		&models.RazorPay{},
		&models.Prescription{},
		&models.Availability{},
		&models.TimeSlot{},
		&models.Report{},
		&models.Wallet{},
		&models.Withdrawal{},
	)

	AdminDB.AutoMigrate(
		&models.Admin{},
	)
}
