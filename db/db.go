package db

import (
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (err error) {
	if DB != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "error connecting to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "error getting database pool")
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		DB = db.Debug()
	} else {
		DB = db
	}
	if err = PingDB(); err != nil {
		return errors.Wrap(err, "database is not reachable")
	}
	if migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.
		WithField("host", host).
		WithField("database", database).
		Info("database connected")
	return nil
}

// PingDB reports whether the journal database answers. Returns an error when it is not connected.
func PingDB() error {
	if DB == nil {
		return errors.New("database is not connected")
	}
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
