package db

import (
	dbmodels "ocavior-site/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.SubmissionAudit{}); err != nil {
		return errors.Wrap(err, "error migrating SubmissionAudit")
	}
	log.Info("migrations done")
	return nil
}
