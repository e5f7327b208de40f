package initializers

import (
	"ocavior-site/config"
	"ocavior-site/db"

	log "github.com/sirupsen/logrus"
)

// InitDBConnection connects the submission journal. Returns false when the journal is disabled.
func InitDBConnection() bool {
	if !*config.Conf.Database.Enabled {
		log.Info("database disabled, submission journal is off")
		return false
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	return true
}
