package initializers

import (
	"ocavior-site/config"
	"ocavior-site/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if config.Conf.Smtp.Host == "" {
		log.Info("smtp host is not set, HR notifications are disabled")
		return
	}
	log.
		WithField("host", config.Conf.Smtp.Host).
		WithField("port", config.Conf.Smtp.Port).
		Info("smtp client configured")
}
