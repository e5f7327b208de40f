package initializers

import (
	"ocavior-site/fiberlog"

	log "github.com/sirupsen/logrus"
)

func InitLogger(level string) *fiberlog.Config {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	log.SetFormatter(formatter)
	log.SetLevel(lvl)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
	}

	// request log keeps bodies at debug level only
	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetLevel(lvl)
	tags := []string{
		fiberlog.TagMethod,
		fiberlog.TagPath,
		fiberlog.TagStatus,
		fiberlog.TagLatency,
		fiberlog.TagIP,
		fiberlog.RequestID,
		fiberlog.TagSessionID,
	}
	if lvl >= log.DebugLevel {
		tags = append(tags, fiberlog.TagBody, fiberlog.TagResBody)
	}
	return &fiberlog.Config{
		Logger: logger,
		Tags:   tags,
		Skip:   fiberlog.SkipAssets,
	}
}
