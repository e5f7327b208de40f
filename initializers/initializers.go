package initializers

import (
	"context"
	"time"

	"ocavior-site/config"
	"ocavior-site/db"
	"ocavior-site/fiberlog"
	adminpanelhandler "ocavior-site/lib/admin-panel"
	adminpanelauthhandler "ocavior-site/lib/admin-panel/auth"
	"ocavior-site/lib/careers"
	auditstore "ocavior-site/lib/careers/audit-store"
	retentionworker "ocavior-site/lib/careers/retention-worker"
	"ocavior-site/lib/content"
	employeesclient "ocavior-site/lib/employees-client"
	xlsexport "ocavior-site/lib/export/xls"
	filestorage "ocavior-site/lib/file-storage"
	"ocavior-site/lib/smtp"
	connectionhub "ocavior-site/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)

	var store auditstore.Provider
	if InitDBConnection() {
		store = auditstore.NewInstance(db.DB)
	}
	InitS3(ctx)
	InitSmtp()

	content.NewHandler()
	connectionhub.Init(ctx)
	employeesclient.NewProvider(config.Conf.Backend.BaseURL, time.Duration(config.Conf.Backend.TimeoutSec)*time.Second)
	careers.NewHandler(MaxResumeSize(), SessionTTL(), careers.Deps{
		Client:      employeesclient.Instance,
		Storage:     filestorage.Instance,
		AuditStore:  store,
		Mailer:      smtp.Instance,
		NotifyEmail: config.Conf.Careers.NotifyEmail,
	})
	xlsexport.NewHandler()
	adminpanelhandler.NewHandler(store, xlsexport.Instance)
	adminpanelauthhandler.NewHandler(config.Conf.Admin.Login, config.Conf.Admin.Password,
		config.Conf.Auth.JWTSecret, config.Conf.Auth.JWTExpireInSec)

	if store != nil {
		retentionworker.StartWorker(ctx, store, config.Conf.Database.RetentionDays)
	}
}

func MaxResumeSize() int64 {
	return int64(config.Conf.Careers.MaxResumeSizeMb) * 1024 * 1024
}

func SessionTTL() time.Duration {
	return time.Duration(config.Conf.Careers.SessionTTLMin) * time.Minute
}
