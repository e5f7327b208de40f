package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		LogLevel   string `default:"info" env:"LOG_LEVEL"`
	}
	Backend struct {
		BaseURL    string `default:"http://localhost:5000" env:"BACKEND_BASE_URL"`
		TimeoutSec int    `default:"0" env:"BACKEND_TIMEOUT_SEC"`
	}
	Careers struct {
		MaxResumeSizeMb int    `default:"10" env:"CAREERS_MAX_RESUME_SIZE_MB"`
		SessionTTLMin   int    `default:"30" env:"CAREERS_SESSION_TTL_MIN"`
		NotifyEmail     string `default:"" env:"CAREERS_NOTIFY_EMAIL"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ocavior" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		RetentionDays  int    `default:"90" env:"DB_RETENTION_DAYS"`
	}
	S3 struct {
		Enabled         *bool  `default:"false" env:"S3_ENABLED"`
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"ocavior-resumes" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Admin struct {
		Login    string `default:"admin" env:"ADMIN_LOGIN"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"3600" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
	ErrNotify struct {
		Addr string `default:"" env:"ERR_NOTIFY_ADDR"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
