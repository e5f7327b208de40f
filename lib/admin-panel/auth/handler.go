package adminpanelauthhandler

import (
	"crypto/subtle"

	authutils "ocavior-site/lib/utils/auth-utils"
	adminapimodels "ocavior-site/models/api/admin"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(login, password string) (response adminapimodels.JWTResponse, err error)
}

var Instance Provider

var ErrBadCredentials = errors.New("invalid login or password")

func NewHandler(login, password, jwtSecret string, jwtExpireInSec int) {
	Instance = impl{
		login:          login,
		password:       password,
		jwtSecret:      jwtSecret,
		jwtExpireInSec: jwtExpireInSec,
	}
}

type impl struct {
	login          string
	password       string
	jwtSecret      string
	jwtExpireInSec int
}

func (i impl) Login(login, password string) (response adminapimodels.JWTResponse, err error) {
	logger := log.WithField("login", login)
	if i.password == "" || i.jwtSecret == "" {
		logger.Warn("admin login attempt while admin access is not configured")
		return adminapimodels.JWTResponse{}, ErrBadCredentials
	}
	loginOk := subtle.ConstantTimeCompare([]byte(login), []byte(i.login)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(password), []byte(i.password)) == 1
	if !loginOk || !passwordOk {
		logger.Info("admin credentials check failed")
		return adminapimodels.JWTResponse{}, ErrBadCredentials
	}
	tokenString, err := authutils.GetToken(i.login, i.jwtSecret, i.jwtExpireInSec)
	if err != nil {
		logger.WithError(err).Error("error signing JWT")
		return adminapimodels.JWTResponse{}, err
	}
	return adminapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
