package smtp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
}

// Connect configures the client. An empty host leaves mail disabled; a set host needs a valid port.
func Connect(user, password, host, port string, tlsEnabled bool) error {
	if host != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return errors.Errorf("invalid smtp port %q", port)
		}
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
		send:       smtp.SendMail,
		sendTLS:    smtp.SendMailTLS,
	}
	return nil
}

type sendFunc func(addr string, a sasl.Client, from string, to []string, r io.Reader) error

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
	send       sendFunc
	sendTLS    sendFunc
}

func (i impl) configured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.configured() {
		logger.Warn("email not sent: smtp client is not configured")
		return nil
	}
	if to == "" {
		return errors.New("recipient is empty")
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(i.user, to, subject, message))
	addr := i.host + ":" + i.port
	if i.tlsEnabled {
		err = i.sendTLS(addr, auth, i.user, []string{to}, body)
	} else {
		err = i.send(addr, auth, i.user, []string{to}, body)
	}
	if err != nil {
		logger.WithError(err).Error("error sending email")
		return errors.Wrap(err, "error sending email")
	}
	logger.Info("email sent")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Ocavior - %s\r\nMIME-version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		from, to, subject, strings.ReplaceAll(message, "\n", "\r\n"))
}
