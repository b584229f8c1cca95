package mailing

import (
	"fmt"
	"gopkg.in/gomail.v2"
	"nourishnet/internal/utils"
	"strconv"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendVerificationMail emails the signed verification link used to confirm
// a newly registered address.
func SendVerificationMail(toEmail string, name string, token string) error {
	emailConfig := LoadMailConfig()
	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", emailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to NourishNet! Please confirm your email address by clicking the link below:</p><p><a href=\"%s\">Verify my email</a></p>",
		name, link,
	)
	return SendMail(toEmail, "Verify your NourishNet account", body)
}
