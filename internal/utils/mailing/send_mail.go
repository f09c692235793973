package mailing

import (
	"Care-Crumbs/internal/utils"
	"fmt"
	"gopkg.in/gomail.v2"
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

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}

// SendResetCodeMail delivers a password reset code. The template mirrors the
// in-app styling used on transactional mails.
func SendResetCodeMail(toEmail string, code string) error {
	body := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2 style="color: #FE6807; text-align: center;">Care Crumbs - Password Reset</h2>
			<div style="font-size: 18px; text-align: center; margin: 30px 0; padding: 20px; background-color: #f8f8f8; border-radius: 10px;">
				<p>Your reset code is:</p>
				<h1 style="letter-spacing: 5px; font-size: 32px;">%s</h1>
				<p style="color: #666; font-size: 14px;">This code will expire in 1 hour</p>
			</div>
			<p style="text-align: center; color: #666; font-size: 14px;">If you didn't request this password reset, please ignore this email.</p>
		</div>`, code)

	return SendMail(toEmail, "Care Crumbs - Password Reset Code", body)
}
