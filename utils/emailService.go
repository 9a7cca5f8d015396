package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mendokusaisai/kodomo-wallet/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Kodomo Wallet <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #40916C; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F5EE; padding: 15px; border-radius: 4px; border-left: 4px solid #40916C; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>KODOMO WALLET</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Kodomo Wallet. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendParentInviteEmail invites a co-parent to share management of the
// inviter's children. The link carries the single-use token.
func SendParentInviteEmail(email, inviterName, childName, token string) {
	inviteLink := fmt.Sprintf("%s/invite/parent/%s", config.AppConfig.AppBaseURL, token)

	subject := fmt.Sprintf("%s invited you to manage %s's allowance", inviterName, childName)
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p><strong>%s</strong> invited you to join as a co-parent for <strong>%s</strong>.</p>
		<p>Accepting gives you access to their allowance accounts, withdrawal requests and recurring deposits.</p>
		<div class="info-box">This invitation is valid for 7 days and can be used once.</div>
		<a class="btn" href="%s">Accept Invitation</a>
	`, inviterName, childName, inviteLink)

	go SendEmail([]string{email}, subject, getEmailTemplate("You're Invited", body))
}

// SendChildInviteEmail tells a child how to attach login credentials to
// their existing allowance profile.
func SendChildInviteEmail(email, childName, token string) {
	inviteLink := fmt.Sprintf("%s/invite/child/%s", config.AppConfig.AppBaseURL, token)

	subject := "Your Kodomo Wallet account is ready"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your allowance account is waiting for you. Create your login to see your balance, savings goal and history.</p>
		<div class="info-box">This link is valid for 7 days and can be used once.</div>
		<a class="btn" href="%s">Set Up My Login</a>
	`, childName, inviteLink)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome!", body))
}

// SendWithdrawalApprovedEmail notifies the child that their request went
// through.
func SendWithdrawalApprovedEmail(email, childName, description string, amount int64) {
	subject := "Withdrawal approved"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your withdrawal of <strong>%d</strong> (%s) was approved and deducted from your balance.</p>
	`, childName, amount, description)

	go SendEmail([]string{email}, subject, getEmailTemplate("Request Approved", body))
}
