package mailx

import (
	"html/template"
	"strings"
	"time"
)

// InviteSubject is the subject line used for admin invitation mail.
const InviteSubject = "Admin Invitation - Intlakaa"

// RequestSubject is the subject line used for operator notifications about
// new consultation requests.
const RequestSubject = "New Consultation Request - Intlakaa"

var inviteTmpl = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #1f2937; background: #f3f4f6; padding: 32px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden;">
    <div style="background: #4F46E5; color: white; padding: 28px; text-align: center;">
      <h1 style="margin: 0;">Welcome to Intlakaa</h1>
    </div>
    <div style="padding: 32px;">
      <p>Hello{{if .Name}} {{.Name}}{{end}},</p>
      <p>You have been invited to join <strong>Intlakaa</strong> as an administrator.
         Click the button below to accept your invitation and set your password:</p>
      <p style="text-align: center; margin: 28px 0;">
        <a href="{{.InviteURL}}" style="background: #4F46E5; color: white; padding: 12px 32px; border-radius: 6px; text-decoration: none;">Accept Invitation</a>
      </p>
      <p>Or copy and paste this link into your browser:</p>
      <p style="word-break: break-all; color: #4F46E5;">{{.InviteURL}}</p>
      <p><strong>Note:</strong> this invitation expires in 1 hour.</p>
      <p style="color: #9ca3af; font-size: 13px;">If you didn't expect this invitation you can safely ignore this email. No account will be created.</p>
    </div>
    <div style="padding: 16px; text-align: center; color: #6b7280; font-size: 12px;">
      &copy; {{.Year}} Intlakaa. All rights reserved.
    </div>
  </div>
</body>
</html>`))

// InviteEmail holds the fields rendered into the invitation template.
type InviteEmail struct {
	Name      string // optional display name
	InviteURL string
	Year      int
}

// RenderInvite renders the admin invitation email body.
func RenderInvite(name, inviteURL string) (string, error) {
	var sb strings.Builder
	err := inviteTmpl.Execute(&sb, InviteEmail{
		Name:      name,
		InviteURL: inviteURL,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

var requestTmpl = template.Must(template.New("request").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #1f2937; background: #f3f4f6; padding: 32px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden;">
    <div style="background: #4F46E5; color: white; padding: 28px; text-align: center;">
      <h1 style="margin: 0;">New consultation request</h1>
    </div>
    <div style="padding: 32px;">
      <p>A new consultation request has been received from <strong>{{.Name}}</strong>.</p>
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 8px; color: #6b7280;">Name</td><td style="padding: 8px;">{{.Name}}</td></tr>
        <tr><td style="padding: 8px; color: #6b7280;">Phone</td><td style="padding: 8px;">{{.Phone}}</td></tr>
        <tr><td style="padding: 8px; color: #6b7280;">Store URL</td><td style="padding: 8px;">{{.StoreURL}}</td></tr>
        <tr><td style="padding: 8px; color: #6b7280;">Monthly sales</td><td style="padding: 8px;">{{.MonthlySales}}</td></tr>
        <tr><td style="padding: 8px; color: #6b7280;">Received at</td><td style="padding: 8px;">{{.ReceivedAt}}</td></tr>
      </table>
      <p style="color: #9ca3af; font-size: 13px; margin-top: 24px;">You can review all requests from the dashboard.</p>
    </div>
    <div style="padding: 16px; text-align: center; color: #6b7280; font-size: 12px;">
      &copy; {{.Year}} Intlakaa. All rights reserved.
    </div>
  </div>
</body>
</html>`))

// RequestNotification holds the fields rendered into the operator
// notification template.
type RequestNotification struct {
	Name         string
	Phone        string
	StoreURL     string
	MonthlySales string
	ReceivedAt   string
	Year         int
}

// RenderRequestNotification renders the operator notification body for a new
// consultation request.
func RenderRequestNotification(n RequestNotification) (string, error) {
	if n.ReceivedAt == "" {
		n.ReceivedAt = time.Now().UTC().Format(time.RFC1123)
	}
	if n.Year == 0 {
		n.Year = time.Now().Year()
	}
	var sb strings.Builder
	if err := requestTmpl.Execute(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
