package record

import (
	"net/mail"
	"strings"

	"github.com/zyraworkhub/zyra/core"
)

// adminAddress is the recipient of internal alerts; falls back to the
// default From address when no admin email is configured.
func (svc *Service) adminAddress() mail.Address {
	if svc.conf.AdminEmail != "" {
		return mail.Address{Address: svc.conf.AdminEmail}
	}
	return svc.conf.DefaultFromEmail
}

func (svc *Service) speakerConfirmation(app SpeakerApplication) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: app.Name, Address: app.Email}},
		Subject:      "Speaker Application Received",
		TemplateName: "speaker-confirm",
		TemplateData: struct {
			Name      string
			Expertise string
			Abstract  string
			Email     string
		}{
			Name:      app.Name,
			Expertise: strings.Join(app.Expertise, ", "),
			Abstract:  app.Abstract,
			Email:     app.Email,
		},
	}
}

func (svc *Service) speakerAdminAlert(app SpeakerApplication) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{svc.adminAddress()},
		Subject:      "New Speaker Application: " + app.Name,
		TemplateName: "speaker-alert",
		TemplateData: struct {
			Name        string
			Email       string
			Expertise   string
			Bio         string
			Abstract    string
			LinkedinURL string
			TwitterURL  string
			WebsiteURL  string
			SubmittedAt string
		}{
			Name:        app.Name,
			Email:       app.Email,
			Expertise:   strings.Join(app.Expertise, ", "),
			Bio:         app.Bio,
			Abstract:    app.Abstract,
			LinkedinURL: app.LinkedinURL,
			TwitterURL:  app.TwitterURL,
			WebsiteURL:  app.WebsiteURL,
			SubmittedAt: app.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		},
	}
}

func (svc *Service) contactConfirmation(sub ContactSubmission) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: sub.Name, Address: sub.Email}},
		Subject:      "We received your message",
		TemplateName: "contact-confirm",
		TemplateData: struct {
			Name    string
			Message string
		}{
			Name:    sub.Name,
			Message: sub.Message,
		},
	}
}

func (svc *Service) contactAdminAlert(sub ContactSubmission) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{svc.adminAddress()},
		Subject:      "New Contact Submission: " + sub.Name,
		TemplateName: "contact-alert",
		TemplateData: struct {
			Name         string
			Email        string
			Phone        string
			InterestType string
			Message      string
			SubmittedAt  string
		}{
			Name:         sub.Name,
			Email:        sub.Email,
			Phone:        sub.Phone,
			InterestType: sub.InterestType,
			Message:      sub.Message,
			SubmittedAt:  sub.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		},
	}
}
