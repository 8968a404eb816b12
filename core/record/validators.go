package record

import (
	"github.com/go-playground/validator/v10"

	"github.com/zyraworkhub/zyra/core"
)

type NewSpeakerApplication struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Email       string   `json:"email" validate:"required,email"`
	Bio         string   `json:"bio" validate:"required,notblank"`
	Expertise   []string `json:"expertise" validate:"required,min=1,dive,notblank"`
	Abstract    string   `json:"abstract" validate:"required,notblank"`
	LinkedinURL string   `json:"linkedin_url" validate:"omitempty,url"`
	TwitterURL  string   `json:"twitter_url" validate:"omitempty,url"`
	WebsiteURL  string   `json:"website_url" validate:"omitempty,url"`
}

func (sa *NewSpeakerApplication) Validate(validate *validator.Validate) error {
	sa.Name = core.CleanString(sa.Name)
	sa.Email = core.CleanString(sa.Email, true /* lower */)
	sa.Bio = core.CleanString(sa.Bio)
	sa.Abstract = core.CleanString(sa.Abstract)
	for i, exp := range sa.Expertise {
		sa.Expertise[i] = core.CleanString(exp)
	}
	return validate.Struct(sa)
}

type NewContactSubmission struct {
	Name         string `json:"name" validate:"required,notblank"`
	Email        string `json:"email" validate:"required,email"`
	Message      string `json:"message" validate:"required,notblank"`
	Phone        string `json:"phone"`
	InterestType string `json:"interest_type" validate:"omitempty,oneof=general design-service partnership collaboration"`
}

func (cs *NewContactSubmission) Validate(validate *validator.Validate) error {
	cs.Name = core.CleanString(cs.Name)
	cs.Email = core.CleanString(cs.Email, true /* lower */)
	cs.Message = core.CleanString(cs.Message)
	cs.Phone = core.CleanString(cs.Phone)
	return validate.Struct(cs)
}

type NewAdminEntry struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func (ae *NewAdminEntry) Validate(validate *validator.Validate) error {
	ae.Email = core.CleanString(ae.Email, true /* lower */)
	ae.Name = core.CleanString(ae.Name)
	return validate.Struct(ae)
}
