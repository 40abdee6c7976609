package forms

import (
	"fmt"

	"github.com/MKhiriev/go-validation-gate/gate"
)

// SignUp is the input of user registration. Every field must be text.
type SignUp struct{}

func (SignUp) Rules() gate.Rules {
	return gate.Rules{
		FieldName:     "required,string,min=2,max=64",
		FieldEmail:    "required,string,email",
		FieldPassword: "required,string,min=8,max=128",
		FieldRole:     "omitempty,string,oneof=admin member",
	}
}

func (SignUp) Labels() gate.Labels {
	return gate.Labels{
		FieldName:     "Name",
		FieldEmail:    "E-mail",
		FieldPassword: "Password",
		FieldRole:     "Role",
	}
}

func (SignUp) Templates() gate.Templates {
	return gate.Templates{
		"required":             "{label} must be filled in",
		FieldPassword + ".min": "{label} must contain at least {param} characters",
	}
}

// Avatar is the input of an avatar upload. Only rules are declared.
type Avatar struct {
	gate.Defaults
}

func (Avatar) Rules() gate.Rules {
	return gate.Rules{
		FieldAvatar: fmt.Sprintf("required,upload,max=1,maxsize=%d,mimes=image/png image/jpeg image/gif", MaxAvatarSize),
	}
}

// Contact is the input of the contact form. It is declared as a plain
// gate.Config and accepts up to three attachments of any type.
var Contact = gate.Config{
	RuleSet: gate.Rules{
		FieldEmail:   "required,string,email",
		FieldSubject: "required,string,max=120",
		FieldMessage: "required,string,min=10,max=4000",
		FieldAttach:  "omitempty,upload,max=3,maxsize=5242880",
	},
	LabelSet: gate.Labels{
		FieldEmail:   "Reply address",
		FieldAttach:  "Attachments",
		FieldSubject: "Subject",
		FieldMessage: "Message",
	},
}
