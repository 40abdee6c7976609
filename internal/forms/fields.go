package forms

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldAvatar   = "avatar"
	FieldSubject  = "subject"
	FieldMessage  = "message"
	FieldAttach   = "attachments"
)

// MaxAvatarSize is the largest avatar accepted, in bytes.
const MaxAvatarSize = 2 << 20
