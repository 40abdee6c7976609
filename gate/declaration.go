package gate

// Defaults supplies the optional hooks of a [Declaration].
// Embed it in a use case that only declares rules:
//
//	type signUpForm struct{ gate.Defaults }
//
//	func (signUpForm) Rules() gate.Rules {
//		return gate.Rules{"email": "required,email"}
//	}
type Defaults struct{}

// Labels returns an empty label map.
func (Defaults) Labels() Labels {
	return Labels{}
}

// Templates returns an empty template map.
func (Defaults) Templates() Templates {
	return Templates{}
}

// Config is a [Declaration] assembled from plain values, for use cases that
// do not need their own type.
type Config struct {
	RuleSet     Rules
	LabelSet    Labels
	TemplateSet Templates
}

func (c Config) Rules() Rules {
	if c.RuleSet == nil {
		return Rules{}
	}
	return c.RuleSet
}

func (c Config) Labels() Labels {
	if c.LabelSet == nil {
		return Labels{}
	}
	return c.LabelSet
}

func (c Config) Templates() Templates {
	if c.TemplateSet == nil {
		return Templates{}
	}
	return c.TemplateSet
}
