package validators

import (
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

const (
	// RuleString accepts text values only. JSON numbers and booleans would
	// otherwise pass min/max as values instead of lengths.
	RuleString = "string"

	// RuleType is the rule reported when a value's type cannot be
	// evaluated by its rule. It has no tag of its own.
	RuleType = "type"

	RuleUpload  = "upload"
	RuleMaxSize = "maxsize"
	RuleMimes   = "mimes"
)

// Files is the normalised form of an uploaded field: one header for a single
// upload, several when the field was repeated.
type Files []*multipart.FileHeader

// asFiles converts uploaded file values to [Files] and leaves any other
// value untouched.
func asFiles(value any) any {
	switch v := value.(type) {
	case *multipart.FileHeader:
		if v == nil {
			return nil
		}
		return Files{v}
	case []*multipart.FileHeader:
		return Files(v)
	default:
		return value
	}
}

func registerRules(validate *validator.Validate) error {
	if err := validate.RegisterValidation(RuleString, isString); err != nil {
		return err
	}
	if err := validate.RegisterValidation(RuleUpload, isUpload); err != nil {
		return err
	}
	if err := validate.RegisterValidation(RuleMaxSize, isWithinMaxSize); err != nil {
		return err
	}
	return validate.RegisterValidation(RuleMimes, hasAllowedMimeType)
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func filesFromLevel(fl validator.FieldLevel) (Files, bool) {
	files, ok := fl.Field().Interface().(Files)
	if !ok || len(files) == 0 {
		return nil, false
	}
	for _, f := range files {
		if f == nil {
			return nil, false
		}
	}
	return files, true
}

// isUpload reports whether the field holds at least one uploaded file.
func isUpload(fl validator.FieldLevel) bool {
	_, ok := filesFromLevel(fl)
	return ok
}

// isWithinMaxSize reports whether every uploaded file is at most Param bytes.
func isWithinMaxSize(fl validator.FieldLevel) bool {
	files, ok := filesFromLevel(fl)
	if !ok {
		return false
	}

	limit, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return false
	}

	for _, f := range files {
		if f.Size > limit {
			return false
		}
	}
	return true
}

// hasAllowedMimeType sniffs the content of every uploaded file and reports
// whether each one matches one of the space-separated types in Param.
// The Content-Type sent by the client is ignored.
func hasAllowedMimeType(fl validator.FieldLevel) bool {
	files, ok := filesFromLevel(fl)
	if !ok {
		return false
	}

	allowed := strings.Fields(fl.Param())
	if len(allowed) == 0 {
		return false
	}

	for _, f := range files {
		detected, err := detectMimeType(f)
		if err != nil || !mimeMatches(detected, allowed) {
			return false
		}
	}
	return true
}

func detectMimeType(f *multipart.FileHeader) (*mimetype.MIME, error) {
	file, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return mimetype.DetectReader(file)
}

func mimeMatches(detected *mimetype.MIME, allowed []string) bool {
	for m := detected; m != nil; m = m.Parent() {
		for _, a := range allowed {
			if m.Is(a) {
				return true
			}
		}
	}
	return false
}
