package validators

import (
	"context"
	"net/netip"
	"strings"

	"github.com/MKhiriev/go-secret-share/internal/crypto"
	"github.com/MKhiriev/go-secret-share/models"
)

// Field name constants used to specify which fields should be validated.
// They double as the keys of field-level error messages shown by front ends.
const (
	// FieldText targets the secret body.
	FieldText = "text"

	// FieldPassword targets the optional access password.
	FieldPassword = "password"

	// FieldMaxViews targets the view budget of the policy.
	FieldMaxViews = "maxViews"

	// FieldTTL targets the lifetime of the policy.
	FieldTTL = "ttl"

	// FieldAllowedIP targets the optional IP restriction of the policy.
	FieldAllowedIP = "allowedIp"

	// FieldFiles targets the attached files. Nothing is checked locally for
	// it; submission failures about the payload size are reported under it.
	FieldFiles = "files"
)

var defaultFormFields = []string{FieldText, FieldPassword, FieldMaxViews, FieldTTL, FieldAllowedIP}

// SecretFormValidator checks a [models.SecretForm] before it is sealed.
// Authenticated reports whether the current session may pick the long,
// login-only lifetimes.
type SecretFormValidator struct {
	authenticated func() bool
}

// NewSecretFormValidator returns a Validator for secret forms. A nil
// authenticated func means an anonymous session.
func NewSecretFormValidator(authenticated func() bool) Validator {
	if authenticated == nil {
		authenticated = func() bool { return false }
	}
	return &SecretFormValidator{authenticated: authenticated}
}

// Validate accepts models.SecretForm and *models.SecretForm. Without fields
// every rule runs, in form order, and the first failure is returned.
func (v *SecretFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SecretForm:
		return v.validateSecretForm(ctx, value, fields...)
	case *models.SecretForm:
		return v.validateSecretForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SecretFormValidator) validateSecretForm(_ context.Context, form models.SecretForm, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFormFields
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if form.Text == "" {
				return fieldError(FieldText, ErrTextRequired)
			}
		case FieldPassword:
			if err := crypto.ValidatePassword(form.Password); err != nil {
				return fieldError(FieldPassword, err)
			}
		case FieldMaxViews:
			if form.Policy.MaxViews < 1 {
				return fieldError(FieldMaxViews, ErrMaxViewsTooLow)
			}
		case FieldTTL:
			if !models.IsAllowedTTL(form.Policy.TTL, v.authenticated()) {
				return fieldError(FieldTTL, ErrTTLNotAllowed)
			}
		case FieldAllowedIP:
			if !isValidAllowedIP(form.Policy.AllowedIP) {
				return fieldError(FieldAllowedIP, ErrInvalidAllowedIP)
			}
		case FieldFiles:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidAllowedIP accepts an empty value, a single address or a prefix.
func isValidAllowedIP(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if strings.Contains(s, "/") {
		_, err := netip.ParsePrefix(s)
		return err == nil
	}
	_, err := netip.ParseAddr(s)
	return err == nil
}
