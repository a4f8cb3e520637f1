package models

import "time"

// DefaultTTL is the lifetime a new secret gets unless the user picks another
// one (3 days).
const DefaultTTL int64 = 259200

// TTLOption is one selectable secret lifetime.
type TTLOption struct {
	Seconds int64
	Label   string

	// RequiresAuth marks lifetimes that only authenticated sessions may
	// choose. The server validates this as well.
	RequiresAuth bool
}

// Duration returns the option as a [time.Duration].
func (o TTLOption) Duration() time.Duration {
	return time.Duration(o.Seconds) * time.Second
}

var ttlCatalogue = []TTLOption{
	{Seconds: 2419200, Label: "28 days", RequiresAuth: true},
	{Seconds: 1209600, Label: "14 days", RequiresAuth: true},
	{Seconds: 604800, Label: "7 days"},
	{Seconds: 259200, Label: "3 days"},
	{Seconds: 86400, Label: "1 day"},
	{Seconds: 43200, Label: "12 hours"},
	{Seconds: 14400, Label: "4 hours"},
	{Seconds: 3600, Label: "1 hour"},
	{Seconds: 1800, Label: "30 minutes"},
	{Seconds: 300, Label: "5 minutes"},
}

// TTLOptions lists the lifetimes available to a session, longest first.
// Anonymous sessions do not see the long, auth-only entries.
func TTLOptions(authenticated bool) []TTLOption {
	out := make([]TTLOption, 0, len(ttlCatalogue))
	for _, o := range ttlCatalogue {
		if o.RequiresAuth && !authenticated {
			continue
		}
		out = append(out, o)
	}
	return out
}

// IsAllowedTTL reports whether seconds is a selectable lifetime for the
// session.
func IsAllowedTTL(seconds int64, authenticated bool) bool {
	for _, o := range TTLOptions(authenticated) {
		if o.Seconds == seconds {
			return true
		}
	}
	return false
}

// TTLLabel returns the human label for seconds, or a duration string when the
// value is not part of the catalogue.
func TTLLabel(seconds int64) string {
	for _, o := range ttlCatalogue {
		if o.Seconds == seconds {
			return o.Label
		}
	}
	return (time.Duration(seconds) * time.Second).String()
}
