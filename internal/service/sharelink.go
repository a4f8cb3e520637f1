package service

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	sharePathPrefix = "/secret/"
	keyFragmentName = "encryption_key"
)

// ShareLinks are the display variants of a created secret.
type ShareLinks struct {
	// WithKey carries the key in the fragment: one link is enough to read.
	WithKey string

	// WithoutKey must be combined with Key, sent through another channel.
	WithoutKey string
	Key        string
}

// ComposeURL builds origin/secret/{secretID}, with
// #encryption_key={keyMaterial} appended when includeKey is set. The
// fragment is never sent to the server by browsers.
func ComposeURL(origin, secretID, keyMaterial string, includeKey bool) (string, error) {
	if secretID == "" {
		return "", fmt.Errorf("%w: no secret to link to", ErrInvalidState)
	}

	link := normalizeOrigin(origin) + sharePathPrefix + url.PathEscape(secretID)
	if includeKey {
		link += "#" + keyFragmentName + "=" + keyMaterial
	}
	return link, nil
}

// ComposeLinks returns every display variant for submission values.
func ComposeLinks(origin, secretID, keyMaterial string) (ShareLinks, error) {
	withKey, err := ComposeURL(origin, secretID, keyMaterial, true)
	if err != nil {
		return ShareLinks{}, err
	}
	withoutKey, _ := ComposeURL(origin, secretID, keyMaterial, false)

	return ShareLinks{WithKey: withKey, WithoutKey: withoutKey, Key: keyMaterial}, nil
}

// ParseShareURL is the inverse of ComposeURL. keyMaterial is empty for links
// composed without the key.
func ParseShareURL(raw string) (secretID, keyMaterial string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse share url: %w", err)
	}

	idx := strings.LastIndex(u.Path, sharePathPrefix)
	if idx < 0 {
		return "", "", fmt.Errorf("parse share url: %q has no %s segment", raw, sharePathPrefix)
	}
	secretID = u.Path[idx+len(sharePathPrefix):]
	if secretID == "" || strings.Contains(secretID, "/") {
		return "", "", fmt.Errorf("parse share url: bad secret id in %q", raw)
	}

	if u.Fragment != "" {
		values, err := url.ParseQuery(u.Fragment)
		if err != nil {
			return "", "", fmt.Errorf("parse share url fragment: %w", err)
		}
		keyMaterial = values.Get(keyFragmentName)
	}

	return secretID, keyMaterial, nil
}

func normalizeOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	origin = strings.TrimRight(origin, "/")
	if !strings.Contains(origin, "://") {
		origin = "https://" + origin
	}
	return origin
}
