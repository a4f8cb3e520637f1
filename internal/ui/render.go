package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/models"
)

// RenderSubmission prints the links of a created secret. With separateKey
// the link and the key are printed apart so they can travel through
// different channels.
func RenderSubmission(w io.Writer, links service.ShareLinks, sub models.Submission, separateKey bool) {
	fmt.Fprintf(w, "%s Secret created %s\n\n", Success.Sprint("✓"), Highlight.Sprint(sub.SecretID))

	if separateKey {
		fmt.Fprintf(w, "  Link: %s\n", Link.Sprint(links.WithoutKey))
		fmt.Fprintf(w, "  Key:  %s\n", links.Key)
	} else {
		fmt.Fprintf(w, "  %s\n", Link.Sprint(links.WithKey))
	}

	fmt.Fprintf(w, "\n  Expires in %s, %s\n", models.TTLLabel(sub.Policy.TTL), viewsLabel(sub.Policy.MaxViews))
	if sub.HasPassword {
		fmt.Fprintf(w, "  %s the recipient also needs the password\n", Warning.Sprint("!"))
	}
	if sub.Policy.AllowedIP != "" {
		fmt.Fprintf(w, "  Readable only from %s\n", sub.Policy.AllowedIP)
	}
}

// RenderFeedback prints field errors sorted by field, then the banner.
func RenderFeedback(w io.Writer, fb service.Feedback) {
	fields := make([]string, 0, len(fb.FieldErrors))
	for f := range fb.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		fmt.Fprintf(w, "%s %s: %s\n", Error.Sprint("✗"), f, fb.FieldErrors[f])
	}
	if fb.Banner != "" {
		fmt.Fprintf(w, "%s %s\n", Error.Sprint("✗"), fb.Banner)
	}
}

// RenderHistory prints ledger entries as a table.
func RenderHistory(w io.Writer, entries []models.LedgerEntry, now time.Time) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, Muted.Sprint("no secrets yet"))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECRET\tCREATED\tEXPIRES\tVIEWS\tSTATUS\tLINK")
	for _, e := range entries {
		link, _ := service.ComposeURL(e.Origin, e.SecretID, "", false)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			e.SecretID,
			e.CreatedAt.Local().Format(time.DateTime),
			e.ExpiresAt.Local().Format(time.DateTime),
			e.MaxViews,
			EntryStatus(e, now),
			link,
		)
	}
	return tw.Flush()
}

// EntryStatus is a one-word state of a ledger entry.
func EntryStatus(e models.LedgerEntry, now time.Time) string {
	switch {
	case e.BurnedAt != nil:
		return "burned"
	case !now.Before(e.ExpiresAt):
		return "expired"
	default:
		return "active"
	}
}

func viewsLabel(n int) string {
	if n == 1 {
		return "1 view"
	}
	return fmt.Sprintf("%d views", n)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}
