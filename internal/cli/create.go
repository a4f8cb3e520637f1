package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-secret-share/internal/archive"
	"github.com/MKhiriev/go-secret-share/internal/crypto"
	"github.com/MKhiriev/go-secret-share/internal/lifecycle"
	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/internal/ui"
	"github.com/MKhiriev/go-secret-share/internal/validators"
	"github.com/MKhiriev/go-secret-share/models"
)

type createOptions struct {
	text             string
	title            string
	files            []string
	password         string
	generatePassword bool
	ttl              time.Duration
	maxViews         int
	allowedIP        string
	preventBurn      bool
	separateKey      bool
	quiet            bool
}

func newCreateCommand() *cobra.Command {
	opts := createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Encrypt a secret and print its share link",
		Long: `Encrypts the text, title and attached files locally and uploads the
ciphertext. The printed link contains the key unless --separate-key is set.

Use --text - to read the text from standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.text, "text", "t", "", "secret text, - reads standard input")
	fs.StringVar(&opts.title, "title", "", "optional title, encrypted as well")
	fs.StringArrayVarP(&opts.files, "file", "f", nil, "file to attach (repeatable)")
	fs.StringVarP(&opts.password, "password", "p", "", "password the recipient must also enter")
	fs.BoolVarP(&opts.generatePassword, "generate-password", "g", false, "generate a password and print it")
	fs.DurationVar(&opts.ttl, "ttl", time.Duration(models.DefaultTTL)*time.Second, "secret lifetime, one of the offered options")
	fs.IntVarP(&opts.maxViews, "max-views", "m", 1, "how many times the secret may be read")
	fs.StringVar(&opts.allowedIP, "allowed-ip", "", "restrict reads to an IP address or CIDR range")
	fs.BoolVar(&opts.preventBurn, "prevent-burn", false, "keep the secret after it is read")
	fs.BoolVarP(&opts.separateKey, "separate-key", "s", false, "print the link and the key separately")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "print only the link")
	cmd.MarkFlagsMutuallyExclusive("password", "generate-password")

	return cmd
}

func runCreate(cmd *cobra.Command, opts createOptions) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	text, err := readText(opts.text, cmd.InOrStdin())
	if err != nil {
		return err
	}

	files, err := archive.LoadFiles(opts.files)
	if err != nil {
		ui.RenderFeedback(errOut, service.NewFeedback(&service.ValidationError{
			Field: validators.FieldFiles, Message: err.Error(), Err: err,
		}))
		return ErrReported
	}

	app, log, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(app, log)

	ctrl := app.NewController()

	password := opts.password
	if opts.generatePassword {
		if password, err = crypto.GeneratePassword(); err != nil {
			ui.RenderFeedback(errOut, service.NewFeedback(err))
			return ErrReported
		}
	}
	if password != "" {
		ctrl.Dispatch(lifecycle.PasswordToggled{Enabled: true, Generated: password})
	}

	form := models.NewSecretForm()
	form.Text = text
	form.Title = opts.title
	form.Files = files
	form.Password = password
	form.Policy = models.SecretPolicy{
		TTL:         int64(opts.ttl / time.Second),
		MaxViews:    opts.maxViews,
		AllowedIP:   opts.allowedIP,
		PreventBurn: opts.preventBurn,
	}
	ctrl.Edit(form)

	stop := func(string) {}
	if !opts.quiet {
		stop = ui.StartSpinner(errOut, "Encrypting and uploading...")
	}
	state := ctrl.Submit(cmd.Context())
	stop("")

	if state.Phase != lifecycle.Revealed {
		ui.RenderFeedback(errOut, state.Feedback)
		if _, ok := state.Feedback.FieldErrors[validators.FieldTTL]; ok {
			fmt.Fprintln(errOut, ui.Muted.Sprint("available lifetimes: "+ttlChoices(state.TTLOptions())))
		}
		return ErrReported
	}

	links, err := state.ShareLinks(app.Origin())
	if err != nil {
		return err
	}

	if opts.quiet {
		if opts.separateKey {
			fmt.Fprintln(out, links.WithoutKey)
			fmt.Fprintln(out, links.Key)
		} else {
			fmt.Fprintln(out, links.WithKey)
		}
		return nil
	}

	ui.RenderSubmission(out, links, state.Submission, opts.separateKey)
	if opts.generatePassword {
		fmt.Fprintf(out, "  Password: %s\n", ui.Highlight.Sprint(password))
	}
	return nil
}

func readText(flag string, in io.Reader) (string, error) {
	if flag != "-" {
		return flag, nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read text from stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func ttlChoices(opts []models.TTLOption) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, o.Duration().String())
	}
	return strings.Join(parts, ", ")
}
