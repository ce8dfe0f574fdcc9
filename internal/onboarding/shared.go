// File path: internal/onboarding/shared.go
package onboarding

import (
	"fmt"
	"strings"

	"github.com/docsmith/quickstart/internal/i18n"
)

// Shared helpers reused across flows. These mirror the fixed contracts the
// rendering host expects: the upload-source-maps step, the replay and feedback
// configure descriptions, the replay options fragment embedded in the setup
// snippet, and the supplementary advisory texts.

// UploadSourceMapsOptions parameterize the source-maps step with the guide the
// description links to.
type UploadSourceMapsOptions struct {
	GuideLink string
}

// UploadSourceMapsStep builds the configure step that walks the user through
// the source-map wizard.
func UploadSourceMapsStep(opts UploadSourceMapsOptions) Step {
	return Step{
		Type: StepConfigure,
		Description: i18n.Translate(
			"Automatically upload your source maps to enable readable stack traces for Errors. See the [guide:Source Maps guide] for manual setup.",
			i18n.Bindings{"guide": i18n.Link{Href: opts.GuideLink}},
		),
		Configurations: []CodeBlock{
			{Language: "bash", Code: "npx @sentry/wizard@latest -i sourcemaps"},
		},
	}
}

// ReplayConfigOptions renders the options object passed to the replay
// integration inside the setup snippet.
func ReplayConfigOptions(opts ReplayOptions) string {
	lines := []string{
		fmt.Sprintf("maskAllText: %t,", opts.MaskAllText),
		fmt.Sprintf("blockAllMedia: %t,", opts.BlockAllMedia),
	}
	return fmt.Sprintf("{\n      %s\n    }", strings.Join(lines, "\n      "))
}

// ReplayConfigureDescription links the replay configuration docs.
func ReplayConfigureDescription(link string) string {
	return i18n.Translate(
		"Add the following to your SDK config. There are several privacy and sampling options available, all of which can be set using the [code:integrations] constructor. Learn more about configuring Session Replay by reading the [link:configuration docs].",
		i18n.Bindings{"code": i18n.Code{}, "link": i18n.Link{Href: link}},
	)
}

// FeedbackConfigureDescription links the feedback configuration docs.
func FeedbackConfigureDescription(link string) string {
	return i18n.Translate(
		"Add the [code:feedbackIntegration] to your SDK config. There are many options to customize the widget to your organization's needs. Learn more by reading the [link:configuration docs].",
		i18n.Bindings{"code": i18n.Code{}, "link": i18n.Link{Href: link}},
	)
}

// CrashReportCallout advertises the crash-report modal as an alternative to
// the feedback widget.
func CrashReportCallout(link string) string {
	return i18n.Translate(
		"Collect feedback at the moment an error occurs with the [link:Crash-Report Modal].",
		i18n.Bindings{"link": i18n.Link{Href: link}},
	)
}

// TracePropagationMessage warns about CORS when tracing headers are attached
// to outgoing requests.
const TracePropagationMessage = "If you are coming from an earlier version of the SDK and have distributed tracing enabled, make sure your `tracePropagationTargets` include the origins your frontend is allowed to talk to, otherwise requests may be blocked by CORS."
