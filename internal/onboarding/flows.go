// File path: internal/onboarding/flows.go
package onboarding

import (
	"github.com/docsmith/quickstart/internal/i18n"
)

const (
	featuresLink       = "https://docs.sentry.io/platforms/javascript/guides/svelte/features/"
	performanceLink    = "https://docs.sentry.io/platforms/javascript/guides/svelte/performance/"
	replayLink         = "https://docs.sentry.io/platforms/javascript/guides/svelte/session-replay/"
	sourceMapsLink     = "https://docs.sentry.io/platforms/javascript/guides/svelte/sourcemaps/"
	replayConfigLink   = "https://docs.sentry.io/platforms/javascript/guides/svelte/session-replay/configuration/"
	feedbackConfigLink = "https://docs.sentry.io/platforms/javascript/guides/svelte/user-feedback/configuration/"
	crashReportLink    = "https://docs.sentry.io/platforms/javascript/guides/svelte/user-feedback/#crash-report-modal"
)

// defaultFlow is the full install/configure/verify onboarding for the Svelte
// SDK.
type defaultFlow struct{}

func (defaultFlow) Install(Params) []Step {
	return []Step{
		{
			Type: StepInstall,
			Description: i18n.Translate(
				"Install the Sentry Svelte SDK as a dependency using [code:npm] or [code:yarn]:",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: InstallConfig(),
		},
	}
}

func (defaultFlow) Configure(p Params) []Step {
	return []Step{
		{
			Type: StepConfigure,
			Description: i18n.Translate(
				"Initialize Sentry as early as possible in your application's lifecycle, usually your Svelte app's entry point ([code:main.ts/js]):",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: []CodeBlock{
				{Language: "javascript", Code: SetupSnippet(p)},
			},
		},
		UploadSourceMapsStep(UploadSourceMapsOptions{GuideLink: sourceMapsLink}),
	}
}

func (defaultFlow) Verify(Params) []Step {
	return []Step{
		{
			Type:        StepVerify,
			Description: "This snippet contains an intentional error and can be used as a test to make sure that everything's working as expected.",
			Configurations: []CodeBlock{
				{Language: "html", Code: VerifySnippet()},
			},
		},
	}
}

// NextSteps always advertises all three follow-ups, independent of which
// products were selected during onboarding.
func (defaultFlow) NextSteps(Params) []NextStep {
	return []NextStep{
		{
			ID:          "svelte-features",
			Name:        "Svelte Features",
			Description: "Learn about our first class integration with the Svelte framework.",
			Link:        featuresLink,
		},
		{
			ID:          "performance-monitoring",
			Name:        "Performance Monitoring",
			Description: "Track down transactions to connect the dots between 10-second page loads and poor-performing API calls or slow database queries.",
			Link:        performanceLink,
		},
		{
			ID:          "session-replay",
			Name:        "Session Replay",
			Description: "Get to the root cause of an error or latency issue faster by seeing all the technical details related to that issue in one visual replay on your web application.",
			Link:        replayLink,
		},
	}
}

// replayFlow documents adding Session Replay to an existing setup. It is
// additive documentation only: verify and next steps stay empty.
type replayFlow struct{}

func (replayFlow) Install(Params) []Step {
	return []Step{
		{
			Type: StepInstall,
			Description: i18n.Translate(
				"For the session replay to work, you must have the Sentry Svelte SDK package, or an equivalent framework SDK, installed, minimum version [code:7.27.0].",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: InstallConfig(),
		},
	}
}

func (replayFlow) Configure(p Params) []Step {
	return []Step{
		{
			Type:        StepConfigure,
			Description: ReplayConfigureDescription(replayConfigLink),
			Configurations: []CodeBlock{
				{Language: "javascript", Code: SetupSnippet(p)},
			},
			AdditionalInfo: TracePropagationMessage,
		},
	}
}

func (replayFlow) Verify(Params) []Step { return nil }

func (replayFlow) NextSteps(Params) []NextStep { return nil }

// feedbackFlow documents adding the User Feedback widget to an existing
// setup. Additive documentation only, like replayFlow.
type feedbackFlow struct{}

func (feedbackFlow) Install(Params) []Step {
	return []Step{
		{
			Type: StepInstall,
			Description: i18n.Translate(
				"For the User Feedback integration to work, you must have the Sentry Svelte SDK package, or an equivalent framework SDK, installed, minimum version [code:7.85.0].",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: InstallConfig(),
		},
	}
}

func (feedbackFlow) Configure(p Params) []Step {
	return []Step{
		{
			Type:        StepConfigure,
			Description: FeedbackConfigureDescription(feedbackConfigLink),
			Configurations: []CodeBlock{
				{Language: "javascript", Code: SetupSnippet(p)},
			},
			AdditionalInfo: CrashReportCallout(crashReportLink),
		},
	}
}

func (feedbackFlow) Verify(Params) []Step { return nil }

func (feedbackFlow) NextSteps(Params) []NextStep { return nil }
