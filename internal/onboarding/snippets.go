// File path: internal/onboarding/snippets.go
package onboarding

import (
	"fmt"
	"strings"
)

// fragment is one optional piece of generated source text. It contributes
// nothing when its predicate rejects the params, so the relative order of the
// remaining fragments is fixed no matter which subset is present.
type fragment struct {
	when func(Params) bool
	text func(Params) string
}

func joinFragments(p Params, fragments []fragment, sep string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if !f.when(p) {
			continue
		}
		parts = append(parts, f.text(p))
	}
	return strings.Join(parts, sep)
}

func constText(text string) func(Params) string {
	return func(Params) string { return text }
}

var integrationFragments = []fragment{
	{
		when: func(p Params) bool { return p.PerformanceSelected },
		text: constText("Sentry.browserTracingIntegration(),"),
	},
	{
		when: func(p Params) bool { return p.FeedbackSelected },
		text: constText(`Sentry.feedbackIntegration({
      // Additional SDK configuration goes in here, for example:
      colorScheme: "system",
    }),`),
	},
	{
		when: func(p Params) bool { return p.ReplaySelected },
		text: func(p Params) string {
			return fmt.Sprintf("Sentry.replayIntegration(%s),", ReplayConfigOptions(p.ReplayOpts))
		},
	},
}

var optionFragments = []fragment{
	{
		when: func(p Params) bool { return p.PerformanceSelected },
		text: constText(`  // Tracing
  tracesSampleRate: 1.0, //  Capture 100% of the transactions
  // Set 'tracePropagationTargets' to control for which URLs distributed tracing should be enabled
  tracePropagationTargets: ["localhost", /^https:\/\/yourserver\.io\/api/],`),
	},
	{
		when: func(p Params) bool { return p.ReplaySelected },
		text: constText(`  // Session Replay
  replaysSessionSampleRate: 0.1, // This sets the sample rate at 10%. You may want to change it to 100% while in development and then sample at a lower rate in production.
  replaysOnErrorSampleRate: 1.0, // If you're not already sampling the entire session, change the sample rate to 100% when sampling sessions where errors occur.`),
	},
}

// SetupSnippet builds the application-initialization source the user pastes
// into their entry point. Integration lines appear in a fixed order (tracing,
// feedback, replay) followed by the matching sample-rate option blocks; each
// piece is emitted only when the corresponding product is selected.
func SetupSnippet(p Params) string {
	integrations := joinFragments(p, integrationFragments, "\n    ")
	if integrations != "" {
		integrations = "\n    " + integrations + "\n  "
	}
	options := joinFragments(p, optionFragments, "\n\n")
	if options != "" {
		options = "\n\n" + options
	}
	return fmt.Sprintf(`import "./app.css";
import App from "./App.svelte";

import * as Sentry from "@sentry/svelte";

Sentry.init({
  dsn: "%s",
  integrations: [%s],%s
});

const app = new App({
  target: document.getElementById("app"),
});

export default app;`, p.DSN, integrations, options)
}

// VerifySnippet returns a constant component containing a deliberate runtime
// error so the user can confirm error reporting works end to end.
func VerifySnippet() string {
	return `// SomeComponent.svelte
<button type="button" on:click={unknownFunction}>Break the world</button>`
}

// InstallConfig returns the constant install command block offering npm and
// yarn alternatives. Independent of Params.
func InstallConfig() []CodeBlock {
	return []CodeBlock{
		{
			Language: "bash",
			Alternatives: []CodeBlock{
				{Label: "npm", Value: "npm", Language: "bash", Code: "npm install @sentry/svelte --save"},
				{Label: "yarn", Value: "yarn", Language: "bash", Code: "yarn add @sentry/svelte"},
			},
		},
	}
}
