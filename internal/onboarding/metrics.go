// File path: internal/onboarding/metrics.go
package onboarding

import (
	"fmt"

	"github.com/docsmith/quickstart/internal/i18n"
)

// MetricsOnboarding builds the generic JavaScript metrics flow. The caller
// supplies the install-config builder so the flow reuses whatever install
// commands its platform documents; the flow contributes no platform logic of
// its own beyond that wiring.
func MetricsOnboarding(getInstallConfig func() []CodeBlock) Flow {
	return metricsFlow{installConfig: getInstallConfig}
}

type metricsFlow struct {
	installConfig func() []CodeBlock
}

func (f metricsFlow) Install(Params) []Step {
	return []Step{
		{
			Type: StepInstall,
			Description: i18n.Translate(
				"You need a minimum version [code:7.91.0] of the SDK installed for metrics support.",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: f.installConfig(),
		},
	}
}

func (f metricsFlow) Configure(p Params) []Step {
	return []Step{
		{
			Type: StepConfigure,
			Description: i18n.Translate(
				"Enable the metrics aggregator by adding [code:metricsAggregator] to your [code:Sentry.init] call.",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: []CodeBlock{
				{
					Language: "javascript",
					Code: fmt.Sprintf(`Sentry.init({
  dsn: "%s",
  _experiments: {
    metricsAggregator: true,
  },
});`, p.DSN),
				},
			},
		},
	}
}

func (f metricsFlow) Verify(Params) []Step {
	return []Step{
		{
			Type: StepVerify,
			Description: i18n.Translate(
				"With the metrics aggregator enabled, emit a counter from anywhere in your application using [code:Sentry.metrics.increment]:",
				i18n.Bindings{"code": i18n.Code{}},
			),
			Configurations: []CodeBlock{
				{
					Language: "javascript",
					Code: `// Increment a counter by one for each button click.
Sentry.metrics.increment("button_click", 1, {
  tags: { browser: "Firefox" },
});`,
				},
			},
		},
	}
}

func (f metricsFlow) NextSteps(Params) []NextStep { return nil }
