// File path: internal/onboarding/types.go
package onboarding

import (
	"sort"
	"strings"
)

// StepType identifies the kind of onboarding step rendered by the docs UI.
type StepType string

const (
	StepInstall   StepType = "install"
	StepConfigure StepType = "configure"
	StepVerify    StepType = "verify"
)

// CodeBlock is a labeled, language-tagged piece of literal source text shown
// to the end user. When Alternatives is populated the block acts as a selector
// (for example npm vs yarn) and Code is left empty.
type CodeBlock struct {
	Label        string      `json:"label,omitempty"`
	Value        string      `json:"value,omitempty"`
	Language     string      `json:"language,omitempty"`
	Code         string      `json:"code,omitempty"`
	Alternatives []CodeBlock `json:"alternatives,omitempty"`
}

// Step is one rendered unit of documentation: a kind, a human-readable
// description, and the code blocks the user should apply.
type Step struct {
	Type           StepType    `json:"type"`
	Description    string      `json:"description"`
	Configurations []CodeBlock `json:"configurations,omitempty"`
	AdditionalInfo string      `json:"additional_info,omitempty"`
}

// NextStep is a fixed further-reading link appended after onboarding.
type NextStep struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// ReplayOptions control the privacy defaults embedded in the replay
// integration snippet.
type ReplayOptions struct {
	MaskAllText   bool `json:"mask_all_text"`
	BlockAllMedia bool `json:"block_all_media"`
}

// DefaultReplayOptions masks text and blocks media, the privacy-safe default.
func DefaultReplayOptions() ReplayOptions {
	return ReplayOptions{MaskAllText: true, BlockAllMedia: true}
}

// Params is the input bundle for a single generation call. The generator does
// not validate the DSN; whatever the caller supplies is embedded verbatim.
type Params struct {
	DSN                 string        `json:"dsn"`
	PerformanceSelected bool          `json:"performance_selected"`
	ReplaySelected      bool          `json:"replay_selected"`
	FeedbackSelected    bool          `json:"feedback_selected"`
	ReplayOpts          ReplayOptions `json:"replay_options"`
}

// Flow is the capability set every onboarding variant implements. Each
// operation is a pure function of Params and the order of the returned slices
// is significant. Partial flows return empty slices from the operations they
// do not populate.
type Flow interface {
	Install(p Params) []Step
	Configure(p Params) []Step
	Verify(p Params) []Step
	NextSteps(p Params) []NextStep
}

// Registered flow names.
const (
	FlowDefault  = "onboarding"
	FlowReplay   = "replay"
	FlowFeedback = "feedback"
	FlowMetrics  = "metrics"
)

// Registry maps flow names to their assemblers.
type Registry map[string]Flow

// DefaultRegistry returns the standard set of onboarding flows.
func DefaultRegistry() Registry {
	return Registry{
		FlowDefault:  defaultFlow{},
		FlowReplay:   replayFlow{},
		FlowFeedback: feedbackFlow{},
		FlowMetrics:  MetricsOnboarding(InstallConfig),
	}
}

// Lookup resolves a flow by name, tolerating surrounding whitespace and case.
func (r Registry) Lookup(name string) (Flow, bool) {
	flow, ok := r[strings.ToLower(strings.TrimSpace(name))]
	return flow, ok
}

// Names returns the registered flow names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
