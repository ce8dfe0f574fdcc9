// File path: internal/render/markdown.go

// Package render turns generated onboarding flows into standalone markdown
// documents. Rendering is deterministic: the same flow and params always
// produce byte-identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/docsmith/quickstart/internal/onboarding"
)

var sectionTitles = map[onboarding.StepType]string{
	onboarding.StepInstall:   "Install",
	onboarding.StepConfigure: "Configure",
	onboarding.StepVerify:    "Verify",
}

// Flow renders the named flow as a markdown document for the given params.
func Flow(name string, flow onboarding.Flow, p onboarding.Params) string {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "# %s\n", title(name))

	writeSection(builder, flow.Install(p))
	writeSection(builder, flow.Configure(p))
	writeSection(builder, flow.Verify(p))

	next := flow.NextSteps(p)
	if len(next) > 0 {
		fmt.Fprintf(builder, "\n## Next Steps\n\n")
		for _, step := range next {
			fmt.Fprintf(builder, "- [%s](%s): %s\n", step.Name, step.Link, step.Description)
		}
	}
	return builder.String()
}

func writeSection(builder *strings.Builder, steps []onboarding.Step) {
	written := make(map[onboarding.StepType]bool)
	for _, step := range steps {
		if heading, ok := sectionTitles[step.Type]; ok && !written[step.Type] {
			fmt.Fprintf(builder, "\n## %s\n", heading)
			written[step.Type] = true
		}
		fmt.Fprintf(builder, "\n%s\n", step.Description)
		for _, block := range step.Configurations {
			writeBlock(builder, block)
		}
		if step.AdditionalInfo != "" {
			fmt.Fprintf(builder, "\n%s\n", step.AdditionalInfo)
		}
	}
}

func writeBlock(builder *strings.Builder, block onboarding.CodeBlock) {
	if len(block.Alternatives) > 0 {
		for _, alt := range block.Alternatives {
			if alt.Label != "" {
				fmt.Fprintf(builder, "\n**%s**\n", alt.Label)
			}
			writeBlock(builder, alt)
		}
		return
	}
	fmt.Fprintf(builder, "\n```%s\n%s\n```\n", block.Language, block.Code)
}

func title(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Onboarding"
	}
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
