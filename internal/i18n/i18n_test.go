// File path: internal/i18n/i18n_test.go
package i18n

import "testing"

func TestTranslate(t *testing.T) {
	cases := []struct {
		name     string
		format   string
		bindings Bindings
		want     string
	}{
		{
			name:   "plain text passes through",
			format: "Install the SDK.",
			want:   "Install the SDK.",
		},
		{
			name:     "code placeholder",
			format:   "Run [code:npm] to install.",
			bindings: Bindings{"code": Code{}},
			want:     "Run `npm` to install.",
		},
		{
			name:     "link placeholder",
			format:   "Read the [link:configuration docs] first.",
			bindings: Bindings{"link": Link{Href: "https://example.com/docs"}},
			want:     "Read the [configuration docs](https://example.com/docs) first.",
		},
		{
			name:     "strong placeholder",
			format:   "[strong:Never] commit your DSN.",
			bindings: Bindings{"strong": Strong{}},
			want:     "**Never** commit your DSN.",
		},
		{
			name:     "text replaces inner",
			format:   "Supported on [platform:whatever].",
			bindings: Bindings{"platform": Text("Svelte")},
			want:     "Supported on Svelte.",
		},
		{
			name:     "multiple placeholders",
			format:   "Use [code:yarn] or read the [link:guide].",
			bindings: Bindings{"code": Code{}, "link": Link{Href: "https://example.com"}},
			want:     "Use `yarn` or read the [guide](https://example.com).",
		},
		{
			name:   "unbound placeholder passes through",
			format: "Keep [this:inner] literal.",
			want:   "Keep [this:inner] literal.",
		},
		{
			name:     "unterminated bracket passes through",
			format:   "Broken [code:oops",
			bindings: Bindings{"code": Code{}},
			want:     "Broken [code:oops",
		},
		{
			name:     "empty inner",
			format:   "Edge [code:] case.",
			bindings: Bindings{"code": Code{}},
			want:     "Edge `` case.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Translate(tc.format, tc.bindings); got != tc.want {
				t.Fatalf("Translate(%q) = %q, want %q", tc.format, got, tc.want)
			}
		})
	}
}

func TestTranslateDeterministic(t *testing.T) {
	format := "Use [code:npm] and the [link:guide]."
	bindings := Bindings{"code": Code{}, "link": Link{Href: "https://example.com"}}
	first := Translate(format, bindings)
	second := Translate(format, bindings)
	if first != second {
		t.Fatalf("translation not deterministic: %q vs %q", first, second)
	}
}
