package store

import "testing"

func TestTermConstructors(t *testing.T) {
	tests := []struct {
		name string
		term Term
		kind TermKind
	}{
		{
			name: "IRI term",
			term: IRI("http://example.org/phyloref1"),
			kind: IRITerm,
		},
		{
			name: "blank term",
			term: Blank("_:b0"),
			kind: BlankTerm,
		},
		{
			name: "plain literal",
			term: Literal("Label in English", "en"),
			kind: LiteralTerm,
		},
		{
			name: "typed literal",
			term: TypedLiteral("42", NamespaceXSD+"integer"),
			kind: LiteralTerm,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.term.Kind != tc.kind {
				t.Errorf("Kind = %v, want %v", tc.term.Kind, tc.kind)
			}
		})
	}
}

func TestTerm_Equals(t *testing.T) {
	tests := []struct {
		name  string
		a     Term
		b     Term
		equal bool
	}{
		{
			name:  "identical IRIs",
			a:     IRI("http://example.org/n1"),
			b:     IRI("http://example.org/n1"),
			equal: true,
		},
		{
			name:  "different IRIs",
			a:     IRI("http://example.org/n1"),
			b:     IRI("http://example.org/n2"),
			equal: false,
		},
		{
			name:  "IRI vs literal with same value",
			a:     IRI("node"),
			b:     Literal("node", ""),
			equal: false,
		},
		{
			name:  "literals differing only by language tag",
			a:     Literal("Label", "en"),
			b:     Literal("Label", "de"),
			equal: false,
		},
		{
			name:  "tagged vs untagged literal",
			a:     Literal("Label", "en"),
			b:     Literal("Label", ""),
			equal: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.a.Equals(tc.b) != tc.equal {
				t.Errorf("Equals() = %v, want %v", tc.a.Equals(tc.b), tc.equal)
			}
		})
	}
}

func TestTerm_String(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		expected string
	}{
		{
			name:     "IRI",
			term:     IRI("http://example.org/n1"),
			expected: "<http://example.org/n1>",
		},
		{
			name:     "blank node",
			term:     Blank("_:b0"),
			expected: "_:b0",
		},
		{
			name:     "language-tagged literal",
			term:     Literal("Label in English", "en"),
			expected: `"Label in English"@en`,
		},
		{
			name:     "untagged literal",
			term:     Literal("Label", ""),
			expected: `"Label"`,
		},
		{
			name:     "typed literal",
			term:     TypedLiteral("42", NamespaceXSD+"integer"),
			expected: `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.term.String(); got != tc.expected {
				t.Errorf("String() = %s, want %s", got, tc.expected)
			}
		})
	}
}

func TestTerm_IsZero(t *testing.T) {
	if !(Term{}).IsZero() {
		t.Error("zero Term should report IsZero")
	}
	if IRI("http://example.org/n1").IsZero() {
		t.Error("non-empty term should not report IsZero")
	}
}
