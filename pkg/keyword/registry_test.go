package keyword

import "testing"

func TestDefaultRegistryCommonKeywords(t *testing.T) {
	cases := []struct {
		word string
		lang Language
		want ParserKind
	}{
		{"module", Verilog, Module},
		{"module", SystemVerilog, Module},
		{"endmodule", Verilog, EndDE},
		{"class", SystemVerilog, Class},
		{"class", Verilog, Undefined},
		{"wire", Verilog, Net},
		{"logic", SystemVerilog, Register},
		{"logic", Verilog, Undefined},
		{"if", Verilog, Ignore},
		{"extern", SystemVerilog, ExternHint},
		{"pure", SystemVerilog, ExternHint},
		{"extern", Verilog, Undefined},
		{"`define", SystemVerilog, Define},
		{"`ifdef", Verilog, Directive},
	}
	for _, c := range cases {
		got := Default.LookupKeyword(c.word, c.lang)
		if got != c.want {
			t.Errorf("LookupKeyword(%q, %s) = %s, want %s", c.word, c.lang, got, c.want)
		}
	}
}

func TestRegisterKeywordGroupAddUnlessExisting(t *testing.T) {
	r := NewRegistry()
	r.RegisterKeyword("assert", SystemVerilog, Assertion)
	r.RegisterKeywordGroup(Group{
		Value:             Ignore,
		AddUnlessExisting: true,
		Keywords:          []string{"assert", "foreach"},
	}, SystemVerilog)

	if got := r.LookupKeyword("assert", SystemVerilog); got != Assertion {
		t.Errorf("assert was clobbered: got %s, want %s", got, Assertion)
	}
	if got := r.LookupKeyword("foreach", SystemVerilog); got != Ignore {
		t.Errorf("foreach = %s, want %s", got, Ignore)
	}
}

func TestIsLanguage(t *testing.T) {
	if !Default.IsLanguage(Verilog) || !Default.IsLanguage(SystemVerilog) {
		t.Error("both languages should be recognized")
	}
	if Default.IsLanguage(Language(99)) {
		t.Error("an unknown language id should not be recognized")
	}
}

func TestLookupKeywordUnknownWordIsUndefined(t *testing.T) {
	if got := Default.LookupKeyword("totally_not_a_keyword", Verilog); got != Undefined {
		t.Errorf("got %s, want Undefined", got)
	}
}
