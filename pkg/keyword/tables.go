package keyword

// Default is the process-wide registry populated once, at package init, for
// both supported languages. The scanner never mutates it at run time
// (spec.md §9 "Global state").
var Default = NewRegistry()

func init() {
	registerCommon(Default)
	registerSystemVerilogOnly(Default)
	registerBulkNoise(Default)
	registerDirectives(Default)
}

// registerCommon registers the keywords that drive recognition and are
// valid in both Verilog and SystemVerilog: spec.md §3's Verilog tag-kind
// subset (constant, event, function, module, net, port, register, task,
// block) plus the keywords that produce them.
func registerCommon(r *Registry) {
	both := func(text string, kind ParserKind) {
		r.RegisterKeyword(text, Verilog, kind)
		r.RegisterKeyword(text, SystemVerilog, kind)
	}

	// Design elements (spec.md §4.6.2).
	both("module", Module)
	both("endmodule", EndDE)

	// Subprograms (spec.md §4.6.3); present since Verilog-1995.
	both("function", Function)
	both("endfunction", EndDE)
	both("task", Task)
	both("endtask", EndDE)

	// Block delimiters (spec.md §4.6.1).
	both("begin", Begin)
	both("end", End)

	// Parameter lists (spec.md §4.6.6).
	both("parameter", Parameter)
	both("localparam", Localparam)

	// Port direction qualifiers (spec.md §4.6.7/§4.6.10): a bare
	// "input"/"output"/"inout" declaration outside a port-list's parens is
	// a non-ANSI port declaration and flows through the name-list
	// recognizer with Port as the declared kind.
	both("input", Port)
	both("output", Port)
	both("inout", Port)
	both("ref", Port)

	// Net types (spec.md §4.6.10 "NET").
	for _, kw := range []string{"wire", "tri", "tri0", "tri1", "triand", "trior", "trireg", "wand", "wor", "supply0", "supply1", "uwire"} {
		both(kw, Net)
	}

	// Register/variable types (spec.md §4.6.10 "REGISTER").
	for _, kw := range []string{"reg", "integer", "time", "realtime", "genvar"} {
		both(kw, Register)
	}

	// Named events (spec.md §4.6.10, tag kind Event).
	both("event", Event)
}

// registerSystemVerilogOnly registers the SystemVerilog-added constructs
// (spec.md §3 "Tag kinds (SystemVerilog adds)").
func registerSystemVerilogOnly(r *Registry) {
	sv := func(text string, kind ParserKind) {
		r.RegisterKeyword(text, SystemVerilog, kind)
	}

	sv("interface", Interface)
	sv("endinterface", EndDE)

	sv("package", Package)
	sv("endpackage", EndDE)

	sv("program", Program)
	sv("endprogram", EndDE)

	sv("property", Property)
	sv("endproperty", EndDE)

	sv("covergroup", Covergroup)
	sv("endgroup", EndDE)

	sv("modport", Modport)

	sv("class", Class)
	sv("endclass", EndDE)

	sv("typedef", Typedef)
	sv("enum", Enum)
	sv("struct", Struct)
	sv("union", Struct)

	// Concurrent assertions (spec.md §4.6.11): the assertion tag kind is
	// a SystemVerilog addition (spec.md §3); under plain Verilog these
	// words are only valid inside UDP/PLA bodies and are bulk noise
	// (registered separately in registerBulkNoise).
	sv("assert", Assertion)
	sv("assume", Assertion)
	sv("cover", Assertion)

	// 4-state/2-state variable types (register-like for name-list purposes).
	for _, kw := range []string{"logic", "bit", "byte", "shortint", "longint", "int", "longreal", "shortreal"} {
		sv(kw, Register)
	}
}

// registerBulkNoise registers the remaining IEEE keyword list: words the
// scanner must recognize (so they are never mistaken for an identifier
// that could start a declaration) but which have no scanning effect beyond
// being skipped as a single classified word.
func registerBulkNoise(r *Registry) {
	common := []string{
		// Control flow / statements
		"if", "else", "case", "casex", "casez", "endcase", "default",
		"for", "while", "repeat", "forever", "disable", "wait",
		// Structural
		"always", "always_comb", "always_ff", "always_latch", "initial",
		"assign", "deassign", "force", "release",
		"generate", "endgenerate",
		"specify", "endspecify", "specparam",
		"primitive", "endprimitive", "table", "endtable",
		"defparam",
		// Net/gate primitives
		"and", "nand", "or", "nor", "xor", "xnor", "not", "buf", "bufif0",
		"bufif1", "notif0", "notif1", "pulldown", "pullup",
		"signed", "unsigned", "vectored", "scalared", "small", "medium",
		"large",
		// Timing / misc
		"posedge", "negedge", "edge", "join", "fork", "automatic",
		"ifnone", "pulsestyle_onevent", "pulsestyle_ondetect", "showcancelled",
		"noshowcancelled",
		// Plain-Verilog assertion words (no tag kind outside SystemVerilog).
		"assert", "assume", "cover",
	}
	for _, kw := range common {
		r.RegisterKeyword(kw, Verilog, Ignore)
	}
	// AddUnlessExisting keeps the SystemVerilog assert/assume/cover
	// registered as Assertion by registerSystemVerilogOnly.
	r.RegisterKeywordGroup(Group{Value: Ignore, AddUnlessExisting: true, Keywords: common}, SystemVerilog)

	svOnly := Group{
		Value:             Ignore,
		AddUnlessExisting: true, // never clobber assert/assume/cover etc. above
		Keywords: []string{
			"unique", "unique0", "priority", "foreach", "return", "break",
			"continue", "do", "final",
			"virtual", "static", "local", "protected",
			"private", "public",
			"rand", "randc", "randomize", "randcase", "randsequence",
			"constraint", "solve", "before", "inside", "dist",
			"sequence", "endsequence", "coverpoint", "bins", "binsof",
			"cross", "wildcard", "ignore_bins", "illegal_bins",
			"iff", "implies", "timeprecision", "timeunit",
			"import", "export", "context",
			"chandle", "string", "void", "const", "var",
			"packed",
			"clocking", "endclocking", "global",
			"interconnect", "nettype", "soft",
			"let", "with", "new", "super", "this", "null",
			"extends", "implements",
			"forkjoin", "matches", "tagged", "first_match", "throughout",
			"within", "intersect", "eventually", "nexttime", "until", "s_until",
			"sync_accept_on", "sync_reject_on", "reject_on", "accept_on",
			"restrict", "expect", "assert_strobe", "checker", "endchecker",
			"type",
		},
	}
	r.RegisterKeywordGroup(svOnly, SystemVerilog)

	// "extern"/"pure" (extern method prototypes, pure virtual methods,
	// spec.md §4.6.3): recognized words, not bulk noise, since the
	// function/task recognizer needs to know one preceded it.
	r.RegisterKeyword("extern", SystemVerilog, ExternHint)
	r.RegisterKeyword("pure", SystemVerilog, ExternHint)
}

// registerDirectives registers the compiler-directive words: the scanner
// only ever recognizes the directive name and skips to end of line
// (spec.md §1 Non-goals: no macro expansion), except `` `define `` which
// captures the macro name as a constant tag (spec.md §4.6.12).
func registerDirectives(r *Registry) {
	directives := Group{
		Value:             Directive,
		AddUnlessExisting: false,
		Keywords: []string{
			"`ifdef", "`ifndef", "`else", "`elsif", "`endif",
			"`include", "`timescale", "`default_nettype", "`resetall",
			"`undef", "`celldefine", "`endcelldefine",
			"`unconnected_drive", "`nounconnected_drive",
			"`protect", "`endprotect", "`line", "`pragma",
			"`begin_keywords", "`end_keywords", "`undefineall",
		},
	}
	r.RegisterKeywordGroup(directives, Verilog)
	r.RegisterKeywordGroup(directives, SystemVerilog)

	r.RegisterKeyword("`define", Verilog, Define)
	r.RegisterKeyword("`define", SystemVerilog, Define)
}
