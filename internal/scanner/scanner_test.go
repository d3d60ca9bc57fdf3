package scanner

import (
	"testing"

	"github.com/ljwgithub/svtags/pkg/keyword"
	"github.com/ljwgithub/svtags/pkg/tag"
)

// want is a trimmed-down expectation for one emitted tag: only the fields
// a given scenario cares about need to be non-zero.
type want struct {
	Name        string
	Kind        tag.Kind
	ScopeName   string
	ScopeKind   tag.Kind
	Inheritance string
	Parameter   bool
}

func scanString(t *testing.T, src string, lang keyword.Language) []tag.Tag {
	t.Helper()
	sink := tag.NewCollector()
	if err := ScanFile("test.sv", []byte(src), lang, sink, nil, nil, nil); err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	return sink.Tags()
}

func assertTags(t *testing.T, got []tag.Tag, wants []want) {
	t.Helper()
	if len(got) != len(wants) {
		t.Fatalf("got %d tags, want %d\ngot: %+v", len(got), len(wants), got)
	}
	for i, w := range wants {
		g := got[i]
		if g.Name != w.Name || g.Kind != w.Kind || g.ScopeName != w.ScopeName ||
			g.ScopeKind != w.ScopeKind || g.Inheritance != w.Inheritance || g.Parameter != w.Parameter {
			t.Errorf("tag %d: got %+v, want %+v", i, g, w)
		}
	}
}

// S1: module with a header parameter and an ANSI port list.
func TestScanModuleParamsAndPorts(t *testing.T) {
	src := `module m #(parameter int N=8)(input a, output b);
endmodule
`
	got := scanString(t, src, keyword.Verilog)
	assertTags(t, got, []want{
		{Name: "m", Kind: tag.KindModule},
		{Name: "N", Kind: tag.KindConstant, ScopeName: "m", ScopeKind: tag.KindModule, Parameter: true},
		{Name: "a", Kind: tag.KindPort, ScopeName: "m", ScopeKind: tag.KindModule},
		{Name: "b", Kind: tag.KindPort, ScopeName: "m", ScopeKind: tag.KindModule},
	})
}

// S2: class with an extends clause and a method body.
func TestScanClassExtendsAndTask(t *testing.T) {
	src := `class Foo extends Base;
  task run();
  endtask
endclass
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "Foo", Kind: tag.KindClass, Inheritance: "Base"},
		{Name: "run", Kind: tag.KindTask, ScopeName: "Foo", ScopeKind: tag.KindClass},
	})
}

// S3: typedef enum with members.
func TestScanTypedefEnum(t *testing.T) {
	src := `typedef enum { IDLE, RUN } state_t;
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "state_t", Kind: tag.KindTypedef},
		{Name: "IDLE", Kind: tag.KindConstant, ScopeName: "state_t", ScopeKind: tag.KindTypedef},
		{Name: "RUN", Kind: tag.KindConstant, ScopeName: "state_t", ScopeKind: tag.KindTypedef},
	})
}

// S4: `define captures the macro name as a constant.
func TestScanDefine(t *testing.T) {
	src := "`define WIDTH 8\n"
	got := scanString(t, src, keyword.Verilog)
	assertTags(t, got, []want{
		{Name: "WIDTH", Kind: tag.KindConstant},
	})
}

// S5: interface with a modport; modport's own port list is skipped
// opaquely (no nested port tags).
func TestScanInterfaceModport(t *testing.T) {
	src := `interface bus_if;
  modport mst (input clk, output data);
endinterface
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "bus_if", Kind: tag.KindInterface},
		{Name: "mst", Kind: tag.KindModport, ScopeName: "bus_if", ScopeKind: tag.KindInterface},
	})
}

// S6: an out-of-body "Class::method" definition resolves to a synthetic
// scope named after the class.
func TestScanOutOfBodyMethod(t *testing.T) {
	src := `task Foo::run();
endtask
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "run", Kind: tag.KindTask, ScopeName: "Foo", ScopeKind: tag.KindClass},
	})
}

// A localparam never carries the overridable attribute, unlike a
// module-header parameter.
func TestScanLocalparamNotOverridable(t *testing.T) {
	src := `module m;
  localparam int W = 4;
endmodule
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "m", Kind: tag.KindModule},
		{Name: "W", Kind: tag.KindConstant, ScopeName: "m", ScopeKind: tag.KindModule, Parameter: false},
	})
}

// A plain (non-ANSI) net/register declaration at module scope.
func TestScanNetAndRegisterDeclarations(t *testing.T) {
	src := `module m;
  wire clk;
  reg [7:0] data;
endmodule
`
	got := scanString(t, src, keyword.Verilog)
	assertTags(t, got, []want{
		{Name: "m", Kind: tag.KindModule},
		{Name: "clk", Kind: tag.KindNet, ScopeName: "m", ScopeKind: tag.KindModule},
		{Name: "data", Kind: tag.KindRegister, ScopeName: "m", ScopeKind: tag.KindModule},
	})
}

// A nested named begin/end block is tagged and properly closes its scope.
func TestScanNamedBlock(t *testing.T) {
	src := `module m;
  initial begin : blk
  end
endmodule
`
	got := scanString(t, src, keyword.Verilog)
	assertTags(t, got, []want{
		{Name: "m", Kind: tag.KindModule},
		{Name: "blk", Kind: tag.KindBlock, ScopeName: "m", ScopeKind: tag.KindModule},
	})
}

// An unnamed begin/end nested inside a labeled block must close on its own
// "end" without popping the enclosing block early.
func TestScanNamedBlockWithNestedUnnamedBegin(t *testing.T) {
	src := `module m;
  initial begin : blk
    begin
    end
  end
endmodule
`
	got := scanString(t, src, keyword.Verilog)
	assertTags(t, got, []want{
		{Name: "m", Kind: tag.KindModule},
		{Name: "blk", Kind: tag.KindBlock, ScopeName: "m", ScopeKind: tag.KindModule},
	})
}

// An extern method declaration emits a prototype tag and pushes no scope, so
// the class body's own "endclass" still matches and closes the class.
func TestScanExternMethodEmitsPrototypeAndNoScope(t *testing.T) {
	src := `class C;
  extern function void f();
endclass
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "C", Kind: tag.KindClass},
		{Name: "f", Kind: tag.KindPrototype, ScopeName: "C", ScopeKind: tag.KindClass},
	})
}

// "pure virtual" methods get the same prototype treatment as "extern".
func TestScanPureVirtualMethodEmitsPrototype(t *testing.T) {
	src := `class C;
  pure virtual function void f();
endclass
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "C", Kind: tag.KindClass},
		{Name: "f", Kind: tag.KindPrototype, ScopeName: "C", ScopeKind: tag.KindClass},
	})
}

// An extern declaration with a non-empty port list is skipped opaquely, not
// scoped under the enclosing class (there is no function scope to own it).
func TestScanExternMethodWithPortsSkipsPortList(t *testing.T) {
	src := `class C;
  extern function void f(int a);
endclass
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "C", Kind: tag.KindClass},
		{Name: "f", Kind: tag.KindPrototype, ScopeName: "C", ScopeKind: tag.KindClass},
	})
}

// A forward class declaration still emits a tag for the declared name.
func TestScanTypedefClassForwardDeclaration(t *testing.T) {
	src := `typedef class Foo;
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "Foo", Kind: tag.KindPrototype},
	})
}

// "typedef interface class" is the same forward-declaration shape with an
// extra keyword.
func TestScanTypedefInterfaceClassForwardDeclaration(t *testing.T) {
	src := `typedef interface class Bar;
`
	got := scanString(t, src, keyword.SystemVerilog)
	assertTags(t, got, []want{
		{Name: "Bar", Kind: tag.KindPrototype},
	})
}
