package tag

import "testing"

func TestQualifiedNameJoinsScope(t *testing.T) {
	tg := Tag{Name: "run", ScopeName: "Foo"}
	if got := tg.QualifiedName(); got != "Foo.run" {
		t.Errorf("QualifiedName() = %q, want %q", got, "Foo.run")
	}
	root := Tag{Name: "m"}
	if got := root.QualifiedName(); got != "m" {
		t.Errorf("QualifiedName() at root = %q, want %q", got, "m")
	}
}

func TestContainerKinds(t *testing.T) {
	for _, k := range []Kind{KindModule, KindClass, KindTask, KindFunction, KindBlock, KindEnum, KindStruct, KindTypedef} {
		if !k.IsContainer() {
			t.Errorf("%s: expected IsContainer() true", k)
		}
	}
	for _, k := range []Kind{KindConstant, KindPort, KindNet, KindRegister, KindEvent} {
		if k.IsContainer() {
			t.Errorf("%s: expected IsContainer() false", k)
		}
	}
}

func TestTemporaryContainerKinds(t *testing.T) {
	if !KindEnum.IsTemporaryContainer() || !KindTypedef.IsTemporaryContainer() {
		t.Error("enum and typedef must be temporary containers")
	}
	if KindModule.IsTemporaryContainer() || KindClass.IsTemporaryContainer() {
		t.Error("module and class must not be temporary containers")
	}
}

func TestCollectorAccumulatesInOrder(t *testing.T) {
	c := NewCollector()
	c.EmitTag(Tag{Name: "a"})
	c.EmitTag(Tag{Name: "b"})
	got := c.Tags()
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Errorf("got %+v", got)
	}
}
