package symbols

import (
	"testing"

	"github.com/creepebucket/AcaciaMC/internal/types"
)

func TestDeclareRejectsSameFrameRedeclaration(t *testing.T) {
	s := NewScope(nil)
	_, ok := s.Declare(&Binding{Name: "x", Kind: BindConst, Type: types.Int})
	if !ok {
		t.Fatalf("first declare of x should succeed")
	}
	_, ok = s.Declare(&Binding{Name: "x", Kind: BindConst, Type: types.Int})
	if ok {
		t.Errorf("second declare of x in the same frame should fail")
	}
}

func TestDeclareInChildFrameShadowsWithoutError(t *testing.T) {
	parent := NewScope(nil)
	parent.Declare(&Binding{Name: "x", Kind: BindConst, Type: types.Int})
	child := NewScope(parent)
	if _, ok := child.Declare(&Binding{Name: "x", Kind: BindConst, Type: types.Bool}); !ok {
		t.Errorf("declaring x in a child frame should succeed even though the parent has it")
	}
	b, _ := child.Lookup("x")
	if b.Type != types.Bool {
		t.Errorf("child's x should resolve to the child's binding, got %v", b.Type)
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := NewScope(nil)
	parent.Put(&Binding{Name: "y", Kind: BindRuntimeVar, Type: types.Int})
	child := NewScope(parent)
	b, ok := child.Lookup("y")
	if !ok {
		t.Fatalf("expected y to resolve through the parent chain")
	}
	if b.Type != types.Int {
		t.Errorf("got type %v, want Int", b.Type)
	}
	if _, ok := child.LookupLocal("y"); ok {
		t.Errorf("LookupLocal should not see parent bindings")
	}
}

func TestNewScopeInheritsFlags(t *testing.T) {
	parent := NewScope(nil)
	parent.Runtime = true
	parent.HasResult = true
	parent.InNewMethod = true
	child := NewScope(parent)
	if !child.Runtime || !child.HasResult || !child.InNewMethod {
		t.Errorf("child scope should inherit Runtime/HasResult/InNewMethod from its parent")
	}
}
