package tree

import (
	"bytes"
	"testing"

	"github.com/nihei9/indentlr/text"
)

func pos(l, c int) text.Position { return text.Position{Line: l, Col: c} }
func sp(sl, sc, el, ec int) text.Span {
	return text.NewSpan(pos(sl, sc), pos(el, ec))
}

func TestJoin_DropsDiscardedChildren(t *testing.T) {
	num := Label[string]("num", sp(0, 0, 0, 1), nil)
	plus := Discard[string](sp(0, 1, 0, 2))
	num2 := Label[string]("num", sp(0, 2, 0, 3), nil)

	node := Join([]ResultTree[string]{num, plus, num2}, NoLabel[string](), NoOverride(), NoOverride())
	if node.Kind != Structural {
		t.Fatalf("expected structural, got %v", node.Kind)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected discarded child dropped, got %d children", len(node.Children))
	}
	if node.Span != sp(0, 0, 0, 3) {
		t.Fatalf("unexpected span %v", node.Span)
	}
}

func TestJoin_PanicsOnOutOfOrderChildren(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-order children")
		}
	}()
	a := Label[string]("a", sp(0, 2, 0, 3), nil)
	b := Label[string]("b", sp(0, 0, 0, 1), nil)
	Join([]ResultTree[string]{a, b}, NoLabel[string](), NoOverride(), NoOverride())
}

func TestJoin_PanicsOnEmptyWithoutOverride(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when results is empty and no override given")
		}
	}()
	Join[string](nil, NoLabel[string](), NoOverride(), NoOverride())
}

func TestPrune_CollapsesStructuralPromotesChildren(t *testing.T) {
	leaf := Label[string]("leaf", sp(0, 0, 0, 1), nil)
	wrapper := Struct[string](sp(0, 0, 0, 1), []ResultTree[string]{leaf})
	root := Label[string]("root", sp(0, 0, 0, 1), []ResultTree[string]{wrapper})

	pruned := Prune(root)
	if len(pruned) != 1 {
		t.Fatalf("expected one root, got %d", len(pruned))
	}
	if len(pruned[0].Children) != 1 || pruned[0].Children[0].Label != "leaf" {
		t.Fatalf("expected structural wrapper collapsed, got %+v", pruned[0].Children)
	}
}

func TestPrune_DiscardedVanishes(t *testing.T) {
	d := Discard[string](sp(0, 0, 0, 1))
	if pruned := Prune(d); len(pruned) != 0 {
		t.Fatalf("expected discarded node to vanish, got %+v", pruned)
	}
}

func TestSelectUnique_PanicsOnAmbiguity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on ambiguous selection")
		}
	}()
	a := Label[string]("x", sp(0, 0, 0, 1), nil)
	b := Label[string]("x", sp(0, 1, 0, 2), nil)
	root := Struct[string](sp(0, 0, 0, 2), []ResultTree[string]{a, b})
	SelectUnique(root, func(l string) bool { return l == "x" })
}

func TestCollect_EntersStructuralTransparently(t *testing.T) {
	a := Label[string]("a", sp(0, 0, 0, 1), nil)
	b := Label[string]("b", sp(0, 1, 0, 2), nil)
	wrapper := Struct[string](sp(0, 0, 0, 2), []ResultTree[string]{a, b})
	got := Collect(wrapper)
	if len(got) != 2 || got[0].Label != "a" || got[1].Label != "b" {
		t.Fatalf("unexpected collect result: %+v", got)
	}
}

func TestPrint_AtomicNodeShowsText(t *testing.T) {
	model := text.New("1+2")
	num := Label[string]("num", sp(0, 0, 0, 1), nil)
	plusLbl := Label[string]("plus", sp(0, 1, 0, 2), nil)
	num2 := Label[string]("num", sp(0, 2, 0, 3), nil)
	root := Label[string]("E", sp(0, 0, 0, 3), []ResultTree[string]{num, plusLbl, num2})

	var buf bytes.Buffer
	nameOf := func(l string) string { return l }
	isOpaque := func(l string) bool { return l == "E" }
	if err := Print(&buf, model, root, nameOf, isOpaque); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte(`num = "1"`)) {
		t.Fatalf("expected leaf text in output, got:\n%s", out)
	}
	if bytes.Contains(buf.Bytes(), []byte(`E = `)) {
		t.Fatalf("expected opaque E node to omit text, got:\n%s", out)
	}
}

func TestPrint_ExactFormat(t *testing.T) {
	model := text.New("abc")
	node := Label[string]("A", sp(0, 0, 0, 3), nil)

	var buf bytes.Buffer
	nameOf := func(l string) string { return l }
	isOpaque := func(string) bool { return false }
	if err := Print(&buf, model, node, nameOf, isOpaque); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[00:00 to 00:03[   A = \"abc\"\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrint_IndentsFourSpacesPerDepth(t *testing.T) {
	model := text.New("ab")
	leaf := Label[string]("leaf", sp(0, 0, 0, 1), nil)
	root := Label[string]("root", sp(0, 0, 0, 2), []ResultTree[string]{leaf})

	var buf bytes.Buffer
	nameOf := func(l string) string { return l }
	isOpaque := func(string) bool { return true }
	if err := Print(&buf, model, root, nameOf, isOpaque); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[00:00 to 00:02[   root\n[00:00 to 00:01[       leaf\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrune_Idempotent(t *testing.T) {
	leaf := Label[string]("leaf", sp(0, 0, 0, 1), nil)
	wrapper := Struct[string](sp(0, 0, 0, 1), []ResultTree[string]{leaf})
	root := Label[string]("root", sp(0, 0, 0, 1), []ResultTree[string]{wrapper})

	once := Prune(root)
	twice := pruneAll(once)
	if len(once) != len(twice) {
		t.Fatalf("prune not idempotent: %d vs %d roots", len(once), len(twice))
	}
	for i := range once {
		if once[i].Label != twice[i].Label || once[i].Span != twice[i].Span || len(once[i].Children) != len(twice[i].Children) {
			t.Fatalf("prune not idempotent at root %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestDebugString_BoxDrawing(t *testing.T) {
	a := Label[string]("a", sp(0, 0, 0, 1), nil)
	b := Label[string]("b", sp(0, 1, 0, 2), nil)
	root := Label[string]("root", sp(0, 0, 0, 2), []ResultTree[string]{a, b})

	got := debugString(root, func(l string) string { return l })
	want := "root\n├─ a\n└─ b\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextOf(t *testing.T) {
	model := text.New("hello world")
	n := Label[string]("word", sp(0, 6, 0, 11), nil)
	if got := TextOf(model, n); got != "world" {
		t.Fatalf("got %q, want %q", got, "world")
	}
}
