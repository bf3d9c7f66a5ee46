package style

import (
	"testing"

	"rtdoc/model"
	"rtdoc/units"
)

func newDoc(t *testing.T) *model.Document {
	t.Helper()

	doc := model.NewDocument()
	doc.AddStyle(model.Style{
		Name: "Normal",
		Char: model.CharFormat{Font: model.Some("f1"), Size: model.Some(units.Points(11))},
		Para: model.ParaFormat{SpaceAfter: model.Some(units.Points(6))},
	}, "normal")
	doc.AddStyle(model.Style{
		Name: "Heading 1",
		Base: model.Some("normal"),
		Char: model.CharFormat{Bold: model.Some(true), Size: model.Some(units.Points(16))},
		Para: model.ParaFormat{OutlineLevel: model.Some(0)},
	}, "h1")
	doc.AddStyle(model.Style{
		Name: "Emphasis",
		Kind: model.StyleKindCharacter,
		Char: model.CharFormat{Italic: model.Some(true)},
	}, "em")
	return doc
}

func TestResolveParagraphMergeOrder(t *testing.T) {
	doc := newDoc(t)
	r := NewResolver(doc.Styles)

	para, char := r.ResolveParagraph(model.ParagraphFormat{
		Style: "h1",
		Char:  model.CharFormat{Size: model.Some(units.Points(20))},
	})

	if char.Font != model.Some("f1") {
		t.Errorf("font from base style lost: %+v", char.Font)
	}
	if char.Bold != model.Some(true) {
		t.Error("own style bold lost")
	}
	if char.Size != model.Some(units.Points(20)) {
		t.Errorf("inline size must win, got %v", char.Size.Value())
	}
	if para.SpaceAfter != model.Some(units.Points(6)) || para.OutlineLevel != model.Some(0) {
		t.Errorf("paragraph formatting = %+v", para)
	}
}

func TestResolveRun(t *testing.T) {
	doc := newDoc(t)
	r := NewResolver(doc.Styles)

	_, pchar := r.ResolveParagraph(model.ParagraphFormat{Style: "normal"})
	got := r.ResolveRun(pchar, &model.Run{Style: "em", Format: model.CharFormat{Bold: model.Some(true)}})

	if got.Italic != model.Some(true) || got.Bold != model.Some(true) || got.Font != model.Some("f1") {
		t.Errorf("ResolveRun() = %+v", got)
	}
}

func TestChainTerminatesOnCycle(t *testing.T) {
	doc := model.NewDocument()
	doc.AddStyle(model.Style{Name: "A", Base: model.Some("b"), Char: model.CharFormat{Bold: model.Some(true)}}, "a")
	doc.AddStyle(model.Style{Name: "B", Base: model.Some("a"), Char: model.CharFormat{Italic: model.Some(true)}}, "b")
	r := NewResolver(doc.Styles)

	chain := r.Chain("a")
	if len(chain) != 2 || chain[0] != "b" || chain[1] != "a" {
		t.Fatalf("Chain(a) = %v, want [b a]", chain)
	}

	_, char := r.ResolveParagraph(model.ParagraphFormat{Style: "a"})
	if char.Bold != model.Some(true) || char.Italic != model.Some(true) {
		t.Errorf("cycle resolution = %+v", char)
	}
}

func TestChainSelfReference(t *testing.T) {
	doc := model.NewDocument()
	doc.AddStyle(model.Style{Name: "Self", Base: model.Some("self")}, "self")
	r := NewResolver(doc.Styles)

	if chain := r.Chain("self"); len(chain) != 1 {
		t.Errorf("Chain(self) = %v", chain)
	}
}

func TestChainUnknownAlias(t *testing.T) {
	doc := model.NewDocument()
	doc.AddStyle(model.Style{Name: "Orphan", Base: model.Some("missing")}, "orphan")
	r := NewResolver(doc.Styles)

	if chain := r.Chain("orphan"); len(chain) != 1 || chain[0] != "orphan" {
		t.Errorf("Chain(orphan) = %v", chain)
	}
	if chain := r.Chain("missing"); len(chain) != 0 {
		t.Errorf("Chain(missing) = %v", chain)
	}
	_, char := r.ResolveParagraph(model.ParagraphFormat{Style: "missing", Char: model.CharFormat{Caps: model.Some(true)}})
	if char.Caps != model.Some(true) {
		t.Error("inline formatting lost for unknown style")
	}
}

func TestResolveSection(t *testing.T) {
	doc := model.NewDocument()
	doc.AddStyle(model.Style{
		Name:    "Wide",
		Kind:    model.StyleKindSection,
		Section: model.SectionFormat{Columns: 2, MarginLeft: model.Some(units.Inches(2))},
	}, "wide")
	r := NewResolver(doc.Styles)

	f := r.ResolveSection(&model.Section{Style: "wide", Format: model.SectionFormat{MarginLeft: model.Some(units.Inches(1))}})
	if f.Columns != 2 {
		t.Errorf("columns = %d, want 2", f.Columns)
	}
	if f.MarginLeft != model.Some(units.Inches(1)) {
		t.Error("section override must win")
	}
}
