package render

import (
	"fmt"

	"rtdoc/model"
	"rtdoc/utils/debug"
)

// Dump returns human readable tree of the document model. It goes into debug
// reports next to the rendered output.
func Dump(doc *model.Document) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "document: charset=%s codepage=%d", doc.Charset, doc.CodePage)
	tw.Fields(1, "info", doc.Info)
	tw.Fields(1, "page", doc.Page)
	tw.Fields(1, "view", doc.View)
	tw.Fields(1, "typography", doc.Typography)

	for _, e := range doc.Colors.Entries() {
		tw.Line(1, "color %d %v: %s", e.Index, doc.Colors.AliasesOf(e.Index), e.Value)
	}
	for _, e := range doc.Fonts.Entries() {
		tw.Fields(1, fmt.Sprintf("font %d %v", e.Index, doc.Fonts.AliasesOf(e.Index)), e.Value)
	}
	for _, e := range doc.Styles.Entries() {
		tw.Line(1, "style %d %v: %q %s", e.Index, doc.Styles.AliasesOf(e.Index), e.Value.Name, e.Value.Kind)
		tw.Fields(2, "char", e.Value.Char)
		tw.Fields(2, "para", e.Value.Para)
	}
	for _, e := range doc.Lists.Entries() {
		tw.Line(1, "list %d %v: %q %s levels=%d restart=%t", e.Index, doc.Lists.AliasesOf(e.Index), e.Value.Name, e.Value.Type, len(e.Value.Levels), e.Value.RestartEachSection)
	}
	for _, e := range doc.Comments.Entries() {
		tw.Line(1, "comment %d %v: %q paragraphs=%d", e.Index, doc.Comments.AliasesOf(e.Index), e.Value.Author, len(e.Value.Body))
	}

	for i, s := range doc.Sections {
		tw.Line(1, "section %d style=%q", i, s.Style)
		tw.Fields(2, "format", s.Format)
		dumpHeaderFooter(tw, 2, "header", s.Header)
		dumpHeaderFooter(tw, 2, "footer", s.Footer)
		dumpElements(tw, 2, s.Body)
	}
	return tw.String()
}

func dumpHeaderFooter(tw *debug.TreeWriter, depth int, kind string, hf model.HeaderFooter) {
	for _, v := range []struct {
		name     string
		elements []model.Element
	}{
		{"first", hf.First},
		{"odd", hf.Odd},
		{"even", hf.Even},
	} {
		if len(v.elements) == 0 {
			continue
		}
		tw.Line(depth, "%s %s", kind, v.name)
		dumpElements(tw, depth+1, v.elements)
	}
}

func dumpElements(tw *debug.TreeWriter, depth int, elements []model.Element) {
	for _, e := range elements {
		switch v := e.(type) {
		case *model.Paragraph:
			tw.Line(depth, "paragraph style=%q", v.Format.Style)
			tw.Fields(depth+1, "para", v.Format.Para)
			tw.Fields(depth+1, "char", v.Format.Char)
			if ref, ok := v.Format.List.Get(); ok {
				tw.Line(depth+1, "list %q level %d", ref.List, ref.Level)
			}
			for _, r := range v.Runs {
				dumpRun(tw, depth+1, r)
			}
		case *model.Table:
			tw.Line(depth, "table columns=%d rows=%d", len(v.Columns), len(v.Rows))
			tw.Fields(depth+1, "format", v.Format)
			for ri, row := range v.Rows {
				tw.Line(depth+1, "row %d", ri)
				tw.Fields(depth+2, "format", row.Format)
				for ci, c := range row.Cells {
					tw.Line(depth+2, "cell %d", ci)
					tw.Fields(depth+3, "format", c.Format)
					dumpElements(tw, depth+3, c.Content)
				}
			}
		case *model.Container:
			tw.Line(depth, "container")
			dumpElements(tw, depth+1, v.Content)
		case model.ColumnBreak:
			tw.Line(depth, "column break")
		default:
			tw.Line(depth, "unknown %T", e)
		}
	}
}

func dumpRun(tw *debug.TreeWriter, depth int, r *model.Run) {
	tw.Line(depth, "run style=%q bookmark=%q comment=%q", r.Style, r.Bookmark, r.Comment)
	tw.Fields(depth+1, "char", r.Format)
	if r.Link != nil {
		tw.Line(depth+1, "link %s %q", r.Link.Kind, r.Link.Target)
	}
	for _, it := range r.Items {
		switch v := it.(type) {
		case model.Text:
			tw.TextBlock(depth+1, "text", string(v))
		case model.Special:
			tw.Line(depth+1, "special %s", v.Kind)
		case *model.Footnote:
			tw.Line(depth+1, "note endnote=%t mark=%q", v.Endnote, v.Mark)
			if v.Body != nil {
				dumpElements(tw, depth+2, []model.Element{v.Body})
			}
		case *model.Picture:
			tw.Line(depth+1, "picture bytes=%d description=%q", len(v.Data), v.Description)
		default:
			tw.Line(depth+1, "unknown %T", it)
		}
	}
}
