// Package style flattens style inheritance chains into effective formatting.
package style

import (
	"rtdoc/model"
	"rtdoc/registry"
)

// Resolver resolves formatting against the style registry of a document. It
// keeps no state besides the registry it reads, so results depend only on
// the current model content.
type Resolver struct {
	styles *registry.Registry[model.Style]
}

func NewResolver(styles *registry.Registry[model.Style]) *Resolver {
	return &Resolver{styles: styles}
}

// Chain returns aliases of styles visited when following base references
// starting with alias, root first. Chain stops when the base refers back to
// the style itself or to any entry already visited. Unknown aliases end the
// chain without error.
func (r *Resolver) Chain(alias string) []string {
	var chain []string
	visited := make(map[int]bool)

	current := alias
	for current != "" {
		e, err := r.styles.Get(current)
		if err != nil || visited[e.Index] {
			break
		}
		visited[e.Index] = true
		chain = append([]string{current}, chain...) // root first

		base, ok := e.Value.Base.Get()
		if !ok {
			break
		}
		current = base
	}
	return chain
}

// chainStyles returns chain as values, root first.
func (r *Resolver) chainStyles(alias string) []model.Style {
	chain := r.Chain(alias)
	out := make([]model.Style, 0, len(chain))
	for _, a := range chain {
		out = append(out, r.styles.MustGet(a).Value)
	}
	return out
}

// ResolveParagraph returns effective paragraph and character formatting of a
// paragraph: base styles from the root up, then the style itself, then
// direct overrides.
func (r *Resolver) ResolveParagraph(pf model.ParagraphFormat) (model.ParaFormat, model.CharFormat) {
	var (
		para model.ParaFormat
		char model.CharFormat
	)
	for _, st := range r.chainStyles(pf.Style) {
		para = st.Para.Over(para)
		char = st.Char.Over(char)
	}
	return pf.Para.Over(para), pf.Char.Over(char)
}

// ResolveRun returns effective character formatting of run inside paragraph
// with effective character formatting paraChar.
func (r *Resolver) ResolveRun(paraChar model.CharFormat, run *model.Run) model.CharFormat {
	char := paraChar
	for _, st := range r.chainStyles(run.Style) {
		char = st.Char.Over(char)
	}
	return run.Format.Over(char)
}

// StyleChar returns character formatting of style alias with its chain
// applied. Used by emitters writing style sheets with inherited values
// flattened.
func (r *Resolver) StyleChar(alias string) model.CharFormat {
	var char model.CharFormat
	for _, st := range r.chainStyles(alias) {
		char = st.Char.Over(char)
	}
	return char
}

// ResolveSection returns section formatting with the section style applied
// underneath.
func (r *Resolver) ResolveSection(s *model.Section) model.SectionFormat {
	var f model.SectionFormat
	for _, st := range r.chainStyles(s.Style) {
		f = st.Section.Over(f)
	}
	return s.Format.Over(f)
}
