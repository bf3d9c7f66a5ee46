package layout

import (
	"rtdoc/model"
)

// ListInstance is a numbering instance of a list template. Every list gets
// one shared instance, lists restarting per section get one more for every
// further section using them.
type ListInstance struct {
	List    int // list registry index
	Section int // section starting the instance, -1 for the shared one
	Number  int // 1 based instance number
}

// Restart reports instance which restarts numbering.
func (li ListInstance) Restart() bool {
	return li.Section >= 0
}

type instanceKey struct {
	list, section int
}

// ListInstances maps (list, section) pairs to numbering instances.
type ListInstances struct {
	all   []ListInstance
	byKey map[instanceKey]int
}

// NumberLists computes list instances of the document.
func NumberLists(doc *model.Document) *ListInstances {
	li := &ListInstances{byKey: make(map[instanceKey]int)}
	entries := doc.Lists.Entries()
	for _, e := range entries {
		li.all = append(li.all, ListInstance{List: e.Index, Section: -1, Number: len(li.all) + 1})
	}

	seen := make(map[int]bool)
	for s, sec := range doc.Sections {
		for _, idx := range usedLists(doc, sec) {
			if !seen[idx] {
				seen[idx] = true
				continue
			}
			if !entries[idx].Value.RestartEachSection {
				continue
			}
			inst := ListInstance{List: idx, Section: s, Number: len(li.all) + 1}
			li.all = append(li.all, inst)
			li.byKey[instanceKey{idx, s}] = inst.Number
		}
	}
	return li
}

// usedLists returns registry indices of lists referenced by section body in
// order of first use.
func usedLists(doc *model.Document, sec *model.Section) []int {
	var (
		out  []int
		seen = make(map[int]bool)
	)
	model.WalkParagraphs(sec.Body, func(p *model.Paragraph) {
		ref, ok := p.Format.List.Get()
		if !ok {
			return
		}
		idx := doc.Lists.Index(ref.List)
		if idx < 0 || seen[idx] {
			return
		}
		seen[idx] = true
		out = append(out, idx)
	})
	return out
}

// Lookup returns instance number for list index used in section s.
func (li *ListInstances) Lookup(list, section int) int {
	if n, ok := li.byKey[instanceKey{list, section}]; ok {
		return n
	}
	return list + 1
}

// All returns instances ordered by number.
func (li *ListInstances) All() []ListInstance {
	return append([]ListInstance(nil), li.all...)
}
