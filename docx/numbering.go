package docx

import (
	"strconv"
	"strings"

	"rtdoc/model"
	"rtdoc/units"
)

var listTypeValues = map[model.ListType]string{
	model.ListTypeHybrid: "hybridMultilevel",
	model.ListTypeSimple: "singleLevel",
	model.ListTypeMulti:  "multilevel",
}

var followValues = map[model.Follow]string{
	model.FollowTab:     "tab",
	model.FollowSpace:   "space",
	model.FollowNothing: "nothing",
}

// numberingPart writes one abstract numbering per registered list and one
// numbering instance per list instance. Instances restarting numbering in a
// section override start values of every level.
func (r *renderer) numberingPart() *xmlPart {
	p := newContentPart("word/numbering.xml", ctNumbering, "w:numbering")

	entries := r.doc.Lists.Entries()
	for _, e := range entries {
		l := e.Value
		abs := w(p.root, "abstractNum")
		abs.CreateAttr("w:abstractNumId", strconv.Itoa(e.Index))
		val(abs, "multiLevelType", listTypeValues[l.Type])
		if l.Name != "" {
			val(abs, "name", l.Name)
		}
		for i, lvl := range l.Levels {
			el := w(abs, "lvl")
			el.CreateAttr("w:ilvl", strconv.Itoa(i))
			valInt(el, "start", lvl.StartAt)
			val(el, "numFmt", numberFormatValues[lvl.Format])
			val(el, "suff", followValues[lvl.Follow])
			val(el, "lvlText", levelText(lvl.LevelText(i)))
			val(el, "lvlJc", alignValues[lvl.Justify])
			r.paraProperties(el, paraProps{format: model.ParaFormat{
				IndentLeft:  model.Some(lvl.Indent),
				IndentFirst: model.Some(units.Twips(-lvl.Hanging.Twips())),
			}})
			r.runProperties(el, "", lvl.Char)
		}
	}

	for _, inst := range r.lists.All() {
		num := w(p.root, "num")
		num.CreateAttr("w:numId", strconv.Itoa(inst.Number))
		valInt(num, "abstractNumId", inst.List)
		if !inst.Restart() {
			continue
		}
		for i, lvl := range entries[inst.List].Value.Levels {
			o := w(num, "lvlOverride")
			o.CreateAttr("w:ilvl", strconv.Itoa(i))
			valInt(o, "startOverride", lvl.StartAt)
		}
	}
	return p
}

// levelText converts level template into numbering level text: level
// references stay as they are, escaped percent signs become literal.
func levelText(template string) string {
	var b strings.Builder
	for _, part := range model.ParseTemplate(template) {
		if part.Level == 0 {
			b.WriteString(part.Literal)
			continue
		}
		b.WriteString("%" + strconv.Itoa(part.Level))
	}
	return b.String()
}
