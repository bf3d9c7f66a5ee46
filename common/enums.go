// Package common keeps enums shared by configuration, command line and
// rendering so that none of them has to import the others.
package common

// Requested output type.
// ENUM(rtf, docx)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtRtf:
		return ".rtf"
	case OutputFmtDocx:
		return ".docx"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
