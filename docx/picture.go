package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"rtdoc/model"
	"rtdoc/units"
	"rtdoc/utils/images"
)

// picture writes inline drawing into run. Picture data is normalized to PNG
// or JPEG and stored in the media folder once per distinct content.
func (r *renderer) picture(run *etree.Element, p *model.Picture) error {
	pic, err := images.Normalize(p.Data, r.opts.Pictures)
	if err != nil {
		return fmt.Errorf("unable to embed picture: %w", err)
	}
	if pic.Converted {
		r.log.Debug("Picture normalized", zap.String("format", string(pic.Format)), zap.Int("width", pic.Width), zap.Int("height", pic.Height))
	}
	width, height := p.DisplaySize(pic.Width, pic.Height)
	width = width * p.ScaleX.Or(100) / 100
	height = height * p.ScaleY.Or(100) / 100
	cx := strconv.FormatInt(units.Twips(width).EMU(), 10)
	cy := strconv.FormatInt(units.Twips(height).EMU(), 10)

	rid := r.addMedia(*pic)
	r.drawingID++
	id := strconv.Itoa(r.drawingID)
	name := "Picture " + id

	inline := w(run, "drawing").CreateElement("wp:inline")
	for _, d := range []string{"distT", "distB", "distL", "distR"} {
		inline.CreateAttr(d, "0")
	}
	extent := inline.CreateElement("wp:extent")
	extent.CreateAttr("cx", cx)
	extent.CreateAttr("cy", cy)
	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", id)
	docPr.CreateAttr("name", name)
	if p.Description != "" {
		docPr.CreateAttr("descr", p.Description)
	}

	data := inline.CreateElement("a:graphic").CreateElement("a:graphicData")
	data.CreateAttr("uri", graphicPicURI)
	pp := data.CreateElement("pic:pic")

	nv := pp.CreateElement("pic:nvPicPr")
	cNvPr := nv.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", "0")
	cNvPr.CreateAttr("name", name)
	nv.CreateElement("pic:cNvPicPr")

	fill := pp.CreateElement("pic:blipFill")
	fill.CreateElement("a:blip").CreateAttr("r:embed", rid)
	if crop := cropRect(p, pic.Info); crop != nil {
		src := fill.CreateElement("a:srcRect")
		for _, c := range crop {
			src.CreateAttr(c.name, strconv.Itoa(c.value))
		}
	}
	fill.CreateElement("a:stretch").CreateElement("a:fillRect")

	sp := pp.CreateElement("pic:spPr")
	xfrm := sp.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", cx)
	ext.CreateAttr("cy", cy)
	geom := sp.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
	return nil
}

type cropEdge struct {
	name  string
	value int
}

// cropRect returns crop edges in thousandths of percent of the picture size,
// nil when picture is not cropped.
func cropRect(p *model.Picture, info images.Info) []cropEdge {
	if p.CropLeft.Twips() == 0 && p.CropTop.Twips() == 0 && p.CropRight.Twips() == 0 && p.CropBottom.Twips() == 0 {
		return nil
	}
	width, height := units.Pixels(info.Width).Twips(), units.Pixels(info.Height).Twips()
	fraction := func(v units.Size, total int) int {
		if total <= 0 {
			return 0
		}
		return v.Twips() * 100000 / total
	}
	return []cropEdge{
		{"l", fraction(p.CropLeft, width)},
		{"t", fraction(p.CropTop, height)},
		{"r", fraction(p.CropRight, width)},
		{"b", fraction(p.CropBottom, height)},
	}
}
