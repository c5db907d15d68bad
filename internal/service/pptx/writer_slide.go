package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

func (w *writer) writeSlide(zw *zip.Writer, canvas *Canvas, slideNum int) error {
	relIDs := slideRelIDs(canvas)

	var shapesXML strings.Builder
	shapeID := 2 // 1 is reserved for the group shape
	for _, shape := range canvas.shapes {
		switch s := shape.(type) {
		case *TextBox:
			shapesXML.WriteString(writeTextBoxXML(s, &shapeID))
		case *AutoShape:
			shapesXML.WriteString(writeAutoShapeXML(s, &shapeID))
		case *Line:
			shapesXML.WriteString(writeLineXML(s, &shapeID))
		case *Picture:
			shapesXML.WriteString(writePictureXML(s, &shapeID, relIDs[shape]))
		case *Table:
			shapesXML.WriteString(writeTableXML(s, &shapeID))
		case *Chart:
			shapesXML.WriteString(writeChartFrameXML(s, &shapeID, relIDs[shape]))
		}
	}

	bgXML := ""
	if canvas.background != "" {
		bgXML = fmt.Sprintf("    <p:bg>\n      <p:bgPr>\n        <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n        <a:effectLst/>\n      </p:bgPr>\n    </p:bg>\n", canvas.background)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
%s    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, bgXML, shapesXML.String())

	return writeRawToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

// --- Text box ---

func writeTextBoxXML(s *TextBox, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("TextBox %d", id)
	}

	bodyAttrs := ""
	if !s.WordWrap {
		bodyAttrs += ` wrap="none"`
	}
	if s.Anchor != "" {
		bodyAttrs += fmt.Sprintf(` anchor="%s"`, s.Anchor)
	}

	var paragraphsXML strings.Builder
	for i := range s.Paragraphs {
		paragraphsXML.WriteString(writeParagraphXML(&s.Paragraphs[i]))
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
        </p:spPr>
        <p:txBody>
          <a:bodyPr%s/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(name), s.X, s.Y, s.W, s.H, bodyAttrs, paragraphsXML.String())
}

func writeParagraphXML(p *Paragraph) string {
	algn := ""
	if p.Align != "" {
		algn = fmt.Sprintf(` algn="%s"`, p.Align)
	}

	var runsXML strings.Builder
	for i := range p.Runs {
		runsXML.WriteString(writeRunXML(&p.Runs[i]))
	}

	return fmt.Sprintf(`          <a:p>
            <a:pPr%s/>
%s          </a:p>
`, algn, runsXML.String())
}

func writeRunXML(r *Run) string {
	attrs := ` lang="en-US" dirty="0"`
	if r.SizePt > 0 {
		attrs = fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, fontSize(r.SizePt))
	}
	if r.Bold {
		attrs += ` b="1"`
	}
	if r.Italic {
		attrs += ` i="1"`
	}

	props := ""
	if r.Color != "" {
		props += fmt.Sprintf(`
              <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.Color)
	}
	if r.Font != "" {
		props += fmt.Sprintf(`
              <a:latin typeface="%s"/>`, xmlEscape(r.Font))
	}

	return fmt.Sprintf(`            <a:r>
              <a:rPr%s>%s
              </a:rPr>
              <a:t>%s</a:t>
            </a:r>
`, attrs, props, xmlEscape(r.Text))
}

// --- Auto shape ---

func writeFillXML(f *Fill) string {
	if f == nil {
		return ""
	}
	if f.AlphaPct > 0 && f.AlphaPct < 100 {
		return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"><a:alpha val=\"%d\"/></a:srgbClr></a:solidFill>\n",
			f.Color, alphaVal(f.AlphaPct))
	}
	return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", f.Color)
}

func writeBorderXML(b *Border) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
		lineWidthEMU(b.WidthPt), b.Color)
}

func writeAutoShapeXML(s *AutoShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Shape %d", id)
	}

	preset := s.Preset
	if preset == "" {
		preset = "rect"
	}

	fillXML := writeFillXML(s.Fill)
	borderXML := writeBorderXML(s.Border)

	textXML := ""
	if len(s.Paragraphs) > 0 {
		bodyAttrs := ""
		if s.Anchor != "" {
			bodyAttrs = fmt.Sprintf(` anchor="%s"`, s.Anchor)
		}
		var paragraphsXML strings.Builder
		for i := range s.Paragraphs {
			paragraphsXML.WriteString(writeParagraphXML(&s.Paragraphs[i]))
		}
		textXML = fmt.Sprintf(`
        <p:txBody>
          <a:bodyPr%s/>
          <a:lstStyle/>
%s        </p:txBody>`, bodyAttrs, paragraphsXML.String())
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>%s
      </p:sp>
`, id, xmlEscape(name), s.X, s.Y, s.W, s.H, preset, fillXML, borderXML, textXML)
}

// --- Line ---

func writeLineXML(s *Line, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Line %d", id)
	}

	return fmt.Sprintf(`      <p:cxnSp>
        <p:nvCxnSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvCxnSpPr/>
          <p:nvPr/>
        </p:nvCxnSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="line">
            <a:avLst/>
          </a:prstGeom>
          <a:ln w="%d">
            <a:solidFill>
              <a:srgbClr val="%s"/>
            </a:solidFill>
          </a:ln>
        </p:spPr>
      </p:cxnSp>
`, id, xmlEscape(name), s.X, s.Y, s.W, s.H, lineWidthEMU(s.WidthPt), s.Color)
}

// --- Picture ---

func writePictureXML(s *Picture, shapeID *int, relID string) string {
	id := *shapeID
	*shapeID++

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Picture %d", id)
	}

	return fmt.Sprintf(`      <p:pic>
        <p:nvPicPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvPicPr>
            <a:picLocks noChangeAspect="1"/>
          </p:cNvPicPr>
          <p:nvPr/>
        </p:nvPicPr>
        <p:blipFill>
          <a:blip r:embed="%s"/>
          <a:stretch>
            <a:fillRect/>
          </a:stretch>
        </p:blipFill>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
        </p:spPr>
      </p:pic>
`, id, xmlEscape(name), relID, s.X, s.Y, s.W, s.H)
}

// --- Table ---

func writeTableXML(s *Table, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Table %d", id)
	}

	numRows := len(s.Rows)
	numCols := 0
	if numRows > 0 {
		numCols = len(s.Rows[0])
	}

	colWidth := int64(0)
	if numCols > 0 {
		colWidth = s.W / int64(numCols)
	}
	rowHeight := int64(0)
	if numRows > 0 {
		rowHeight = s.H / int64(numRows)
	}

	var gridCols strings.Builder
	for i := 0; i < numCols; i++ {
		fmt.Fprintf(&gridCols, "            <a:gridCol w=\"%d\"/>\n", colWidth)
	}

	var rowsXML strings.Builder
	for i := 0; i < numRows; i++ {
		fmt.Fprintf(&rowsXML, "            <a:tr h=\"%d\">\n", rowHeight)
		for j := 0; j < numCols; j++ {
			var cell TableCell
			if j < len(s.Rows[i]) {
				cell = s.Rows[i][j]
			}

			attrs := ` lang="en-US" dirty="0"`
			if cell.SizePt > 0 {
				attrs = fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, fontSize(cell.SizePt))
			}
			if cell.Bold {
				attrs += ` b="1"`
			}
			colorXML := ""
			if cell.Color != "" {
				colorXML = fmt.Sprintf(`
                      <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, cell.Color)
			}

			cellFill := ""
			if cell.Fill != "" {
				cellFill = fmt.Sprintf(`
                  <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, cell.Fill)
			}

			fmt.Fprintf(&rowsXML, `              <a:tc>
                <a:txBody>
                  <a:bodyPr/>
                  <a:lstStyle/>
                  <a:p>
                    <a:r>
                      <a:rPr%s>%s
                      </a:rPr>
                      <a:t>%s</a:t>
                    </a:r>
                  </a:p>
                </a:txBody>
                <a:tcPr>%s
                </a:tcPr>
              </a:tc>
`, attrs, colorXML, xmlEscape(cell.Text), cellFill)
		}
		rowsXML.WriteString("            </a:tr>\n")
	}

	return fmt.Sprintf(`      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGraphicFramePr>
            <a:graphicFrameLocks noGrp="1"/>
          </p:cNvGraphicFramePr>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="%d" y="%d"/>
          <a:ext cx="%d" cy="%d"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">
            <a:tbl>
              <a:tblPr firstRow="1" bandRow="1"/>
              <a:tblGrid>
%s              </a:tblGrid>
%s            </a:tbl>
          </a:graphicData>
        </a:graphic>
      </p:graphicFrame>
`, id, xmlEscape(name), s.X, s.Y, s.W, s.H, gridCols.String(), rowsXML.String())
}

// --- Chart frame ---

func writeChartFrameXML(s *Chart, shapeID *int, relID string) string {
	id := *shapeID
	*shapeID++

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Chart %d", id)
	}

	return fmt.Sprintf(`      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGraphicFramePr>
            <a:graphicFrameLocks noGrp="1"/>
          </p:cNvGraphicFramePr>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="%d" y="%d"/>
          <a:ext cx="%d" cy="%d"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="%s">
            <c:chart xmlns:c="%s" r:id="%s"/>
          </a:graphicData>
        </a:graphic>
      </p:graphicFrame>
`, id, xmlEscape(name), s.X, s.Y, s.W, s.H, nsChart, nsChart, relID)
}
