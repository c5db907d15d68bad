package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"
	nsChart          = "http://schemas.openxmlformats.org/drawingml/2006/chart"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeImage       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeChart       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctChart        = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
)

// writer serializes one Presentation into the PPTX zip container.
type writer struct {
	presentation *Presentation
}

func (w *writer) writeTo(out io.Writer) error {
	if w.presentation == nil {
		return fmt.Errorf("presentation is nil")
	}

	zw := zip.NewWriter(out)

	if err := w.writeContentTypes(zw); err != nil {
		return err
	}
	if err := w.writeRootRels(zw); err != nil {
		return err
	}
	if err := w.writeCoreProperties(zw); err != nil {
		return err
	}
	if err := w.writeAppProperties(zw); err != nil {
		return err
	}
	if err := w.writePresentation(zw); err != nil {
		return err
	}
	if err := w.writePresentationRels(zw); err != nil {
		return err
	}
	if err := w.writePresProps(zw); err != nil {
		return err
	}
	if err := w.writeViewProps(zw); err != nil {
		return err
	}
	if err := w.writeTableStyles(zw); err != nil {
		return err
	}
	if err := w.writeSlideMaster(zw); err != nil {
		return err
	}
	if err := w.writeSlideLayout(zw); err != nil {
		return err
	}
	if err := w.writeTheme(zw); err != nil {
		return err
	}

	for i, canvas := range w.presentation.slides {
		if err := w.writeSlide(zw, canvas, i+1); err != nil {
			return err
		}
		if err := w.writeSlideRels(zw, canvas, i+1); err != nil {
			return err
		}
	}

	if err := w.writeMedia(zw); err != nil {
		return err
	}

	chartIdx := 1
	for _, canvas := range w.presentation.slides {
		for _, shape := range canvas.shapes {
			if ch, ok := shape.(*Chart); ok {
				if err := w.writeChartPart(zw, ch, chartIdx); err != nil {
					return err
				}
				chartIdx++
			}
		}
	}

	return zw.Close()
}

func writeRawToZip(zw *zip.Writer, path, content string) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("create %s in zip: %w", path, err)
	}
	_, err = fw.Write([]byte(content))
	return err
}

// xmlEscape escapes special XML characters using the standard library.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

// --- Content types ---

func (w *writer) writeContentTypes(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<Types xmlns="%s">`, nsContentTypes)
	fmt.Fprintf(&b, `<Default Extension="rels" ContentType="%s"/>`, ctRels)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)

	for _, ext := range w.imageExtensions() {
		fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, ext, imageContentType(ext))
	}

	fmt.Fprintf(&b, `<Override PartName="/ppt/presentation.xml" ContentType="%s"/>`, ctPresentation)
	fmt.Fprintf(&b, `<Override PartName="/ppt/presProps.xml" ContentType="%s"/>`, ctPresProps)
	fmt.Fprintf(&b, `<Override PartName="/ppt/viewProps.xml" ContentType="%s"/>`, ctViewProps)
	fmt.Fprintf(&b, `<Override PartName="/ppt/tableStyles.xml" ContentType="%s"/>`, ctTableStyles)
	fmt.Fprintf(&b, `<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="%s"/>`, ctSlideMaster)
	fmt.Fprintf(&b, `<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="%s"/>`, ctSlideLayout)
	fmt.Fprintf(&b, `<Override PartName="/ppt/theme/theme1.xml" ContentType="%s"/>`, ctTheme)
	fmt.Fprintf(&b, `<Override PartName="/docProps/core.xml" ContentType="%s"/>`, ctCoreProps)
	fmt.Fprintf(&b, `<Override PartName="/docProps/app.xml" ContentType="%s"/>`, ctExtProps)

	for i := range w.presentation.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`, i+1, ctSlide)
	}

	chartIdx := 1
	for _, canvas := range w.presentation.slides {
		for _, shape := range canvas.shapes {
			if _, ok := shape.(*Chart); ok {
				fmt.Fprintf(&b, `<Override PartName="/ppt/charts/chart%d.xml" ContentType="%s"/>`, chartIdx, ctChart)
				chartIdx++
			}
		}
	}

	b.WriteString(`</Types>`)
	return writeRawToZip(zw, "[Content_Types].xml", b.String())
}

// imageExtensions lists the distinct image extensions used in the deck.
func (w *writer) imageExtensions() []string {
	seen := map[string]bool{}
	var exts []string
	for _, canvas := range w.presentation.slides {
		for _, shape := range canvas.shapes {
			if pic, ok := shape.(*Picture); ok {
				ext := imageExtension(pic.Format)
				if !seen[ext] {
					seen[ext] = true
					exts = append(exts, ext)
				}
			}
		}
	}
	return exts
}

func imageExtension(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "jpeg"
	case "gif":
		return "gif"
	case "bmp":
		return "bmp"
	case "webp":
		return "webp"
	default:
		return "png"
	}
}

func imageContentType(ext string) string {
	switch ext {
	case "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// --- Package relationships ---

func (w *writer) writeRootRels(zw *zip.Writer) error {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		fmt.Sprintf(`<Relationships xmlns="%s">`, nsRelationships) +
		fmt.Sprintf(`<Relationship Id="rId1" Type="%s" Target="ppt/presentation.xml"/>`, relTypeOfficeDoc) +
		fmt.Sprintf(`<Relationship Id="rId2" Type="%s" Target="docProps/core.xml"/>`, relTypeCoreProps) +
		fmt.Sprintf(`<Relationship Id="rId3" Type="%s" Target="docProps/app.xml"/>`, relTypeExtProps) +
		`</Relationships>`
	return writeRawToZip(zw, "_rels/.rels", content)
}

func (w *writer) writePresentationRels(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsRelationships)

	relIdx := 1
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relIdx, relTypeSlideMaster)
	relIdx++

	for i := range w.presentation.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, relIdx, relTypeSlide, i+1)
		relIdx++
	}

	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="presProps.xml"/>`, relIdx, relTypePresProps)
	relIdx++
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="viewProps.xml"/>`, relIdx, relTypeViewProps)
	relIdx++
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="tableStyles.xml"/>`, relIdx, relTypeTableStyles)
	relIdx++
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="theme/theme1.xml"/>`, relIdx, relTypeTheme)

	b.WriteString(`</Relationships>`)
	return writeRawToZip(zw, "ppt/_rels/presentation.xml.rels", b.String())
}

// --- Slide relationships ---

// slideRelIDs assigns relationship IDs to picture and chart shapes of
// one canvas, in shape order. rId1 is always the slide layout.
func slideRelIDs(canvas *Canvas) map[Shape]string {
	m := make(map[Shape]string)
	relIdx := 2
	for _, shape := range canvas.shapes {
		switch shape.(type) {
		case *Picture, *Chart:
			m[shape] = fmt.Sprintf("rId%d", relIdx)
			relIdx++
		}
	}
	return m
}

func (w *writer) writeSlideRels(zw *zip.Writer, canvas *Canvas, slideNum int) error {
	relIDs := slideRelIDs(canvas)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsRelationships)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relTypeSlideLayout)

	for _, shape := range canvas.shapes {
		switch s := shape.(type) {
		case *Picture:
			imgIdx := w.imageIndex(s)
			fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="../media/image%d.%s"/>`,
				relIDs[shape], relTypeImage, imgIdx, imageExtension(s.Format))
		case *Chart:
			fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="../charts/chart%d.xml"/>`,
				relIDs[shape], relTypeChart, w.chartIndex(s))
		}
	}

	b.WriteString(`</Relationships>`)
	return writeRawToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), b.String())
}

// imageIndex numbers pictures across the whole deck in slide order.
func (w *writer) imageIndex(target *Picture) int {
	idx := 1
	for _, canvas := range w.presentation.slides {
		for _, shape := range canvas.shapes {
			if pic, ok := shape.(*Picture); ok {
				if pic == target {
					return idx
				}
				idx++
			}
		}
	}
	return idx
}

func (w *writer) chartIndex(target *Chart) int {
	idx := 1
	for _, canvas := range w.presentation.slides {
		for _, shape := range canvas.shapes {
			if ch, ok := shape.(*Chart); ok {
				if ch == target {
					return idx
				}
				idx++
			}
		}
	}
	return idx
}

// --- Media ---

func (w *writer) writeMedia(zw *zip.Writer) error {
	imgIdx := 1
	for _, canvas := range w.presentation.slides {
		for _, shape := range canvas.shapes {
			pic, ok := shape.(*Picture)
			if !ok {
				continue
			}
			path := fmt.Sprintf("ppt/media/image%d.%s", imgIdx, imageExtension(pic.Format))
			fw, err := zw.Create(path)
			if err != nil {
				return err
			}
			if _, err := fw.Write(pic.Data); err != nil {
				return err
			}
			imgIdx++
		}
	}
	return nil
}
