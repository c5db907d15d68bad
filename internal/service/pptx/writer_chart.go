package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

// Bar series fill colors cycle through the standard Office accents.
var chartSeriesColors = []string{"4472C4", "ED7D31", "A5A5A5", "FFC000", "5B9BD5", "70AD47"}

// writeChartPart emits one clustered bar chart part with its embedded
// category and value caches.
func (w *writer) writeChartPart(zw *zip.Writer, ch *Chart, chartIdx int) error {
	var series strings.Builder
	for si, s := range ch.Series {
		color := chartSeriesColors[si%len(chartSeriesColors)]

		var cats strings.Builder
		for ci, cat := range ch.Categories {
			fmt.Fprintf(&cats, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, ci, xmlEscape(cat))
		}

		var vals strings.Builder
		for vi, v := range s.Values {
			fmt.Fprintf(&vals, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, vi, v)
		}

		fmt.Fprintf(&series, `<c:ser>
      <c:idx val="%d"/>
      <c:order val="%d"/>
      <c:tx><c:strRef><c:f></c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>
      <c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr>
      <c:cat><c:strRef><c:f></c:f><c:strCache><c:ptCount val="%d"/>%s</c:strCache></c:strRef></c:cat>
      <c:val><c:numRef><c:f></c:f><c:numCache><c:formatCode>General</c:formatCode><c:ptCount val="%d"/>%s</c:numCache></c:numRef></c:val>
    </c:ser>
`, si, si, xmlEscape(s.Name), color, len(ch.Categories), cats.String(), len(s.Values), vals.String())
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="%s" xmlns:a="%s" xmlns:r="%s">
  <c:chart>
    <c:plotArea>
      <c:layout/>
      <c:barChart>
        <c:barDir val="col"/>
        <c:grouping val="clustered"/>
        <c:varyColors val="0"/>
%s        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:barChart>
      <c:catAx>
        <c:axId val="1"/>
        <c:scaling><c:orientation val="minMax"/></c:scaling>
        <c:delete val="0"/>
        <c:axPos val="b"/>
        <c:crossAx val="2"/>
      </c:catAx>
      <c:valAx>
        <c:axId val="2"/>
        <c:scaling><c:orientation val="minMax"/></c:scaling>
        <c:delete val="0"/>
        <c:axPos val="l"/>
        <c:crossAx val="1"/>
      </c:valAx>
    </c:plotArea>
    <c:legend>
      <c:legendPos val="b"/>
    </c:legend>
    <c:plotVisOnly val="1"/>
  </c:chart>
</c:chartSpace>`, nsChart, nsDrawingML, nsOfficeDocRels, series.String())

	return writeRawToZip(zw, fmt.Sprintf("ppt/charts/chart%d.xml", chartIdx), content)
}
