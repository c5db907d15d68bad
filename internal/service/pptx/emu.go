package pptx

// English Metric Units, the coordinate space of OOXML drawings.
const (
	EMUPerInch = 914400

	// 16:9 slide surface, 13.333in by 7.5in.
	SlideWidthEMU  = 12192000
	SlideHeightEMU = 6858000

	SlideWidthInches  = 13.333
	SlideHeightInches = 7.5
)

// Inches converts inches to EMU.
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}

// lineWidthEMU converts a line width in points to EMU.
func lineWidthEMU(pt float64) int64 {
	return int64(pt * 12700)
}

// fontSize converts points to the hundredths used by rPr sz attributes.
func fontSize(pt float64) int {
	return int(pt * 100)
}

// alphaVal converts an opacity percentage to the thousandths used by
// a:alpha val attributes.
func alphaVal(pct float64) int {
	return int(pct * 1000)
}
