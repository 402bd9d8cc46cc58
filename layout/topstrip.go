package layout

// TopStrip computes the window bounds for top-strip mode inside area.
// The result is fully derived from the font size and top offset and is always
// contained in area.
func TopStrip(area Rect, fontSizePx, topOffsetPx int) Rect {
	width := clamp(round(float64(area.Width)*StripWidthRatio),
		min(StripMinWidth, area.Width), min(StripMaxWidth, area.Width))

	promptHeight := clamp(round(float64(fontSizePx)*PromptLineFactor), PromptMinHeight, PromptMaxHeight)
	height := clamp(promptHeight+ControlStripHeight, StripMinHeight, StripMaxHeight)
	height = min(height, area.Height)

	x := area.X + round(float64(area.Width-width)/2)
	y := clamp(area.Y+topOffsetPx, area.Y, area.Bottom()-height)

	return Rect{X: x, Y: y, Width: width, Height: height}
}
