package util

import (
	"fmt"
	"strings"

	appModels "redadmin/internal/models"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderTrend draws a trend as a unicode sparkline with the date range and
// the peak value underneath.
func RenderTrend(title string, points []appModels.TrendPoint) string {
	if len(points) == 0 {
		return title + ": нет данных"
	}

	min, max := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
		if p.Value < min {
			min = p.Value
		}
	}

	// levels are normalized over the min..max span, so an all-negative or
	// mixed-sign trend still lands inside the rune set
	span := max - min
	var bars strings.Builder
	for _, p := range points {
		level := 0
		if span > 0 {
			level = int((p.Value - min) / span * float64(len(sparkLevels)-1))
		}
		if level < 0 {
			level = 0
		}
		if level > len(sparkLevels)-1 {
			level = len(sparkLevels) - 1
		}
		bars.WriteRune(sparkLevels[level])
	}

	return fmt.Sprintf("%v\n<code>%v</code>\n%v — %v, пик %v",
		title,
		bars.String(),
		points[0].Date,
		points[len(points)-1].Date,
		printer.Sprintf("%.2f", max),
	)
}
