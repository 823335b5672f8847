package util

import (
	"strings"
	"testing"

	appModels "redadmin/internal/models"
)

func TestRenderTrend_Empty(t *testing.T) {
	out := RenderTrend("Объем", nil)
	if out != "Объем: нет данных" {
		t.Fatalf("unexpected empty render: %q", out)
	}
}

func TestRenderTrend_AscendingSpansLevels(t *testing.T) {
	points := []appModels.TrendPoint{
		{Date: "2026-03-01", Value: 0},
		{Date: "2026-03-02", Value: 50},
		{Date: "2026-03-03", Value: 100},
	}

	out := RenderTrend("Объем", points)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Fatalf("expected lowest and highest bars: %q", out)
	}
	if !strings.Contains(out, "2026-03-01") || !strings.Contains(out, "2026-03-03") {
		t.Fatalf("date range missing: %q", out)
	}
}

func TestRenderTrend_NegativeValues(t *testing.T) {
	points := []appModels.TrendPoint{
		{Date: "2026-03-01", Value: 10},
		{Date: "2026-03-02", Value: -5},
	}

	out := RenderTrend("Чистый оборот", points)
	if !strings.Contains(out, "█") || !strings.Contains(out, "▁") {
		t.Fatalf("mixed-sign trend must still span the bar set: %q", out)
	}
}

func TestRenderTrend_AllNegative(t *testing.T) {
	points := []appModels.TrendPoint{
		{Date: "2026-03-01", Value: -30},
		{Date: "2026-03-02", Value: -10},
		{Date: "2026-03-03", Value: -20},
	}

	out := RenderTrend("Чистый оборот", points)
	bars := strings.Count(out, "▁") + strings.Count(out, "▂") + strings.Count(out, "▃") +
		strings.Count(out, "▄") + strings.Count(out, "▅") + strings.Count(out, "▆") +
		strings.Count(out, "▇") + strings.Count(out, "█")
	if bars != len(points) {
		t.Fatalf("expected %d bars, got %d: %q", len(points), bars, out)
	}
}

func TestRenderTrend_FlatLine(t *testing.T) {
	points := []appModels.TrendPoint{
		{Date: "2026-03-01", Value: 7},
		{Date: "2026-03-02", Value: 7},
	}

	out := RenderTrend("Объем", points)
	if !strings.Contains(out, "▁▁") {
		t.Fatalf("flat trend must render the base level: %q", out)
	}
}
