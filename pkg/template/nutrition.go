// pkg/template/nutrition.go
package template

import "printer-service/pkg/zpl"

// NutritionFact is one row of the facts table.
type NutritionFact struct {
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	DailyValue string `json:"daily_value"`
}

// NutritionData drives the nutrition facts label layout.
type NutritionData struct {
	ProductName string          `json:"product_name"`
	ServingSize string          `json:"serving_size"`
	Servings    string          `json:"servings"`
	Calories    string          `json:"calories"`
	Facts       []NutritionFact `json:"facts"`
	Footnote    string          `json:"footnote"`
	WidthDots   int             `json:"width_dots"`
	HeightDots  int             `json:"height_dots"`
}

// NutritionLabel renders a multi-section nutrition facts panel: framed title
// bar, serving section, calories band, fact rows with daily values, and a
// wrapped footnote block.
func NutritionLabel(data NutritionData) []byte {
	width := data.WidthDots
	if width <= 0 {
		width = 609 // 3 inch at 203 dpi
	}
	height := data.HeightDots
	if height <= 0 {
		height = 812
	}

	e := zpl.NewEncoder().
		StartFormat().
		LabelHome(0, 0).
		LabelWidth(width).
		LabelLength(height)

	e.Comment("nutrition facts panel")

	// Outer frame.
	e.GraphicBox(20, 20, width-40, height-40, 3, zpl.ColorBlack, 0)

	// Title section.
	e.Text(40, 40, "0", 48, "Nutrition Facts", 48)
	e.HorizontalLine(30, 100, width-60, 8)

	// Serving section.
	e.Text(40, 120, "0", 26, data.ProductName, 26)
	e.Text(40, 155, "0", 24, "Serving size "+data.ServingSize, 24)
	if data.Servings != "" {
		e.Text(40, 185, "0", 24, data.Servings+" servings per container", 24)
	}
	e.HorizontalLine(30, 220, width-60, 12)

	// Calories band.
	e.Text(40, 245, "0", 36, "Calories", 36)
	e.Text(width-160, 245, "0", 36, data.Calories, 36)
	e.HorizontalLine(30, 295, width-60, 6)

	// Fact rows.
	y := 315
	for _, fact := range data.Facts {
		e.Text(40, y, "0", 24, fact.Name+" "+fact.Amount, 24)
		if fact.DailyValue != "" {
			e.Text(width-140, y, "0", 24, fact.DailyValue, 24)
		}
		y += 32
		e.HorizontalLine(30, y, width-60, 2)
		y += 8
	}

	// Footnote block, wrapped.
	if data.Footnote != "" {
		e.HorizontalLine(30, y, width-60, 6)
		y += 20
		e.TextBlock(40, y, "0", 20, width-80, 4, 2, zpl.AlignLeft, data.Footnote)
	}

	return e.PrintQuantity(1, 0, 0).EndFormat().Bytes()
}
