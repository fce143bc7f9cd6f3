package manager

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"menuboard/internal/catalog"
	"menuboard/internal/label"
	"menuboard/internal/nutrition"
)

const exportSheet = "Menu"

// Export streams the current catalog snapshot as an xlsx workbook: one
// row per item with the cleaned name, extracted quantity, category
// label, and the nutrition columns in canonical order.
func (ctrl *Controller) Export(c *gin.Context) {
	if err := ctrl.refresh(c.Request.Context()); err != nil {
		redirectAlert(c, userMessage(err))
		return
	}

	f, err := buildWorkbook(ctrl.cache.Items())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="menu.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func buildWorkbook(items []catalog.MenuItem) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}

	header := []any{"Item", "Quantity", "Category"}
	for _, field := range nutrition.Fields {
		header = append(header, field.Label)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, item := range items {
		extracted := label.Extract(label.ManagerRules, item.Item, item.Category)

		row := []any{
			extracted.Name,
			extracted.Quantity,
			catalog.FormatCategoryName(item.Category),
		}
		for _, field := range nutrition.Fields {
			value, _ := item.Nutrient(field.Key)
			row = append(row, value)
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
