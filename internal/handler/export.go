package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/michellecaii/Mood-tracker/internal/store"
	"github.com/michellecaii/Mood-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves journal downloads with insight columns included.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{Store: s}
}

var exportHeaders = []string{"Date", "Time", "Emotion", "Reflection", "AI Summary", "Themes"}

func (h *ExportHandler) exportRows() ([][]string, error) {
	entries, err := h.Store.GetAllEntries()
	if err != nil {
		return nil, err
	}
	items, err := h.Store.AttachInsights(entries)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		summary, themes := "", ""
		if it.Insights != nil {
			summary = it.Insights.Summary
			themes = strings.Join(it.Insights.Themes, ", ")
		}
		rows = append(rows, []string{
			it.Date,
			it.CreatedAt.Format("15:04"),
			it.Emotion,
			it.Reflection,
			summary,
			themes,
		})
	}
	return rows, nil
}

// ExportCSV downloads every entry as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, err := h.exportRows()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"journal_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so Excel opens it cleanly
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write(row)
	}
}

// ExportXLSX downloads every entry as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	rows, err := h.exportRows()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	f := excelize.NewFile()
	sheetName := "Journal"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}
	f.SetActiveSheet(index)

	for i, head := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, row := range rows {
		for col, val := range row {
			cell := fmt.Sprintf("%c%d", 'A'+col, idx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 50)
	f.SetColWidth(sheetName, "E", "E", 50)
	f.SetColWidth(sheetName, "F", "F", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"journal_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
