package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campusplan/backend/internal/repository"
)

// ── export module business errors ──

var (
	ErrExportNoConstraints = errors.New("there are no constraints to export")
	ErrExportGenerateFail  = errors.New("generating the Excel file failed")
)

// ExportService renders admin data as downloadable files.
//
// The export is returned as a bytes.Buffer; the handler layer sets the
// HTTP headers and streams it out.
type ExportService interface {
	// ExportConstraints renders all scheduler constraints as an .xlsx
	// workbook, one row per rule in id order.
	ExportConstraints(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var exportHeaders = []string{"ID", "Name", "Scope", "Target", "Category", "Rule", "Valid From", "Valid To", "Enabled"}

func (s *exportService) ExportConstraints(ctx context.Context) (*bytes.Buffer, string, error) {
	constraints, err := s.repo.Constraint.List(ctx)
	if err != nil {
		s.logger.Error("list constraints failed", zap.Error(err))
		return nil, "", err
	}
	if len(constraints) == 0 {
		return nil, "", ErrExportNoConstraints
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Constraints"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		s.logger.Error("create header style failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	for col, title := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheet, "A1", endHeader, headerStyle)

	for row, c := range constraints {
		validFrom, validTo := "", ""
		if c.ValidFrom != nil {
			validFrom = c.ValidFrom.Format("2006-01-02")
		}
		if c.ValidTo != nil {
			validTo = c.ValidTo.Format("2006-01-02")
		}
		enabled := "No"
		if c.IsEnabled {
			enabled = "Yes"
		}
		values := []interface{}{c.ID, c.Name, c.Scope, c.TargetID, c.Category, c.RuleText, validFrom, validTo, enabled}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the name and rule text columns for readability.
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "F", "F", 70)
	f.SetColWidth(sheet, "C", "E", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("scheduler-constraints-%s.xlsx", time.Now().Format("2006-01-02"))
	return &buf, filename, nil
}
