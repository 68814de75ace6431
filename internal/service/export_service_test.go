package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campusplan/backend/internal/model"
	"campusplan/backend/internal/repository"
)

func setupTestExportService() (ExportService, *mockConstraintRepo) {
	constraintRepo := newMockConstraintRepo()
	repo := &repository.Repository{Constraint: constraintRepo}
	return NewExportService(repo, zap.NewNop()), constraintRepo
}

func TestExportService_ExportConstraints(t *testing.T) {
	svc, constraints := setupTestExportService()
	ctx := context.Background()

	validFrom := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	constraints.Create(ctx, &model.SchedulerConstraint{
		Name:      "Winter semester dates",
		Scope:     "University",
		TargetID:  "0",
		Category:  "Academic Calendar",
		RuleText:  "Winter Semester 2026 starts on 2026-10-01 and ends on [Date].",
		ValidFrom: &validFrom,
		IsEnabled: true,
	})
	constraints.Create(ctx, &model.SchedulerConstraint{
		Name:     "No Friday teaching",
		Scope:    "Lecturer",
		TargetID: "1",
		Category: "Unavailable Days",
		RuleText: `Lecturer "Ada Lovelace" is unavailable on Fridays.`,
	})

	buf, filename, err := svc.ExportConstraints(ctx)
	if err != nil {
		t.Fatalf("ExportConstraints failed: %v", err)
	}
	if !strings.HasPrefix(filename, "scheduler-constraints-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename: %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("exported workbook does not open: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Constraints", "A1"); got != "ID" {
		t.Errorf("expected header ID in A1, got %q", got)
	}
	if got, _ := f.GetCellValue("Constraints", "B2"); got != "Winter semester dates" {
		t.Errorf("unexpected B2: %q", got)
	}
	if got, _ := f.GetCellValue("Constraints", "G2"); got != "2026-10-01" {
		t.Errorf("unexpected valid-from cell: %q", got)
	}
	if got, _ := f.GetCellValue("Constraints", "I3"); got != "No" {
		t.Errorf("expected disabled flag No, got %q", got)
	}
}

func TestExportService_ExportConstraints_Empty(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportConstraints(context.Background())
	if !errors.Is(err, ErrExportNoConstraints) {
		t.Errorf("expected ErrExportNoConstraints, got %v", err)
	}
}
