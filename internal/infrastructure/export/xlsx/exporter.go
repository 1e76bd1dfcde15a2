package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
)

const (
	SummarySheet = "요약"
	maxSheetName = 31
)

var recordHeader = []any{"서비스명", "소관기관", "지원유형", "서비스분야", "신청기한", "문의", "상세URL"}

type Exporter struct {
	storage ports.ObjectStorage
	key     string
}

var _ ports.DigestExporter = (*Exporter)(nil)

func New(storage ports.ObjectStorage, key string) *Exporter {
	return &Exporter{storage: storage, key: key}
}

func (e *Exporter) Export(ctx context.Context, digest domain.Digest) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return "", fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &[]any{"분야", "건수"}); err != nil {
		return "", fmt.Errorf("write summary header: %w", err)
	}

	row := 2
	for _, s := range digest.Sections {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SummarySheet, cell, &[]any{s.Category.Name, s.Total()}); err != nil {
			return "", fmt.Errorf("write summary row: %w", err)
		}
		row++
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(SummarySheet, cell, &[]any{"합계", digest.Total()}); err != nil {
		return "", fmt.Errorf("write summary total: %w", err)
	}

	for _, s := range digest.Sections {
		if s.Total() == 0 {
			continue
		}
		if err := writeSection(f, s); err != nil {
			return "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("encode workbook: %w", err)
	}
	if err := e.storage.Save(ctx, e.key, buf); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return e.storage.Path(e.key), nil
}

func writeSection(f *excelize.File, s domain.Section) error {
	sheet := SheetName(s.Category.Name)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &recordHeader); err != nil {
		return fmt.Errorf("write header %q: %w", sheet, err)
	}
	for i, rec := range s.Items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			rec.Get(domain.FieldName),
			rec.Get(domain.FieldOrgName),
			rec.Get(domain.FieldSupportType),
			rec.Get(domain.FieldServiceField),
			rec.Get(domain.FieldPeriod),
			rec.Get(domain.FieldPhone),
			rec.Get(domain.FieldDetailURL),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %q: %w", sheet, err)
		}
	}
	return nil
}

// SheetName replaces characters Excel rejects in sheet names and trims to
// the 31 character limit.
func SheetName(name string) string {
	name = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_").Replace(name)
	runes := []rune(name)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}
