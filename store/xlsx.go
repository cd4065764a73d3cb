package store

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// 金额所在列（1 起）
const xlsxAmountColumn = 4

var xlsxBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// sheetName 工作表名最长 31 个字符，且不能包含 : \ / ? * [ ]
func sheetName(tab string) string {
	r := []rune(tab)
	out := make([]rune, 0, len(r))
	for _, c := range r {
		switch c {
		case ':', '\\', '/', '?', '*', '[', ']':
			c = '_'
		}
		out = append(out, c)
	}
	if len(out) > 31 {
		out = out[:31]
	}
	if len(out) == 0 {
		return "Sheet1"
	}
	return string(out)
}

// ExportXLSX 将标签页导出为 Excel，列与 CSV 相同，末尾附合计行。
// 标签页为空或不存在时返回 false。
func (s *Store) ExportXLSX(tab string, w io.Writer) (bool, error) {
	assets := s.GetAssetsByTab(tab)
	if len(assets) == 0 {
		return false, nil
	}
	total := s.TotalAmount(tab)

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(tab)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    xlsxBorder,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    xlsxBorder,
	})
	amountStyle, _ := f.NewStyle(&excelize.Style{
		NumFmt:    3, // #,##0
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    xlsxBorder,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    xlsxBorder,
		NumFmt:    3,
	})

	widths := []float64{14, 14, 24, 16, 14, 10, 30}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, width)
	}

	for i, header := range CSVHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, a := range assets {
		row := i + 2
		values := csvRow(a)
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(CSVHeader), row)
		_ = f.SetCellStyle(sheet, first, last, dataStyle)

		amountCell, _ := excelize.CoordinatesToCellName(xlsxAmountColumn, row)
		if v, ok := a.Amount.Int64(); ok {
			_ = f.SetCellValue(sheet, amountCell, v)
		}
		_ = f.SetCellStyle(sheet, amountCell, amountCell, amountStyle)
	}

	summaryRow := len(assets) + 2
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "합계")
	_ = f.MergeCell(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), total)
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("총 %d건", len(assets)))
	_ = f.MergeCell(sheet, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	if err := f.Write(w); err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.log.WithFields(logrus.Fields{"tab": tab, "count": len(assets)}).Info("Excel 내보내기 완료")
	return true, nil
}
