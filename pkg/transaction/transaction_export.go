package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agrifusion/domain"
	"agrifusion/entities"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{"Date", "Type", "Category", "Amount", "Description"}

func (s *transactionService) ExportTransactions(ctx context.Context, username, format string) (domain.ExportFile, error) {
	if format == "" {
		format = domain.ExportFormatCSV
	}
	if format != domain.ExportFormatCSV && format != domain.ExportFormatXLSX {
		return domain.ExportFile{}, domain.ErrInvalidExportFormat
	}

	if _, err := s.farmerService.GetByUsername(ctx, username); err != nil {
		return domain.ExportFile{}, err
	}
	txs, err := s.transactionRepository.GetTransactionsByUsername(ctx, username)
	if err != nil {
		return domain.ExportFile{}, err
	}

	name := fmt.Sprintf("transactions_%s_%s.%s", username, time.Now().Format("20060102"), format)
	if format == domain.ExportFormatXLSX {
		data, err := writeXLSX(txs)
		if err != nil {
			return domain.ExportFile{}, err
		}
		return domain.ExportFile{Filename: name, ContentType: xlsxContentType, Data: data}, nil
	}

	data, err := writeCSV(txs)
	if err != nil {
		return domain.ExportFile{}, err
	}
	return domain.ExportFile{Filename: name, ContentType: "text/csv; charset=utf-8", Data: data}, nil
}

func exportRow(tx *entities.Transaction) []string {
	return []string{
		tx.Date.Format(time.DateOnly),
		tx.Type,
		csvText(tx.Category),
		strconv.FormatFloat(tx.Amount, 'f', 2, 64),
		csvText(tx.Description),
	}
}

// csvText keeps free text from being read as a formula by spreadsheet apps.
func csvText(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

func writeCSV(txs []*entities.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		if err := w.Write(exportRow(tx)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSX(txs []*entities.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	for i, tx := range txs {
		row := []interface{}{tx.Date.Format(time.DateOnly), tx.Type, tx.Category, tx.Amount, tx.Description}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	sum := Summarize(txs)
	totalsRow := len(txs) + 3
	totals := [][]interface{}{
		{"Total income", sum.TotalIncome},
		{"Total expense", sum.TotalExpense},
		{"Net profit", sum.NetProfit},
	}
	for i, t := range totals {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("C%d", totalsRow+i), &t); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "C", 15)
	_ = f.SetColWidth(sheet, "D", "D", 12)
	_ = f.SetColWidth(sheet, "E", "E", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
