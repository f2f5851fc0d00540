package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ledgerdesk/ledgerdesk/internal/books"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

// csvStreamer couples a buffered writer with a csv.Writer so large listings
// flush in chunks. Quoting comes from encoding/csv; ledger and party names
// may embed commas.
type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer}
}

func (s *csvStreamer) writeComment(line string) error {
	if _, err := s.buf.WriteString(line + "\r\n"); err != nil {
		return err
	}
	return nil
}

func (s *csvStreamer) writeRow(row []string) error {
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.pendingLines >= csvFlushEvery {
		return s.flush()
	}
	return nil
}

func (s *csvStreamer) flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

// WriteCSV renders the document as a flat table: metadata comments, one
// header row, one row per entry.
func WriteCSV(w io.Writer, doc Document) error {
	s := newCSVStreamer(w)
	if err := s.writeComment(fmt.Sprintf("# Report: %s", doc.ReportType)); err != nil {
		return err
	}
	if err := s.writeComment(fmt.Sprintf("# Company: %s | Period: %s", doc.CompanyName, doc.Period)); err != nil {
		return err
	}
	if err := writeBody(s, doc); err != nil {
		return err
	}
	return s.flush()
}

func writeBody(s *csvStreamer, doc Document) error {
	r := doc.Summary
	switch {
	case r.TrialBalance != nil:
		tb := r.TrialBalance
		if err := s.writeRow([]string{"Ledger", "Group", "Debit", "Credit"}); err != nil {
			return err
		}
		for _, row := range tb.Rows {
			if err := s.writeRow([]string{row.LedgerName, row.Group, money(row.Debit), money(row.Credit)}); err != nil {
				return err
			}
		}
		totals := [][]string{
			{"Totals", "", money(tb.TotalDebit), money(tb.TotalCredit)},
			{"Balanced", "", strconv.FormatBool(tb.Balanced), ""},
			{"Variance", "", money(tb.Variance), ""},
		}
		return writeRows(s, totals)
	case r.BalanceSheet != nil:
		bs := r.BalanceSheet
		if err := s.writeRow([]string{"Section", "Ledger", "Group", "Balance"}); err != nil {
			return err
		}
		for _, entry := range bs.Assets {
			if err := s.writeRow([]string{"Assets", entry.LedgerName, entry.Group, money(entry.Balance)}); err != nil {
				return err
			}
		}
		for _, entry := range bs.Liabilities {
			if err := s.writeRow([]string{"Liabilities", entry.LedgerName, entry.Group, money(entry.Balance)}); err != nil {
				return err
			}
		}
		totals := [][]string{
			{"Totals", "", "Assets", money(bs.TotalAssets)},
			{"Totals", "", "Liabilities", money(bs.TotalLiabilities)},
			{"Totals", "", "Differential", money(bs.Differential)},
		}
		return writeRows(s, totals)
	case r.ProfitAndLoss != nil:
		pl := r.ProfitAndLoss
		rows := [][]string{
			{"Measure", "Amount"},
			{"Income", money(pl.Income)},
			{"Expenses", money(pl.Expenses)},
			{"Net Profit", money(pl.NetProfit)},
		}
		return writeRows(s, rows)
	case r.CashFlow != nil:
		cf := r.CashFlow
		rows := [][]string{
			{"Measure", "Amount"},
			{"Inflows", money(cf.Inflows)},
			{"Outflows", money(cf.Outflows)},
			{"Net", money(cf.Net)},
			{"State", string(cf.State)},
		}
		return writeRows(s, rows)
	case r.Valuation != nil:
		val := r.Valuation
		if err := s.writeRow([]string{"Item", "Unit", "Qty In", "Qty Out", "Current Qty", "Sale Price", "Value"}); err != nil {
			return err
		}
		for _, row := range val.Rows {
			line := []string{row.ItemName, row.Unit, row.QtyIn.String(), row.QtyOut.String(),
				row.CurrentQty.String(), money(row.SalePrice), money(row.Value)}
			if err := s.writeRow(line); err != nil {
				return err
			}
		}
		return s.writeRow([]string{"Total", "", "", "", "", "", money(val.TotalValue)})
	}

	if r.TaxSummary != nil {
		ts := r.TaxSummary
		rows := [][]string{
			{"Bucket", "Amount"},
			{"Taxable Value", money(ts.TaxableValue)},
			{"CGST", money(ts.CGST)},
			{"SGST", money(ts.SGST)},
			{"IGST", money(ts.IGST)},
			{"ITC Available", money(ts.ITCAvailable)},
			{"ITC CGST", money(ts.ITCCGST)},
			{"ITC SGST", money(ts.ITCSGST)},
			{"ITC IGST", money(ts.ITCIGST)},
			{"Net Payable", money(ts.NetPayable)},
			{"Amount Due", money(ts.AmountDue())},
		}
		if err := writeRows(s, rows); err != nil {
			return err
		}
	}
	if len(doc.HSNSummary) > 0 {
		if err := s.writeRow([]string{"HSN/SAC", "Qty", "Taxable", "Tax"}); err != nil {
			return err
		}
		for _, row := range doc.HSNSummary {
			if err := s.writeRow([]string{row.Code, row.Qty.String(), money(row.Taxable), money(row.Tax)}); err != nil {
				return err
			}
		}
	}
	if len(doc.Vouchers) > 0 {
		if err := s.writeRow([]string{"Voucher", "Date", "Type", "Party", "Supply", "Taxable Value", "Tax", "Amount"}); err != nil {
			return err
		}
		for _, v := range doc.Vouchers {
			if err := s.writeRow(voucherRow(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRows(s *csvStreamer, rows [][]string) error {
	for _, row := range rows {
		if err := s.writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

func voucherRow(v books.Voucher) []string {
	return []string{
		v.ID,
		v.Date.Format("2006-01-02"),
		string(v.Type),
		v.Party,
		string(v.Supply),
		money(v.TaxableValue()),
		money(v.Tax()),
		money(v.Amount),
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
