package montecarlo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// percentLocale writes decimals with a comma separator
var percentLocale = language.French

// FormatPercentage renders p with four decimals and a comma decimal separator
func FormatPercentage(p float64) string {
	return message.NewPrinter(percentLocale).Sprintf(PercentageFormat, p)
}

// WriteCSV writes the table as "value;count;percentage" rows sorted by value
func (h *Histogram) WriteCSV(w io.Writer) error {
	printer := message.NewPrinter(percentLocale)
	cw := csv.NewWriter(w)
	cw.Comma = CSVSeparator

	if err := cw.Write([]string{HeaderValue, HeaderCount, HeaderPercentage}); err != nil {
		return fmt.Errorf(ErrMsgWriteCSV, err)
	}
	for _, row := range h.Rows() {
		record := []string{
			strconv.Itoa(row.Value),
			strconv.Itoa(row.Count),
			printer.Sprintf(PercentageFormat, row.Percentage),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf(ErrMsgWriteCSV, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf(ErrMsgWriteCSV, err)
	}
	return nil
}
