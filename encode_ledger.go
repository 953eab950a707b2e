package wealth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/wealth/date"
	"github.com/rs/zerolog/log"
)

// Ledger file columns. Each accepts the English name and the names of the original spreadsheet.
const (
	colDate        = "date"
	colInstitution = "institution"
	colAmount      = "amount"
)

var headerAliases = map[string]string{
	"date":        colDate,
	"data":        colDate,
	"institution": colInstitution,
	"instituição": colInstitution,
	"instituicao": colInstitution,
	"amount":      colAmount,
	"valor":       colAmount,
}

// ledgerHeader is the header written by EncodeLedger.
var ledgerHeader = []string{"Date", "Institution", "Amount"}

// DecodeLedger decodes a comma separated ledger file from r.
//
// The first line is the header; it must have a Date, an Institution and an Amount column, in
// any order, other columns are ignored. Dates are day/month/year and amounts use a dot as
// decimal separator.
//
// Every malformed line is reported, and no ledger is returned if there is any.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Reported with a line number below.
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedLedger)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrMalformedLedger, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(currency)
	var errs error
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read csv: %w", ErrMalformedLedger, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		entry, err := decodeEntry(record, columns, currency)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		added, err := ledger.Append(entry)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if !added {
			log.Warn().Int("line", line).Str("date", entry.Date.String()).Str("institution", entry.Institution).
				Msg("ignoring repeated balance")
		}
	}
	if errs != nil {
		return nil, errs
	}
	return ledger, nil
}

// mapColumns returns the position of each required column in header.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if col, ok := headerAliases[name]; ok {
			if _, dup := columns[col]; dup {
				return nil, fmt.Errorf("%w: column %q appears twice in header %q", ErrMalformedLedger, col, header)
			}
			columns[col] = i
		}
	}
	var missing []string
	for _, col := range []string{colDate, colInstitution, colAmount} {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s in header %q", ErrMalformedLedger, strings.Join(missing, ", "), header)
	}
	return columns, nil
}

func decodeEntry(record []string, columns map[string]int, currency string) (Entry, error) {
	field := func(col string) (string, error) {
		i := columns[col]
		if i >= len(record) {
			return "", fmt.Errorf("%w: missing %s field", ErrMalformedLedger, col)
		}
		return strings.TrimSpace(record[i]), nil
	}

	var e Entry
	s, err := field(colDate)
	if err != nil {
		return e, err
	}
	if e.Date, err = date.ParseLedger(s); err != nil {
		return e, fmt.Errorf("%w: %w", ErrMalformedLedger, err)
	}

	if e.Institution, err = field(colInstitution); err != nil {
		return e, err
	}

	if s, err = field(colAmount); err != nil {
		return e, err
	}
	if e.Amount, err = ParseMoney(s, currency); err != nil {
		return e, fmt.Errorf("%w: invalid amount %q: %w", ErrMalformedLedger, s, err)
	}
	return e, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// EncodeLedger writes the ledger in its canonical form: sorted by date then institution, with
// dates as day/month/year and amounts with the currency's fraction digits.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for _, e := range l.Entries() {
		if err := cw.Write([]string{e.Date.Format(date.LedgerFormat), e.Institution, e.Amount.Amount()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
