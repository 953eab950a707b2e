package wealth

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDecodeLedger(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name: "english",
			input: `Date,Institution,Amount
05/01/2025,Bank,600
05/01/2025,Broker,400.00
05/02/2025,Bank,700.5
`,
		},
		{
			name: "spreadsheet",
			input: "\ufeffData,Instituição,Valor,Comment\n" +
				"5/1/2025, Bank ,600,salary\n" +
				"05/01/2025,Broker,400,\n" +
				",,,\n" +
				"05/02/2025,Bank,700.50,\n",
		},
		{
			name: "reordered with repeated row",
			input: `valor,data,instituicao
600,05/01/2025,Bank
400,05/01/2025,Broker
700.50,05/02/2025,Bank
600,05/01/2025,Bank
`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := DecodeLedger(strings.NewReader(tc.input), "BRL")
			if err != nil {
				t.Fatalf("DecodeLedger() unexpected error: %v", err)
			}
			if l.Len() != 3 {
				t.Fatalf("DecodeLedger() got %d entries, want 3", l.Len())
			}
			s := l.Wealth()
			if len(s) != 2 || s[0].Amount != 1000 || s[1].Amount != 700.5 {
				t.Errorf("DecodeLedger().Wealth() = %v, want 1000 then 700.5", s)
			}
			if s[0].Date != day(time.January, 5) || s[1].Date != day(time.February, 5) {
				t.Errorf("DecodeLedger() dates = %s, %s, want 2025-01-05, 2025-02-05", s[0].Date, s[1].Date)
			}
		})
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string // substrings of the error message
	}{
		{"empty", "", []string{"empty file"}},
		{"missing column", "Date,Amount\n05/01/2025,100\n", []string{"missing column(s) institution"}},
		{"twice the same column", "Date,Data,Institution,Amount\n", []string{`column "date" appears twice`}},
		{"bad date", "Date,Institution,Amount\n2025-01-05,Bank,100\n", []string{"line 2"}},
		{"bad amount", "Date,Institution,Amount\n05/01/2025,Bank,\"1.000,00\"\n05/01/2025,Broker,abc\n", []string{"line 2", "line 3", `"abc"`}},
		{"missing field", "Date,Institution,Amount\n05/01/2025,Bank\n", []string{"line 2", "missing amount"}},
		{"conflicting balances", "Date,Institution,Amount\n05/01/2025,Bank,100\n05/01/2025,Bank,200\n", []string{"line 3", "conflicting"}},
		{"no institution", "Date,Institution,Amount\n05/01/2025,,100\n", []string{"line 2", "missing institution"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := DecodeLedger(strings.NewReader(tc.input), "BRL")
			if err == nil {
				t.Fatalf("DecodeLedger() = %v, want an error", l)
			}
			if !errors.Is(err, ErrMalformedLedger) {
				t.Errorf("DecodeLedger() error = %v, want %v", err, ErrMalformedLedger)
			}
			for _, w := range tc.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("DecodeLedger() error = %q, want it to contain %q", err, w)
				}
			}
		})
	}
}

func TestEncodeLedger(t *testing.T) {
	input := `Valor,Data,Instituição
700.5,5/2/2025,Bank
400,05/01/2025,Broker
600,05/01/2025,Bank
`
	want := `Date,Institution,Amount
05/01/2025,Bank,600.00
05/01/2025,Broker,400.00
05/02/2025,Bank,700.50
`
	l, err := DecodeLedger(strings.NewReader(input), "BRL")
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() unexpected error: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant:\n%s", got, want)
	}

	// Encoding is canonical: decoding and encoding again does not change it.
	l, err = DecodeLedger(strings.NewReader(want), "BRL")
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	buf.Reset()
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() unexpected error: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() is not stable, got:\n%s", got)
	}
}
