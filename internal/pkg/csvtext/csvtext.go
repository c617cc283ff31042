// Package csvtext implements the delimited text format used by the data
// files: comma-separated fields, a single header line, and double-quote
// escaping for fields that contain commas or quotes.
package csvtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Escape wraps s in double quotes when it contains a comma or a quote
// character, doubling any embedded quotes.
func Escape(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// SplitLine splits one record line into fields. A quote toggles quoted
// mode, a doubled quote inside quoted mode decodes to a single literal
// quote, and commas only separate fields outside quoted mode.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder

	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// WriteAll writes the header line followed by one comma-joined line per
// row. Fields must already be escaped where needed.
func WriteAll(w io.Writer, header string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(bw, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("write row failed: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush rows failed: %w", err)
	}
	return nil
}

// ReadAll reads every record line from r, discarding the header line,
// blank lines and rows with fewer than minFields fields. Each field is
// whitespace-trimmed.
func ReadAll(r io.Reader, minFields int) ([][]string, error) {
	sc := bufio.NewScanner(r)

	var rows [][]string
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		fields := SplitLine(line)
		if len(fields) < minFields {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rows failed: %w", err)
	}
	return rows, nil
}
