package matcalc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	FormatLiteral = "literal"
	FormatList    = "list"
	FormatGrid    = "grid"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

var Formats = []string{FormatLiteral, FormatList, FormatGrid, FormatJSON, FormatYAML}

type document struct {
	Rows [][]int64 `yaml:"rows,flow" json:"rows"`
}

func newDocument(m Matrix) document {
	rows := m.Rows()
	doc := document{Rows: make([][]int64, len(rows))}
	for i := range rows {
		doc.Rows[i] = rows[i][:]
	}
	return doc
}

// Encode writes m to w in the named format, followed by a newline.
func Encode(w io.Writer, m Matrix, format string) error {
	switch format {
	case FormatLiteral:
		_, err := fmt.Fprintln(w, m)
		return err
	case FormatList:
		s := make([]string, len(m))
		for i, v := range m {
			s[i] = strconv.FormatInt(v, 10)
		}
		_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(s, ", "))
		return err
	case FormatGrid:
		width := 0
		for _, v := range m {
			if n := len(strconv.FormatInt(v, 10)); n > width {
				width = n
			}
		}
		for _, row := range m.Rows() {
			if _, err := fmt.Fprintf(w, "%*d %*d %*d\n", width, row[0], width, row[1], width, row[2]); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON, FormatYAML:
		var opts []yaml.EncodeOption
		if format == FormatJSON {
			opts = append(opts, yaml.JSON())
		}
		b, err := yaml.MarshalWithOptions(newDocument(m), opts...)
		if err != nil {
			return fmt.Errorf("encode %s: %w", format, err)
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unknown format: %q", format)
}
