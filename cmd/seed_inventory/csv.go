package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// seedRow fila válida de la planilla.
type seedRow struct {
	Code         string
	Name         string
	Category     string
	Unit         string
	CurrentStock int
	MinStock     int
	UnitPrice    decimal.Decimal
	Location     string
}

var columns = []string{"item_code", "item_name", "category", "unit", "current_stock", "min_stock", "unit_price", "location"}

// decodingReader convierte a UTF-8 la exportación en la codificación indicada.
func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "euc-kr", "euckr", "cp949":
		return transform.NewReader(r, korean.EUCKR.NewDecoder()), nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("codificación no soportada %q", encoding)
}

// parseCSV lee la planilla. La primera fila es el encabezado; el orden de columnas es libre
// pero item_code, item_name y unit son obligatorias. Códigos repetidos: gana la última fila.
func parseCSV(r io.Reader) ([]seedRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv vacío")
		}
		return nil, err
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"item_code", "item_name", "unit"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("falta la columna %s", required)
		}
	}

	var (
		rows []seedRow
		pos  = make(map[string]int)
		line = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if get("item_code") == "" && get("item_name") == "" {
			continue
		}
		row := seedRow{
			Code:     get("item_code"),
			Name:     get("item_name"),
			Category: get("category"),
			Unit:     get("unit"),
			Location: get("location"),
		}
		if row.Code == "" || row.Name == "" || row.Unit == "" {
			return nil, fmt.Errorf("línea %d: item_code, item_name y unit son obligatorios", line)
		}
		if row.CurrentStock, err = parseQty(get("current_stock")); err != nil {
			return nil, fmt.Errorf("línea %d: current_stock: %w", line, err)
		}
		if row.MinStock, err = parseQty(get("min_stock")); err != nil {
			return nil, fmt.Errorf("línea %d: min_stock: %w", line, err)
		}
		row.UnitPrice = decimal.Zero
		if p := strings.ReplaceAll(get("unit_price"), ",", ""); p != "" {
			if row.UnitPrice, err = decimal.NewFromString(p); err != nil || row.UnitPrice.IsNegative() {
				return nil, fmt.Errorf("línea %d: unit_price inválido %q", line, get("unit_price"))
			}
		}
		if i, dup := pos[row.Code]; dup {
			rows[i] = row
			continue
		}
		pos[row.Code] = len(rows)
		rows = append(rows, row)
	}
	return rows, nil
}

func parseQty(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("número inválido %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("no puede ser negativo: %d", n)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("fuera de rango: %d", n)
	}
	return n, nil
}

// writeSQL escribe un INSERT idempotente (ON CONFLICT por item_code).
func writeSQL(w io.Writer, rows []seedRow, source string) error {
	var b strings.Builder
	b.WriteString("-- Carga inicial de inventario\n")
	fmt.Fprintf(&b, "-- Generado desde %s por cmd/seed_inventory\n\n", source)
	if len(rows) == 0 {
		b.WriteString("-- (sin filas)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "INSERT INTO inventory (%s) VALUES\n", strings.Join(columns, ", "))
	for i, r := range rows {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', %d, %d, %s, '%s')",
			escapeSQL(r.Code), escapeSQL(r.Name), escapeSQL(r.Category), escapeSQL(r.Unit),
			r.CurrentStock, r.MinStock, r.UnitPrice.StringFixed(2), escapeSQL(r.Location))
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (item_code) DO UPDATE SET\n")
	b.WriteString("  item_name = EXCLUDED.item_name,\n")
	b.WriteString("  category = EXCLUDED.category,\n")
	b.WriteString("  unit = EXCLUDED.unit,\n")
	b.WriteString("  min_stock = EXCLUDED.min_stock,\n")
	b.WriteString("  unit_price = EXCLUDED.unit_price,\n")
	b.WriteString("  location = EXCLUDED.location,\n")
	b.WriteString("  updated_at = now();\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
