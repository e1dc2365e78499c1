package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

const sample = `item_code,item_name,category,unit,current_stock,min_stock,unit_price,location
CAB-01,Cable UTP Cat6,Redes,M,"1,200",100,"1,250.50",A-01
SW-24,Switch 24 puertos,Redes,EA,3,5,890000,B-02
,,,,,,,
CAB-01,Cable UTP Cat6 (azul),Redes,M,1000,100,1300,A-01
CON-RJ,Conector d'Angelo,Redes,EA,,,,
`

func TestParseCSV(t *testing.T) {
	rows, err := parseCSV(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "CAB-01", rows[0].Code)
	assert.Equal(t, "Cable UTP Cat6 (azul)", rows[0].Name, "el código repetido conserva la última fila")
	assert.Equal(t, 1000, rows[0].CurrentStock)
	assert.Equal(t, "1300.00", rows[0].UnitPrice.StringFixed(2))

	assert.Equal(t, 3, rows[1].CurrentStock)
	assert.Equal(t, 5, rows[1].MinStock)

	assert.Equal(t, 0, rows[2].CurrentStock)
	assert.True(t, rows[2].UnitPrice.IsZero())
}

func TestParseCSV_Errores(t *testing.T) {
	_, err := parseCSV(strings.NewReader("item_code,item_name\nA,B\n"))
	assert.ErrorContains(t, err, "unit")

	_, err = parseCSV(strings.NewReader("item_code,item_name,unit,current_stock\nA,B,EA,-3\n"))
	assert.ErrorContains(t, err, "línea 2")

	_, err = parseCSV(strings.NewReader("item_code,item_name,unit,unit_price\nA,B,EA,abc\n"))
	assert.ErrorContains(t, err, "unit_price")

	_, err = parseCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseCSV_EUCKR(t *testing.T) {
	src := "item_code,item_name,unit\nK-1,케이블,EA\n"
	encoded, err := korean.EUCKR.NewEncoder().String(src)
	require.NoError(t, err)

	r, err := decodingReader(strings.NewReader(encoded), "euc-kr")
	require.NoError(t, err)
	rows, err := parseCSV(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "케이블", rows[0].Name)

	_, err = decodingReader(strings.NewReader(""), "utf-16")
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	rows, err := parseCSV(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, rows, "inventario.csv"))
	sql := buf.String()

	assert.Contains(t, sql, "INSERT INTO inventory (item_code, item_name, category, unit, current_stock, min_stock, unit_price, location) VALUES")
	assert.Contains(t, sql, "'Conector d''Angelo'")
	assert.Contains(t, sql, "ON CONFLICT (item_code) DO UPDATE SET")
	assert.Equal(t, 3, strings.Count(sql, "\n  ('"))
}
