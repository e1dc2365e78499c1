// seed_inventory genera el script SQL de carga inicial del inventario a partir de la
// exportación CSV de la planilla heredada.
//
// Uso: go run ./cmd/seed_inventory [--encoding utf-8|euc-kr|latin1] [ruta/inventario.csv]
// Por defecto lee inventario.csv del directorio actual.
// Columnas: item_code,item_name,category,unit,current_stock,min_stock,unit_price,location
// Escribe: internal/infrastructure/postgres/migrations/002_seed_inventory.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

func main() {
	encoding := pflag.String("encoding", "utf-8", "codificación del CSV (utf-8, euc-kr, latin1)")
	output := pflag.String("out", "", "archivo SQL de salida (por defecto la carpeta de migraciones)")
	pflag.Parse()

	csvPath := "inventario.csv"
	if pflag.NArg() > 0 {
		csvPath = pflag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r, err := decodingReader(f, *encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Codificación: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseCSV(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := *output
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_inventory.sql")
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows, filepath.Base(csvPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d ítems\n", outPath, len(rows))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
