// seed_selic gera um script SQL para popular a tabela selic_rates a partir de
// um dump JSON da série SGS 4390 do Banco Central (taxa SELIC mensal).
//
// Uso: go run ./cmd/seed_selic [caminho/selic.json]
// Por padrão busca selic.json no diretório atual.
// Escreve: internal/infrastructure/postgres/migrations/002_seed_selic.sql
//
// O dump pode ser obtido com:
//
//	curl -o selic.json 'https://api.bcb.gov.br/dados/serie/bcdata.sgs.4390/dados?formato=json'
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type observation struct {
	Data  string `json:"data"`  // "01/03/2024"
	Valor string `json:"valor"` // "0.83"
}

func main() {
	jsonPath := "selic.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}
	f, err := os.Open(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir JSON: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var observations []observation
	if err := json.NewDecoder(f).Decode(&observations); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_selic.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Criar arquivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Série SELIC mensal (SGS 4390, Banco Central do Brasil)\n")
	out.WriteString("-- Gerado a partir do dump JSON da API de dados abertos\n\n")

	count := 0
	for i, obs := range observations {
		date, err := time.Parse("02/01/2006", obs.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ponto %d: data %q inválida, ignorado\n", i, obs.Data)
			continue
		}
		fmt.Fprintf(out,
			"INSERT INTO selic_rates (id, month, year, rate, created_at, updated_at)\n"+
				"VALUES (gen_random_uuid(), %d, %d, %s, now(), now())\n"+
				"ON CONFLICT (year, month) DO UPDATE SET rate = EXCLUDED.rate, updated_at = now();\n",
			int(date.Month()), date.Year(), obs.Valor)
		count++
	}

	fmt.Printf("Gerado %s: %d meses da série\n", outPath, count)
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
