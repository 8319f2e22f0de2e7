package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

type currency struct {
	Name   string
	Code   string
	Num    string
	Symbol string
}

var (
	dataFile string
	tmplFile string
	outFile  string
)

var rootCmd = &cobra.Command{
	Use:   "codegen",
	Short: "Generate the ISO 4217 currency table",
	Long: `codegen reads currency records (name, alphabetic code, numeric code, symbol)
from a CSV file and renders them through a Go template into currency_data.go.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		return run(logger)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&dataFile, "data", filepath.Join("scripts", "currency", "currency_data.csv"), "CSV file with currency records")
	rootCmd.Flags().StringVar(&tmplFile, "template", filepath.Join("scripts", "currency", "currency_data.tmpl"), "Go template for the generated file")
	rootCmd.Flags().StringVar(&outFile, "out", "currency_data.go", "output file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	data, err := readCsvFile(dataFile)
	if err != nil {
		level.Error(logger).Log("msg", "reading CSV file", "file", dataFile, "err", err)
		return err
	}

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		level.Error(logger).Log("msg", "converting records", "file", dataFile, "err", err)
		return err
	}

	code, err := generateGoCode(tmplFile, currs)
	if err != nil {
		level.Error(logger).Log("msg", "generating Go code", "template", tmplFile, "err", err)
		return err
	}

	if err := writeToFile(outFile, code); err != nil {
		level.Error(logger).Log("msg", "writing file", "out", outFile, "err", err)
		return err
	}

	level.Info(logger).Log("msg", "currency table generated", "currencies", len(currs), "out", outFile)
	return nil
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// rank keeps XXX at index 0, so the zero value of Currency stays "no currency".
func rank(code string) int {
	switch code {
	case "XXX":
		return 0
	case "XTS":
		return 1
	}
	return 2
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	currs := make([]currency, 0, len(data))
	seen := make(map[string]bool, len(data))
	for _, rec := range data {
		if len(rec) != 4 {
			return nil, fmt.Errorf("record %q: want 4 fields, got %v", rec, len(rec))
		}
		curr := currency{
			Name:   rec[0],
			Code:   rec[1],
			Num:    rec[2],
			Symbol: rec[3],
		}
		if len(curr.Code) != 3 || len(curr.Num) != 3 {
			return nil, fmt.Errorf("record %q: invalid code", rec)
		}
		if seen[curr.Code] {
			return nil, fmt.Errorf("record %q: duplicate code", rec)
		}
		seen[curr.Code] = true
		currs = append(currs, curr)
	}
	if len(currs) > 256 {
		return nil, fmt.Errorf("%v currencies do not fit into uint8", len(currs))
	}
	sort.SliceStable(currs, func(i, j int) bool {
		a, b := currs[i].Code, currs[j].Code
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err := writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
