// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"sort"
	"strings"

	"stock_charts/internal/feature/symbollist/usecase"
)

// fallbackSymbols はCSVファイルが読めない場合に使用する固定の銘柄リストです。
var fallbackSymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA"}

// symbolCSV はSymbolRepositoryインターフェースのCSVファイル実装です。
type symbolCSV struct {
	path string
}

var _ usecase.SymbolRepository = (*symbolCSV)(nil)

// NewSymbolRepository は指定されたCSVファイルパスでsymbolCSVリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(path string) *symbolCSV {
	return &symbolCSV{path: path}
}

// List はCSVのSymbol列から銘柄コードを読み取り、トリム・大文字化・重複排除の上で
// 昇順に並べて返します。ファイルが読めない場合やSymbol列がない場合は
// 固定のフォールバックリストを返します。
func (r *symbolCSV) List(ctx context.Context) ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		slog.Warn("failed to open symbols csv, using fallback list", "path", r.path, "error", err)
		return fallback(), nil
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close symbols csv", "error", err)
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		slog.Warn("failed to parse symbols csv, using fallback list", "path", r.path, "error", err)
		return fallback(), nil
	}

	// ヘッダー行からSymbol列の位置を特定する
	col := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == "Symbol" {
			col = i
			break
		}
	}
	if col < 0 {
		slog.Warn("symbols csv has no Symbol column, using fallback list", "path", r.path)
		return fallback(), nil
	}

	seen := map[string]struct{}{}
	symbols := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if col >= len(rec) {
			continue
		}
		s := strings.ToUpper(strings.TrimSpace(rec[col]))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols, nil
}

// fallback はフォールバックリストのコピーを返します。
func fallback() []string {
	out := make([]string, len(fallbackSymbols))
	copy(out, fallbackSymbols)
	return out
}
