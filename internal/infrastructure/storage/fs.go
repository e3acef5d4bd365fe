package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"svw.info/sudoku-solve/internal/domain"
)

// FS reads and writes puzzles as whitespace-delimited text grids: nine rows
// of nine tokens, a token being a digit 1-9 or one of `.`, `_`, `0` for an
// empty cell. Rows given as a bare run of nine characters (e.g. "53..7....")
// are accepted too. Lines shorter than nine characters and lines starting
// with '#' are skipped.
type FS struct{}

func NewFS() *FS { return &FS{} }

func (s *FS) Load(ctx context.Context, path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := &domain.Board{}
	row := 0
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if len(line) < 9 || strings.HasPrefix(line, "#") {
			continue
		}
		if row == 9 {
			return nil, fmt.Errorf("%s:%d: more than 9 puzzle rows", path, lineNo)
		}
		vals, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		for c, v := range vals {
			b.Values[row][c] = v
			b.Fixed[row][c] = v != 0
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != 9 {
		return nil, fmt.Errorf("%s: expected 9 puzzle rows, got %d", path, row)
	}
	return b, nil
}

func parseRow(line string) ([9]uint8, error) {
	var out [9]uint8
	fields := strings.Fields(line)
	if len(fields) == 1 && len(fields[0]) == 9 {
		// condensed form: one character per cell
		fields = strings.Split(fields[0], "")
	}
	if len(fields) != 9 {
		return out, fmt.Errorf("expected 9 cells, got %d", len(fields))
	}
	for i, tok := range fields {
		v, err := parseCell(tok)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func parseCell(tok string) (uint8, error) {
	switch tok {
	case ".", "_", "0":
		return 0, nil
	}
	if len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9' {
		return tok[0] - '0', nil
	}
	return 0, fmt.Errorf("invalid cell %q", tok)
}

func (s *FS) Save(ctx context.Context, path string, b *domain.Board) error {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('_')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
