package token

import (
	"fmt"
	"strconv"
)

// Pos is a byte offset into a scanned buffer, kept with the buffer so
// it can render line and column information lazily.
type Pos struct {
	Off int
	D   []byte
}

func (p *Pos) LineCol() (int, int) {
	line, col := 0, 0
	for i := 0; i < p.Off && i < len(p.D); i++ {
		if p.D[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D[max(0, p.Off-5):min(p.Off+5, len(p.D))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.Off, line, col)
}
