package token

import "bytes"

const DefaultMaxDepth = 512

type TokenOpt func(*Tokenizer)

// MaxDepth bounds container nesting. Values below 1 keep the default.
func MaxDepth(n int) TokenOpt {
	return func(t *Tokenizer) {
		if n < 1 {
			return
		}
		t.maxDepth = n
	}
}

type state int

const (
	expectRoot state = iota
	expectKeyOrClose
	expectKey
	expectColon
	expectValue
	expectValueOrClose
	expectNext
	expectEnd
)

type frame struct {
	isObj   bool
	openOff int
}

// Tokenizer scans JSON text and reports tokens to a Sink. The zero
// value is not usable; construct with NewTokenizer.
type Tokenizer struct {
	sink     Sink
	maxDepth int
	stack    []frame
	state    state
	elements int
}

func NewTokenizer(sink Sink, opts ...TokenOpt) *Tokenizer {
	t := &Tokenizer{
		sink:     sink,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Level is the current container nesting depth. Nonzero after Feed
// means the document ended with unterminated containers.
func (t *Tokenizer) Level() int {
	return len(t.stack)
}

// Elements is the number of Pop events delivered so far.
func (t *Tokenizer) Elements() int {
	return t.elements
}

// Feed scans d, delivering events to the sink. Sink errors abort the
// scan and are returned unchanged; scan errors are *ScanError values
// wrapping one of this package's sentinels.
func (t *Tokenizer) Feed(d []byte) error {
	i := 0
	for i < len(d) {
		if wsTable[d[i]] {
			i++
			continue
		}
		n, err := t.step(d, i)
		if err != nil {
			return err
		}
		i += n
	}
	return nil
}

func (t *Tokenizer) step(d []byte, i int) (int, error) {
	c := d[i]
	switch t.state {
	case expectRoot:
		switch c {
		case '{', '[':
			return 1, t.open(d, i)
		}
		return 0, NewScanError(ErrOutsideContainer, &Pos{Off: i, D: d})
	case expectKeyOrClose:
		if c == '}' {
			return 1, t.close(d, i)
		}
		fallthrough
	case expectKey:
		if c != '"' {
			return 0, ExpectedErr("string", &Pos{Off: i, D: d})
		}
		n, escapes, err := scanQuoted(d[i:])
		if err != nil {
			return 0, NewScanError(err, &Pos{Off: i + n, D: d})
		}
		t.state = expectColon
		return n, t.pop(&Event{Type: Key, Begin: i, End: i + n, Escapes: escapes})
	case expectColon:
		if c != ':' {
			return 0, ExpectedErr("':'", &Pos{Off: i, D: d})
		}
		t.state = expectValue
		return 1, nil
	case expectValueOrClose:
		if c == ']' {
			return 1, t.close(d, i)
		}
		fallthrough
	case expectValue:
		return t.value(d, i)
	case expectNext:
		switch c {
		case ',':
			if t.stack[len(t.stack)-1].isObj {
				t.state = expectKey
			} else {
				t.state = expectValue
			}
			return 1, nil
		case '}', ']':
			return 1, t.close(d, i)
		}
		return 0, ExpectedErr("',' or closing bracket", &Pos{Off: i, D: d})
	case expectEnd:
		return 0, UnexpectedErr("trailing content", &Pos{Off: i, D: d})
	}
	panic("bad state")
}

func (t *Tokenizer) value(d []byte, i int) (int, error) {
	switch c := d[i]; {
	case c == '{' || c == '[':
		return 1, t.open(d, i)
	case c == '"':
		n, escapes, err := scanQuoted(d[i:])
		if err != nil {
			return 0, NewScanError(err, &Pos{Off: i + n, D: d})
		}
		t.state = expectNext
		return n, t.pop(&Event{Type: String, Begin: i, End: i + n, Escapes: escapes})
	case c == '-' || asciiDigit(c):
		n, flags, err := number(d[i:])
		if err != nil {
			return 0, NewScanError(err, &Pos{Off: i, D: d})
		}
		t.state = expectNext
		return n, t.pop(&Event{Type: Number, Begin: i, End: i + n, Flags: flags})
	case c == 't':
		return t.literal(d, i, "true", &Event{Type: Boolean, Flags: TrueFlag})
	case c == 'f':
		return t.literal(d, i, "false", &Event{Type: Boolean})
	case c == 'n':
		return t.literal(d, i, "null", &Event{Type: Null})
	}
	return 0, UnexpectedErr(string(d[i]), &Pos{Off: i, D: d})
}

func (t *Tokenizer) literal(d []byte, i int, lit string, ev *Event) (int, error) {
	end := i + len(lit)
	if end > len(d) || !bytes.Equal(d[i:end], []byte(lit)) {
		return 0, NewScanError(ErrLiteral, &Pos{Off: i, D: d})
	}
	if end < len(d) && !boundary(d[end]) {
		return 0, NewScanError(ErrLiteral, &Pos{Off: i, D: d})
	}
	ev.Begin, ev.End = i, end
	t.state = expectNext
	return len(lit), t.pop(ev)
}

func boundary(c byte) bool {
	return wsTable[c] || c == ',' || c == '}' || c == ']'
}

func (t *Tokenizer) open(d []byte, i int) error {
	if len(t.stack) >= t.maxDepth {
		return NewScanError(ErrMaxDepth, &Pos{Off: i, D: d})
	}
	isObj := d[i] == '{'
	t.stack = append(t.stack, frame{isObj: isObj, openOff: i})
	ev := &Event{Begin: i, End: i + 1}
	if isObj {
		ev.Type = ObjectOpen
		t.state = expectKeyOrClose
	} else {
		ev.Type = ArrayOpen
		t.state = expectValueOrClose
	}
	return t.sink.Push(ev)
}

func (t *Tokenizer) close(d []byte, i int) error {
	top := &t.stack[len(t.stack)-1]
	if top.isObj != (d[i] == '}') {
		return UnexpectedErr(string(d[i]), &Pos{Off: i, D: d})
	}
	ev := &Event{Begin: top.openOff, End: i + 1}
	if top.isObj {
		ev.Type = ObjectClose
	} else {
		ev.Type = ArrayClose
	}
	t.stack = t.stack[:len(t.stack)-1]
	if len(t.stack) == 0 {
		t.state = expectEnd
	} else {
		t.state = expectNext
	}
	return t.pop(ev)
}

func (t *Tokenizer) pop(ev *Event) error {
	t.elements++
	return t.sink.Pop(ev)
}
