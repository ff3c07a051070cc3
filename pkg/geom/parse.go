package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses SVG path data into a Path. Supported commands are
// M/m, L/l, H/h, V/v, C/c, S/s, Q/q, T/t, and Z/z; quadratic segments are
// elevated to cubics. Elliptical arcs (A/a) are rejected with an error.
func ParsePath(data string) (Path, error) {
	p := &pathParser{src: data}
	return p.parse()
}

type pathParser struct {
	src string
	pos int

	path    Path
	cur     Point // current point
	start   Point // start of current subpath
	lastC2  Point // last cubic control point, for S
	lastQC  Point // last quadratic control point, for T
	prevCmd byte
}

func (p *pathParser) parse() (Path, error) {
	for {
		p.skipSeparators()
		if p.pos >= len(p.src) {
			return p.path, nil
		}
		cmd := p.src[p.pos]
		if !isCommand(cmd) {
			// Implicit repeat of the previous command; an initial bare
			// number is malformed.
			if p.prevCmd == 0 {
				return nil, fmt.Errorf("path data must start with a command, got %q", cmd)
			}
			cmd = p.prevCmd
			// After M an implicit repeat means L.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		} else {
			p.pos++
		}
		if err := p.exec(cmd); err != nil {
			return nil, err
		}
		p.prevCmd = cmd
	}
}

func (p *pathParser) exec(cmd byte) error {
	rel := cmd >= 'a'
	switch cmd {
	case 'M', 'm':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.Move(pt)
		p.cur, p.start = pt, pt
	case 'L', 'l':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.Line(pt)
		p.cur = pt
	case 'H', 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			x += p.cur.X
		}
		pt := Point{x, p.cur.Y}
		p.path.Line(pt)
		p.cur = pt
	case 'V', 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			y += p.cur.Y
		}
		pt := Point{p.cur.X, y}
		p.path.Line(pt)
		p.cur = pt
	case 'C', 'c':
		c1, err := p.point(rel)
		if err != nil {
			return err
		}
		c2, err := p.point(rel)
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.Cubic(c1, c2, end)
		p.cur, p.lastC2 = end, c2
	case 'S', 's':
		c2, err := p.point(rel)
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		c1 := p.reflectedCubic()
		p.path.Cubic(c1, c2, end)
		p.cur, p.lastC2 = end, c2
	case 'Q', 'q':
		qc, err := p.point(rel)
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.quadratic(qc, end)
	case 'T', 't':
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.quadratic(p.reflectedQuad(), end)
	case 'Z', 'z':
		p.path.Close()
		p.cur = p.start
	case 'A', 'a':
		return fmt.Errorf("elliptical arcs are not supported")
	default:
		return fmt.Errorf("unknown path command %q", cmd)
	}
	return nil
}

// quadratic appends a quadratic segment elevated to a cubic.
func (p *pathParser) quadratic(qc, end Point) {
	c1 := p.cur.Add(qc.Sub(p.cur).Mul(2.0 / 3.0))
	c2 := end.Add(qc.Sub(end).Mul(2.0 / 3.0))
	p.path.Cubic(c1, c2, end)
	p.cur, p.lastQC = end, qc
}

// reflectedCubic returns the first control point of a smooth cubic: the
// previous second control point mirrored over the current point, or the
// current point when the previous command was not a cubic.
func (p *pathParser) reflectedCubic() Point {
	switch p.prevCmd {
	case 'C', 'c', 'S', 's':
		return p.cur.Mul(2).Sub(p.lastC2)
	}
	return p.cur
}

func (p *pathParser) reflectedQuad() Point {
	switch p.prevCmd {
	case 'Q', 'q', 'T', 't':
		return p.cur.Mul(2).Sub(p.lastQC)
	}
	return p.cur
}

func (p *pathParser) point(rel bool) (Point, error) {
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	pt := Point{x, y}
	if rel {
		pt = pt.Add(p.cur)
	}
	return pt, nil
}

func (p *pathParser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	seenDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		if c == 'e' || c == 'E' {
			p.pos++
			if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
				p.pos++
			}
			continue
		}
		break
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	f, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", p.src[start:p.pos], err)
	}
	return f, nil
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == ',' ||
		p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

func isCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqTtZzAa", c) >= 0
}
