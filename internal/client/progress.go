package client

import (
	"io"
	"math"
)

// ProgressFunc receives whole percentages from 0 to 100.
type ProgressFunc func(percent int)

// progressReader reports how much of a known-length body has been read.
// Each percentage is reported at most once and values never decrease.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	fn    ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) *progressReader {
	p := &progressReader{r: r, total: total, last: -1, fn: fn}
	p.report(0)
	return p
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report(percent(p.read, p.total))
	}
	if err == io.EOF {
		p.report(100)
	}
	return n, err
}

func (p *progressReader) report(pct int) {
	if p.fn == nil || pct <= p.last {
		return
	}
	p.last = pct
	p.fn(pct)
}

func percent(done, total int64) int {
	if total <= 0 {
		return 100
	}
	pct := int(math.Round(float64(done) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
