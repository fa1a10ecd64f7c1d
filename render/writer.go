package render

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// segmentWriter collects the rendered units of a text as segments.
type segmentWriter struct {
	markup   Markup
	segments []string
	out      strings.Builder
}

// unit adds the rendered content of a unit. Punctuation never starts a
// segment of its own but is joined into the preceding one. Empty content
// (e.g., from a silent glyph) contributes nothing.
func (w *segmentWriter) unit(content string, punct bool) {
	if content == "" {
		return
	}
	if punct && len(w.segments) > 0 {
		w.segments[len(w.segments)-1] += content
		return
	}
	w.segments = append(w.segments, content)
}

func (w *segmentWriter) String() string {
	w.out.Reset()
	for _, s := range w.segments {
		w.out.WriteString(w.markup.Segment(s))
	}
	return w.out.String()
}

// Writers are short-lived objects, needed once per rendering call.
// We keep them in a pool to re-use their buffers.
type writerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalWriterPool *writerPool

func init() {
	globalWriterPool = &writerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &segmentWriter{}, nil
		})
	globalWriterPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalWriterPool.opool = pool.NewObjectPool(globalWriterPool.ctx, factory, config)
}

// borrowWriter returns an empty segment writer for a markup flavour.
func borrowWriter(m Markup) *segmentWriter {
	o, err := globalWriterPool.opool.BorrowObject(globalWriterPool.ctx)
	if err != nil {
		T().Errorf("kanbun: cannot borrow writer from pool: %v", err)
		return &segmentWriter{markup: m}
	}
	w := o.(*segmentWriter)
	w.markup = m
	return w
}

// release clears w and puts it back into the pool.
func (w *segmentWriter) release() {
	w.markup = nil
	w.segments = w.segments[:0]
	w.out.Reset()
	_ = globalWriterPool.opool.ReturnObject(globalWriterPool.ctx, w)
}
