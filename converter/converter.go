// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package converter

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/vine-io/bpmn/api"
	"github.com/vine-io/bpmn/bpmn"
	"github.com/vine-io/bpmn/diagram"
	log "github.com/vine-io/vine/lib/logger"
	"go.uber.org/atomic"
)

const (
	DefaultPoolSize = 4

	CanvasStencil = "BPMNDiagram"
)

type Options struct {
	// PoolSize is the number of processes converted at the same time.
	PoolSize int
	// Lookup overrides the lookup built from the diagram of the document.
	Lookup diagram.ShapeCoordinateLookup
	// SkipMissing drops nodes without a diagram shape instead of failing.
	SkipMissing bool
}

type Option func(*Options)

func WithPoolSize(size int) Option {
	return func(o *Options) {
		o.PoolSize = size
	}
}

func WithLookup(lookup diagram.ShapeCoordinateLookup) Option {
	return func(o *Options) {
		o.Lookup = lookup
	}
}

func WithSkipMissing(skip bool) Option {
	return func(o *Options) {
		o.SkipMissing = skip
	}
}

func newOptions(opts ...Option) Options {
	options := Options{PoolSize: DefaultPoolSize}
	for _, opt := range opts {
		opt(&options)
	}
	if options.PoolSize <= 0 {
		options.PoolSize = DefaultPoolSize
	}
	return options
}

// Stats is a snapshot of the counters of a Converter.
type Stats struct {
	Processes int64
	Shapes    int64
	Skipped   int64
	Failed    int64
}

// Converter turns linked definitions into a canvas of renderable shapes.
// It is safe for concurrent use until Release is called.
type Converter struct {
	opts Options
	pool *ants.Pool

	processes *atomic.Int64
	shapes    *atomic.Int64
	skipped   *atomic.Int64
	failed    *atomic.Int64
}

func New(opts ...Option) (*Converter, error) {
	options := newOptions(opts...)

	pool, err := ants.NewPool(options.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("create converter pool: %w", err)
	}

	c := &Converter{
		opts:      options,
		pool:      pool,
		processes: atomic.NewInt64(0),
		shapes:    atomic.NewInt64(0),
		skipped:   atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
	}

	return c, nil
}

type result struct {
	shapes []*diagram.Shape
	err    error
}

// Convert builds the canvas shape of d. Its children are the shapes of the
// flow nodes of every process, in document order. The first lookup error is
// returned as it is, unless the converter skips missing shapes and the
// error is a NotFound.
func (c *Converter) Convert(ctx context.Context, d *bpmn.Definitions) (*diagram.Shape, error) {
	if d == nil {
		return nil, api.BadRequest("no definitions to convert")
	}

	lookup := c.opts.Lookup
	if lookup == nil {
		lookup = NewPlaneLookup(d)
	}

	results := make([]result, len(d.Processes))
	wg := sync.WaitGroup{}
	var err error
	for i := range d.Processes {
		if err = ctx.Err(); err != nil {
			break
		}

		i, p := i, d.Processes[i]
		wg.Add(1)
		err = c.pool.Submit(func() {
			defer wg.Done()
			shapes, e := c.convertProcess(ctx, p, lookup)
			results[i] = result{shapes: shapes, err: e}
		})
		if err != nil {
			wg.Done()
			err = api.InternalServerError("submit process %s: %v", p.Id, err).WithCaller()
			break
		}
	}
	wg.Wait()

	if err != nil {
		c.failed.Inc()
		return nil, err
	}

	canvas := diagram.NewShape("canvas_" + uuid.New().String())
	canvas.Stencil = CanvasStencil
	if d.Id != "" {
		canvas.SetProperty("name", d.Id)
	}
	if d.TargetNamespace != "" {
		canvas.SetProperty("targetNamespace", d.TargetNamespace)
	}

	for _, r := range results {
		if r.err != nil {
			c.failed.Inc()
			return nil, r.err
		}
		for _, shape := range r.shapes {
			canvas.AddChild(shape)
		}
	}

	return canvas, nil
}

func (c *Converter) convertProcess(ctx context.Context, p *bpmn.Process, lookup diagram.ShapeCoordinateLookup) ([]*diagram.Shape, error) {
	nodes := p.FlowNodes()
	shapes := make([]*diagram.Shape, 0, len(nodes))
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		shape, err := bpmn.ToShape(node, lookup)
		if err != nil {
			if c.opts.SkipMissing && api.IsCode(err, api.StatusNotFound) {
				log.Warnf("skip %s %s: %v", node.GetKind(), node.GetID(), api.FromErr(err).Detail)
				c.skipped.Inc()
				continue
			}
			return nil, err
		}
		shapes = append(shapes, shape)
	}

	c.processes.Inc()
	c.shapes.Add(int64(len(shapes)))
	log.Debugf("process %s converted into %d shapes", p.Id, len(shapes))

	return shapes, nil
}

// Stats returns the counters accumulated since the converter was created.
func (c *Converter) Stats() Stats {
	return Stats{
		Processes: c.processes.Load(),
		Shapes:    c.shapes.Load(),
		Skipped:   c.skipped.Load(),
		Failed:    c.failed.Load(),
	}
}

// Release frees the worker pool. The converter must not be used afterwards.
func (c *Converter) Release() {
	c.pool.Release()
}
