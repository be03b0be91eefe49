// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package prism

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Pump manages a background goroutine that drains formatted record buffers
// into an output writer with opportunistic batching, so the read loop never
// blocks on terminal I/O. Submit blocks when the queue is full: a viewer
// must not drop lines.
type Pump struct {
	queue    chan *Buffer
	syncChan chan chan error
	output   io.Writer
	bw       *bufio.Writer
	stopChan chan struct{}
	flushed  chan struct{}
	lastErr  error
}

// NewPump starts a pump writing to output with the given queue capacity.
func NewPump(output io.Writer, capacity int) *Pump {
	p := &Pump{
		queue:    make(chan *Buffer, capacity),
		syncChan: make(chan chan error),
		output:   output,
		bw:       bufio.NewWriterSize(output, 64*1024),
		stopChan: make(chan struct{}),
		flushed:  make(chan struct{}),
	}
	go p.run()
	return p
}

// Submit hands a pooled buffer to the pump, which frees it after writing.
func (p *Pump) Submit(b *Buffer) {
	p.queue <- b
}

// Sync pauses the caller until every queued buffer reaches the underlying
// writer.
func (p *Pump) Sync() error {
	errChan := make(chan error, 1)
	select {
	case p.syncChan <- errChan:
		return <-errChan
	case <-p.flushed:
		return p.lastErr
	}
}

// Stop drains the queue, flushes and terminates the pump.
func (p *Pump) Stop() error {
	close(p.stopChan)
	<-p.flushed
	return p.lastErr
}

func (p *Pump) run() {
	defer close(p.flushed)

	for {
		select {
		case <-p.stopChan:
			p.drainAll()
			p.flushBuffer()
			return
		case errChan := <-p.syncChan:
			p.drainAll()
			errChan <- p.flushBuffer()
		case b := <-p.queue:
			p.write(b)

			// Batching: drain whatever is already queued before flushing.
			for {
				select {
				case next := <-p.queue:
					p.write(next)
				default:
					goto flush
				}
			}
		flush:
			p.flushBuffer()
		}
	}
}

func (p *Pump) drainAll() {
	for {
		select {
		case b := <-p.queue:
			p.write(b)
		default:
			return
		}
	}
}

func (p *Pump) write(b *Buffer) {
	if _, err := p.bw.Write(b.B); err != nil {
		p.handleError(err)
	}
	b.Free()
}

func (p *Pump) flushBuffer() error {
	if err := p.bw.Flush(); err != nil {
		p.handleError(err)
		return err
	}
	return nil
}

func (p *Pump) handleError(err error) {
	if err != nil && p.lastErr != err {
		// Prevent complaint spam when the terminal goes away.
		p.lastErr = err
		fmt.Fprintf(os.Stderr, "prism: output error: %v\n", err)
	}
}
