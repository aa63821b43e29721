// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package tokenizer

import (
	"io"

	"github.com/cata-b/FLCDCompiler/token"
	"github.com/rs/zerolog"
)

// DefaultBufferSize is the default size of the read buffer.
//
const DefaultBufferSize = 1<<7 - 1

// A stateFn is a state function of the raw splitter. A nil return ends the
// scan.
//
type stateFn func(r *reader) stateFn

// reader splits its input into maximal runs of separator and non-separator
// bytes. Input is read through buf; the run being scanned is slid to the
// front of buf before each refill so that it is never split by a refill. A
// run longer than buf doubles its size.
//
type reader struct {
	f     *token.File
	buf   []byte
	offs  int // file offset of buf[0]
	r, w  int // read/write indices
	ts    int // start of the current run in buf
	ioErr error
	out   []token.Token
	log   *zerolog.Logger
}

func newReader(f *token.File, size int, log *zerolog.Logger) *reader {
	if size < 1 {
		size = 1
	}
	return &reader{
		f:   f,
		buf: make([]byte, size),
		log: log,
	}
}

// split runs the state machine to completion. It returns the runs read so
// far and the I/O error that stopped it, if any.
//
func (r *reader) split() ([]token.Token, error) {
	for state := stateStart; state != nil; {
		state = state(r)
	}
	if r.ioErr != io.EOF {
		return r.out, r.ioErr
	}
	return r.out, nil
}

func stateStart(r *reader) stateFn {
	r.ts = r.r
	c, ok := r.peek()
	if !ok {
		return nil
	}
	if isSeparator(c) {
		return stateSeparators
	}
	return stateWord
}

func stateSeparators(r *reader) stateFn {
	r.acceptWhile(isSeparator)
	r.emit()
	return stateStart
}

func stateWord(r *reader) stateFn {
	r.acceptWhile(func(c byte) bool { return !isSeparator(c) })
	r.emit()
	return stateStart
}

func (r *reader) emit() {
	if r.r > r.ts {
		line := r.f.Line(token.Pos(r.offs + r.ts))
		r.out = append(r.out, token.New(string(r.buf[r.ts:r.r]), line))
	}
}

func (r *reader) acceptWhile(f func(byte) bool) {
	for {
		c, ok := r.peek()
		if !ok || !f(c) {
			return
		}
		r.next()
	}
}

func (r *reader) next() {
	c := r.buf[r.r]
	r.r++
	if c == '\n' {
		r.f.AddLine(token.Pos(r.offs + r.r))
	}
}

// peek returns the next byte without consuming it. It returns false at EOF
// or on I/O error.
//
func (r *reader) peek() (byte, bool) {
	for r.r == r.w {
		if r.ioErr != nil {
			return 0, false
		}
		r.fill()
	}
	return r.buf[r.r], true
}

func (r *reader) fill() {
	// slide the current run to the front
	if n := r.ts; n > 0 {
		copy(r.buf, r.buf[n:r.w])
		r.offs += n
		r.w -= n
		r.r -= n
		r.ts = 0
	}
	if r.w == len(r.buf) {
		buf := make([]byte, 2*len(r.buf))
		copy(buf, r.buf[:r.w])
		r.buf = buf
		r.log.Debug().Int("size", len(buf)).Msg("read buffer grown to fit a single run")
	}

	for i := 0; i < 100; i++ {
		n, err := r.f.Read(r.buf[r.w:])
		r.w += n
		if n > 0 || err != nil {
			if err != nil {
				r.ioErr = err
			}
			return
		}
	}

	r.ioErr = io.ErrNoProgress
}
