package token

import (
	"io"
)

// Pos is a byte offset within a File.
//
type Pos int

// A File represents an input file. It's a wrapper around an io.Reader that
// records where each line starts.
//
type File struct {
	name string
	io.Reader
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File. Line 1 is automatically added at offset 0.
//
func NewFile(name string, r io.Reader) *File {
	return &File{
		name:   name,
		Reader: r,
		lines:  []Pos{0},
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// AddLine records that a new line starts at offset pos.
//
// Offsets at or before the start of the last known line are ignored, so that
// re-scanning already seen input is harmless.
//
func (f *File) AddLine(pos Pos) {
	if l := len(f.lines); f.lines[l-1] >= pos {
		return
	}
	f.lines = append(f.lines, pos)
}

// Lines returns the number of lines seen so far.
//
func (f *File) Lines() int {
	return len(f.lines)
}

// Line returns the 1-based line number for a given pos.
//
func (f *File) Line(pos Pos) int {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}
