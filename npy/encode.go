package npy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var magic = []byte("\x93NUMPY")

const headerAlign = 64

// Encode writes the array to w in npy format version 1.0.
func (a *Array) Encode(w io.Writer) error {
	header := buildHeader(a.dtype, a.shape)
	if len(header) > 0xffff {
		return fmt.Errorf("npy: header too large (%d bytes)", len(header))
	}
	preamble := make([]byte, 0, 10)
	preamble = append(preamble, magic...)
	preamble = append(preamble, 1, 0)
	preamble = binary.LittleEndian.AppendUint16(preamble, uint16(len(header)))
	if _, err := w.Write(preamble); err != nil {
		return fmt.Errorf("npy: write preamble: %w", err)
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("npy: write header: %w", err)
	}
	if _, err := w.Write(a.data); err != nil {
		return fmt.Errorf("npy: write data: %w", err)
	}
	return nil
}

// Marshal returns the npy byte stream for the array.
func (a *Array) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(10 + headerAlign + len(a.data))
	if err := a.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildHeader renders the dict literal numpy.save writes, padded with spaces
// so the full preamble+header length is a multiple of 64, ending with '\n'.
func buildHeader(dtype DType, shape []int) []byte {
	var sb strings.Builder
	sb.WriteString("{'descr': '")
	sb.WriteString(string(dtype))
	sb.WriteString("', 'fortran_order': False, 'shape': (")
	for i, dim := range shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	if len(shape) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteString("), }")

	header := sb.String()
	total := 10 + len(header) + 1 // preamble + header + trailing newline
	padding := 0
	if rem := total % headerAlign; rem != 0 {
		padding = headerAlign - rem
	}
	out := make([]byte, 0, len(header)+padding+1)
	out = append(out, header...)
	for i := 0; i < padding; i++ {
		out = append(out, ' ')
	}
	return append(out, '\n')
}
