package npy

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DType identifies an element type using NumPy descr notation.
type DType string

// Supported element types. Multi-byte types are little-endian on the wire.
const (
	Bool    DType = "|b1"
	Int8    DType = "|i1"
	Uint8   DType = "|u1"
	Int16   DType = "<i2"
	Uint16  DType = "<u2"
	Int32   DType = "<i4"
	Uint32  DType = "<u4"
	Int64   DType = "<i8"
	Uint64  DType = "<u8"
	Float32 DType = "<f4"
	Float64 DType = "<f8"
)

var itemSizes = map[DType]int{
	Bool:    1,
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Int64:   8,
	Uint64:  8,
	Float32: 4,
	Float64: 8,
}

// ItemSize returns the element width in bytes, or 0 for unknown dtypes.
func (d DType) ItemSize() int {
	return itemSizes[d]
}

func (d DType) valid() bool {
	_, ok := itemSizes[d]
	return ok
}

// Array is an n-dimensional numeric array in C (row-major) order.
type Array struct {
	dtype DType
	shape []int
	data  []byte
}

// New builds an array from raw little-endian element data. The data length
// must match the product of the shape times the dtype item size.
func New(dtype DType, shape []int, data []byte) (*Array, error) {
	if !dtype.valid() {
		return nil, fmt.Errorf("npy: unsupported dtype %q", string(dtype))
	}
	count := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("npy: negative dimension %d", dim)
		}
		count *= dim
	}
	if want := count * dtype.ItemSize(); len(data) != want {
		return nil, fmt.Errorf("npy: data length %d does not match shape %v of dtype %s (want %d)", len(data), shape, dtype, want)
	}
	return &Array{dtype: dtype, shape: append([]int(nil), shape...), data: data}, nil
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the total element count.
func (a *Array) Len() int {
	count := 1
	for _, dim := range a.shape {
		count *= dim
	}
	return count
}

// Bytes returns the raw little-endian element data.
func (a *Array) Bytes() []byte { return a.data }

// FromFloat64 builds a 1-D float64 array.
func FromFloat64(values []float64) *Array {
	data := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[8*i:], math.Float64bits(v))
	}
	arr, _ := New(Float64, []int{len(values)}, data)
	return arr
}

// FromFloat32 builds a 1-D float32 array.
func FromFloat32(values []float32) *Array {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(v))
	}
	arr, _ := New(Float32, []int{len(values)}, data)
	return arr
}

// FromInt64 builds a 1-D int64 array.
func FromInt64(values []int64) *Array {
	data := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[8*i:], uint64(v))
	}
	arr, _ := New(Int64, []int{len(values)}, data)
	return arr
}

// FromInt32 builds a 1-D int32 array.
func FromInt32(values []int32) *Array {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], uint32(v))
	}
	arr, _ := New(Int32, []int{len(values)}, data)
	return arr
}

// FromUint16 builds a 1-D uint16 array.
func FromUint16(values []uint16) *Array {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(data[2*i:], v)
	}
	arr, _ := New(Uint16, []int{len(values)}, data)
	return arr
}

// FromUint8 builds a 1-D uint8 array.
func FromUint8(values []uint8) *Array {
	data := append([]byte(nil), values...)
	arr, _ := New(Uint8, []int{len(values)}, data)
	return arr
}

// FromFloat64Matrix builds a 2-D float64 array from row slices. All rows must
// have the same length.
func FromFloat64Matrix(rows [][]float64) (*Array, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	data := make([]byte, 0, 8*height*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("npy: ragged matrix: row %d has %d columns, want %d", i, len(row), width)
		}
		for _, v := range row {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			data = append(data, buf[:]...)
		}
	}
	return New(Float64, []int{height, width}, data)
}

// FromUint16Matrix builds a 2-D uint16 array from row slices.
func FromUint16Matrix(rows [][]uint16) (*Array, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	data := make([]byte, 0, 2*height*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("npy: ragged matrix: row %d has %d columns, want %d", i, len(row), width)
		}
		for _, v := range row {
			var buf [2]byte
			binary.LittleEndian.PutUint16(buf[:], v)
			data = append(data, buf[:]...)
		}
	}
	return New(Uint16, []int{height, width}, data)
}

// Float64s returns the elements of a float64 array.
func (a *Array) Float64s() ([]float64, error) {
	if a.dtype != Float64 {
		return nil, fmt.Errorf("npy: dtype is %s, not %s", a.dtype, Float64)
	}
	out := make([]float64, a.Len())
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(a.data[8*i:]))
	}
	return out, nil
}

// Float32s returns the elements of a float32 array.
func (a *Array) Float32s() ([]float32, error) {
	if a.dtype != Float32 {
		return nil, fmt.Errorf("npy: dtype is %s, not %s", a.dtype, Float32)
	}
	out := make([]float32, a.Len())
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(a.data[4*i:]))
	}
	return out, nil
}

// Uint16s returns the elements of a uint16 array.
func (a *Array) Uint16s() ([]uint16, error) {
	if a.dtype != Uint16 {
		return nil, fmt.Errorf("npy: dtype is %s, not %s", a.dtype, Uint16)
	}
	out := make([]uint16, a.Len())
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(a.data[2*i:])
	}
	return out, nil
}

// ToFloat64s converts the elements of any supported dtype to float64.
func (a *Array) ToFloat64s() []float64 {
	out := make([]float64, a.Len())
	size := a.dtype.ItemSize()
	for i := range out {
		chunk := a.data[size*i:]
		switch a.dtype {
		case Bool, Uint8:
			out[i] = float64(chunk[0])
		case Int8:
			out[i] = float64(int8(chunk[0]))
		case Int16:
			out[i] = float64(int16(binary.LittleEndian.Uint16(chunk)))
		case Uint16:
			out[i] = float64(binary.LittleEndian.Uint16(chunk))
		case Int32:
			out[i] = float64(int32(binary.LittleEndian.Uint32(chunk)))
		case Uint32:
			out[i] = float64(binary.LittleEndian.Uint32(chunk))
		case Int64:
			out[i] = float64(int64(binary.LittleEndian.Uint64(chunk)))
		case Uint64:
			out[i] = float64(binary.LittleEndian.Uint64(chunk))
		case Float32:
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(chunk)))
		case Float64:
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(chunk))
		}
	}
	return out
}
