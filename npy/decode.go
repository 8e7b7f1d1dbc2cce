package npy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Unmarshal parses a npy byte stream.
func Unmarshal(data []byte) (*Array, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one npy-encoded array from r. Format versions 1.0 and 2.0 are
// accepted; Fortran-ordered arrays are rejected.
func Decode(r io.Reader) (*Array, error) {
	preamble := make([]byte, 8)
	if _, err := io.ReadFull(r, preamble); err != nil {
		return nil, fmt.Errorf("npy: read preamble: %w", err)
	}
	if !bytes.Equal(preamble[:6], magic) {
		return nil, fmt.Errorf("npy: bad magic %q", preamble[:6])
	}
	major := preamble[6]

	var headerLen int
	switch major {
	case 1:
		var raw [2]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("npy: read header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint16(raw[:]))
	case 2:
		var raw [4]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("npy: read header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint32(raw[:]))
	default:
		return nil, fmt.Errorf("npy: unsupported format version %d.%d", major, preamble[7])
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("npy: read header: %w", err)
	}
	dtype, fortran, shape, err := parseHeader(string(header))
	if err != nil {
		return nil, err
	}
	if fortran {
		return nil, fmt.Errorf("npy: fortran-ordered arrays are not supported")
	}
	if !dtype.valid() {
		return nil, fmt.Errorf("npy: unsupported dtype %q", string(dtype))
	}

	count := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("npy: negative dimension %d in header", dim)
		}
		count *= dim
	}
	data := make([]byte, count*dtype.ItemSize())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("npy: read data: %w", err)
	}
	return New(dtype, shape, data)
}

// parseHeader extracts descr, fortran_order, and shape from the Python dict
// literal numpy writes. The parser is keyed on the three known fields rather
// than being a general literal evaluator.
func parseHeader(header string) (DType, bool, []int, error) {
	descr, err := headerString(header, "descr")
	if err != nil {
		return "", false, nil, err
	}

	fortranRaw, err := headerValue(header, "fortran_order")
	if err != nil {
		return "", false, nil, err
	}
	var fortran bool
	switch fortranRaw {
	case "True":
		fortran = true
	case "False":
		fortran = false
	default:
		return "", false, nil, fmt.Errorf("npy: bad fortran_order value %q", fortranRaw)
	}

	shapeRaw, err := headerValue(header, "shape")
	if err != nil {
		return "", false, nil, err
	}
	shape, err := parseShape(shapeRaw)
	if err != nil {
		return "", false, nil, err
	}
	return DType(descr), fortran, shape, nil
}

func headerString(header, key string) (string, error) {
	raw, err := headerValue(header, key)
	if err != nil {
		return "", err
	}
	if len(raw) < 2 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return "", fmt.Errorf("npy: %s value %q is not a quoted string", key, raw)
	}
	return raw[1 : len(raw)-1], nil
}

// headerValue returns the raw token following "'key':", up to the field
// separator. Tuple values keep their parentheses.
func headerValue(header, key string) (string, error) {
	marker := "'" + key + "':"
	idx := strings.Index(header, marker)
	if idx < 0 {
		return "", fmt.Errorf("npy: header field %q missing", key)
	}
	rest := strings.TrimLeft(header[idx+len(marker):], " ")
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return "", fmt.Errorf("npy: unterminated tuple for %q", key)
		}
		return rest[:end+1], nil
	}
	end := strings.IndexAny(rest, ",}")
	if end < 0 {
		end = len(rest)
	}
	return strings.TrimSpace(rest[:end]), nil
}

func parseShape(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "(") || !strings.HasSuffix(raw, ")") {
		return nil, fmt.Errorf("npy: shape %q is not a tuple", raw)
	}
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return nil, nil
	}
	parts := strings.Split(inner, ",")
	shape := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue // trailing comma of 1-tuples
		}
		dim, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("npy: bad shape dimension %q: %w", part, err)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}
