// Package npy encodes and decodes numeric arrays in the NumPy ".npy" binary
// format, which is what DataLab expects for signal and image payloads on its
// control channel.
//
// The Array type carries dtype, shape, and raw little-endian element data.
// Typed constructors and accessors convert to and from Go slices, while
// Marshal/Unmarshal produce the exact byte stream numpy.save would write for
// a C-contiguous array (format version 1.0; version 2.0 headers are also
// accepted on decode).
//
// Use this package instead of hand-building blobs so array payloads stay
// byte-compatible with what the workbench deserializes on the other side.
package npy
