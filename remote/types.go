package remote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SignalAttrs carries optional axis metadata for AddSignal. Empty fields are
// left to the application's defaults.
type SignalAttrs struct {
	XUnit  string
	YUnit  string
	XLabel string
	YLabel string
}

// ImageAttrs carries optional axis metadata for AddImage. Empty fields are
// left to the application's defaults.
type ImageAttrs struct {
	XUnit  string
	YUnit  string
	ZUnit  string
	XLabel string
	YLabel string
	ZLabel string
}

// Ref identifies a workspace object or group either by 1-based index or by
// UUID. Exactly one of the two fields is set.
type Ref struct {
	Index int
	UUID  string
}

// IndexRef builds a reference from a 1-based index.
func IndexRef(index int) Ref { return Ref{Index: index} }

// UUIDRef builds a reference from an object UUID.
func UUIDRef(id string) Ref { return Ref{UUID: id} }

// ParseRef interprets s as a 1-based index when it is an integer, otherwise
// as a UUID.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if index, err := strconv.Atoi(s); err == nil {
		if index < 1 {
			return Ref{}, fmt.Errorf("object index %d must be >= 1", index)
		}
		return IndexRef(index), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return Ref{}, fmt.Errorf("%q is neither an index nor a UUID: %w", s, err)
	}
	return UUIDRef(id.String()), nil
}

// ParseRefs parses a list of index/UUID strings.
func ParseRefs(values []string) ([]Ref, error) {
	refs := make([]Ref, 0, len(values))
	for _, value := range values {
		ref, err := ParseRef(value)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// wireValue renders the reference as the RPC value the server expects.
func (r Ref) wireValue() (any, error) {
	switch {
	case r.UUID != "":
		return r.UUID, nil
	case r.Index >= 1:
		return r.Index, nil
	default:
		return nil, fmt.Errorf("empty object reference")
	}
}

func refValues(refs []Ref) ([]any, error) {
	values := make([]any, 0, len(refs))
	for _, ref := range refs {
		value, err := ref.wireValue()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
