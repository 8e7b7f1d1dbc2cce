package dataset

import (
	"encoding/json"
	"fmt"
)

// Parameters identifies a remote parameter class and carries its values.
type Parameters struct {
	// Module is the import path of the parameter class on the remote side,
	// e.g. "cdl.param".
	Module string
	// Class is the parameter class name, e.g. "MovingAverageParam".
	Class string
	// Values holds parameter values keyed by the remote item names.
	Values map[string]any
	// Raw is the JSON document as received from the remote application. It
	// is populated on decode and preferred over Values when re-encoding so
	// unmodeled values survive a round trip.
	Raw json.RawMessage
}

// New returns an empty parameter set for the given remote class.
func New(module, class string) *Parameters {
	return &Parameters{Module: module, Class: class, Values: make(map[string]any)}
}

// Set assigns a parameter value and returns the receiver for chaining.
func (p *Parameters) Set(name string, value any) *Parameters {
	if p.Values == nil {
		p.Values = make(map[string]any)
	}
	p.Values[name] = value
	p.Raw = nil // Values now take precedence
	return p
}

// Get returns a parameter value and whether it is present.
func (p *Parameters) Get(name string) (any, bool) {
	value, ok := p.Values[name]
	return value, ok
}

// Float returns a numeric parameter as float64. JSON numbers decode as
// float64, so remote results are reachable through this accessor.
func (p *Parameters) Float(name string) (float64, bool) {
	value, ok := p.Values[name]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// String returns a string parameter value.
func (p *Parameters) String(name string) (string, bool) {
	value, ok := p.Values[name]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// MarshalList renders the wire form: [module, class, json].
func (p *Parameters) MarshalList() ([]string, error) {
	if p.Module == "" || p.Class == "" {
		return nil, fmt.Errorf("dataset: module and class must be set")
	}
	payload := p.Raw
	if payload == nil {
		encoded, err := json.Marshal(p.Values)
		if err != nil {
			return nil, fmt.Errorf("dataset: encode values: %w", err)
		}
		payload = encoded
	}
	return []string{p.Module, p.Class, string(payload)}, nil
}

// UnmarshalList parses the wire form back into Parameters.
func UnmarshalList(triple []string) (*Parameters, error) {
	if len(triple) != 3 {
		return nil, fmt.Errorf("dataset: expected 3 elements, got %d", len(triple))
	}
	p := &Parameters{
		Module: triple[0],
		Class:  triple[1],
		Raw:    json.RawMessage(triple[2]),
		Values: make(map[string]any),
	}
	if len(triple[2]) > 0 {
		if err := json.Unmarshal(p.Raw, &p.Values); err != nil {
			// Keep the raw payload even when it is not a flat object.
			p.Values = nil
		}
	}
	return p, nil
}

// FromAnyList converts a decoded RPC value (a list whose elements should be
// strings) into Parameters.
func FromAnyList(values []any) (*Parameters, error) {
	if len(values) != 3 {
		return nil, fmt.Errorf("dataset: expected 3 elements, got %d", len(values))
	}
	triple := make([]string, 3)
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("dataset: element %d is %T, not string", i, v)
		}
		triple[i] = s
	}
	return UnmarshalList(triple)
}
