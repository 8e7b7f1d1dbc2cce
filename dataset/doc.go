// Package dataset models the structured compute parameters exchanged with
// DataLab. On the wire a parameter set travels as a three-element string
// list: the remote parameter class's module path, its class name, and a JSON
// document holding the parameter values.
//
// Parameters is deliberately schema-free: the remote application owns the
// parameter classes, so values are carried as a map keyed by the remote item
// names. Decoded results keep the raw JSON so values this client does not
// model still round-trip.
package dataset
