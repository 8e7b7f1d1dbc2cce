// Package main hosts the dlab CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into XML-RPC
// calls against a running DataLab instance: listing and selecting workspace
// objects, pushing signal and image arrays, running compute functions, and
// driving HDF5 save/import. It centralizes configuration resolution, port
// discovery, and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: remote semantics belong in the remote package and
// codecs in npy/dataset; commands here should only parse flags, call the
// proxy, and render results.
package main
