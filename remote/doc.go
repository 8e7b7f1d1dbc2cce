// Package remote is the client-side proxy to a running DataLab instance.
//
// DataLab exposes its control API on a local XML-RPC server whose port it
// publishes through the CDL_XMLRPCPORT environment variable or its own
// settings file. Connect discovers that port, opens the connection with
// bounded retries, and probes it with get_version. The resulting Client
// exposes one method per remote operation: adding signal/image data,
// selecting objects and groups, switching panels, running compute functions,
// and saving or loading HDF5 files.
//
// Array arguments are encoded with package npy and travel as XML-RPC base64
// blobs; structured compute parameters use package dataset. Every method is
// a single synchronous call; the client adds no caching or batching.
package remote
