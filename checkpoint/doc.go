// Package checkpoint defines the data-only contract spec.md §6 names for
// persisting a suspended script: [Data], the opaque-to-the-core snapshot a
// host.CheckpointHost is handed to store, and the narrow [Encoder]/[Decoder]
// interfaces a class.Descriptor may register to (de)serialize its own
// instance fields into that snapshot.
//
// No encoding implementation lives here — spec.md §1 carves the checkpoint
// persistence layer out as an external collaborator, and §5's Non-goals
// explicitly exclude "persisting captured continuations across process
// restarts" from the core's job. This package only gives the runtime and a
// host application a shared vocabulary to exchange checkpoint bytes in.
package checkpoint
