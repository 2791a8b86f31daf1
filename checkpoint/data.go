package checkpoint

// FrameSnapshot is the persisted image of one cont.Frame: enough to
// reconstruct a Continuation chain's shape without reconstructing the
// chain itself, per spec.md §6 ("every live Continuation frame's
// code-location + primitive-locals + object-locals").
//
// Object holds whatever an Encoder produced for each non-primitive local
// that needed one; locals that are already checkpoint-safe values (nil,
// bool, string, number, *value.Value) are carried as-is and need no class
// encoder.
type FrameSnapshot struct {
	Location  int
	Primitive []int64
	Object    []any
}

// Data is the opaque-to-the-core byte-free snapshot spec.md §6 names: a
// script-id, a monotonic checkpoint-id, a globals snapshot, the frame
// chain bottom-to-top, and any per-class encoded blobs a class.Descriptor's
// CheckpointCodec produced for instance fields the runtime itself doesn't
// know how to serialize.
//
// Data is not itself a byte sequence — spec.md's "opaque byte sequence"
// wording describes what a host.CheckpointHost is ultimately handed; the
// translation from Data to bytes is the encoding implementation this
// package deliberately omits (see package doc).
type Data struct {
	ScriptID     string
	CheckpointID string
	Globals      map[string]any
	Frames       []FrameSnapshot

	// ClassBlobs holds one encoded blob per class-instance value
	// encountered while walking Globals/Frames, keyed by an index the
	// encoding layer assigns; the core runtime never interprets the blob
	// contents, only routes them to/from the owning class's Encoder/Decoder.
	ClassBlobs map[int][]byte
}

// Encoder is implemented by a class whose instances hold fields the
// runtime cannot snapshot generically (e.g. a foreign resource handle).
// Encode is called once per live instance reachable from a checkpoint.
type Encoder interface {
	EncodeCheckpoint(instance any) ([]byte, error)
}

// Decoder is an Encoder's inverse, used when restoring a checkpoint:
// DecodeCheckpoint reconstructs an instance's foreign-field state from the
// bytes a matching Encoder previously produced.
type Decoder interface {
	DecodeCheckpoint(blob []byte) (any, error)
}

// Codec pairs an Encoder and Decoder for one class, the "optional
// checkpoint/restore encoder pair" spec.md §6's create-class builder
// attaches to a ClassDescriptor.
type Codec struct {
	Encoder Encoder
	Decoder Decoder
}
