// Package mockfile provides an in-memory stand-in for the serializer's
// on-disk file.
//
// Serializer and storage-engine tests run against [MockFile] handles instead
// of real files. The handles enforce the same asynchronous I/O contract a
// direct-I/O disk file does:
//
//   - offsets, lengths and buffer addresses are multiples of the device
//     block size ([DeviceBlockSize] unless configured otherwise)
//   - reads need a readable handle, writes a writable one
//   - accesses stay inside the current file size
//   - completion callbacks run on a later scheduler turn, never inside the
//     call that submitted the operation
//
// Breaking any of these rules is a bug in the caller, so it aborts with a
// [*ViolationError] panic instead of returning an error.
//
// # Lifecycle
//
// [FileOpener] plays the part of the filesystem during serializer bootstrap:
//
//	loop := sched.NewLoop()
//	opener := mockfile.NewFileOpener(mockfile.WithScheduler(loop))
//
//	f := opener.OpenCreateTemporary() // NoFile -> Temporary
//	opener.MoveToPermanent()          // Temporary -> Permanent
//	g := opener.OpenExisting()        // same contents as f
//	opener.Unlink()                   // Permanent -> Unlinked
//
// # Asynchronous I/O
//
//	f.SetSizeAtLeast(mockfile.DeviceBlockSize)
//	buf := mockfile.AlignedBuffer(mockfile.DeviceBlockSize)
//	f.WriteAsync(0, len(buf), buf, nil, mockfile.CallbackFunc(func() {
//	    // runs during loop.RunPending, not here
//	}), mockfile.NoDatasyncs)
//	loop.RunPending()
//
// # Semantic checking
//
// Openers created [WithSemanticChecking] also hand out
// [SemanticCheckingFile] streams over a separate buffer, used to replay and
// compare the byte stream a cross-checking harness expects.
package mockfile
