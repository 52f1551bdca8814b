// Package fs provides the read-side filesystem abstraction used by
// ingestion, plus fault injection for tests.
//
//   - [FileSystem]: open files and list directories
//   - [LocalFS]: production implementation on the os package
//   - [FaultyFS]: wraps a FileSystem and injects open/read/list errors
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.Open(path)
//
// Tests inject a FaultyFS:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("broken.csv", fs.Fault{FailAfterBytes: 16})
//
// There are no context.Context parameters: local filesystem calls are not
// interruptible at the syscall level.
package fs
