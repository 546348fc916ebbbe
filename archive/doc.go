// Package archive implements a genome-to-topology-name lookup table: an
// immutable map during lookup (RLock), exclusive mutation (Lock), and
// atomic persistence via temp-file-plus-rename. Archive modification is a
// separate mode from lookup, acquiring exclusive ownership for the
// duration of the write.
package archive
