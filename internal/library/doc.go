// Package library stores converted books in a local directory catalogued
// by a SQLite database.
//
// Layout of a library directory:
//
//	books/        copied book files, named <uuid>.<ext>
//	library.db    catalog (id, title, format, path, added_at)
//	library.lock  lock file held while books are imported
//
// Imports from several processes are serialized by the lock file, so two
// fetch commands finishing together never interleave their writes.
package library
