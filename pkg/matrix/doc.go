// Package matrix derives a CI build matrix of interpreter versions from a
// repository's tag list.
//
// # Overview
//
// A [Builder] walks the tag names of a repository exactly once, passes each
// through a [Filter], and collects the normalized "major.minor" strings in
// first-seen order. The result is a [Matrix] pairing those versions with a
// fixed list of runner operating systems:
//
//	{"os": ["ubuntu-22.04", "windows-2022", "macos-14"], "python-version": ["3.10", "3.11", "3.7"]}
//
// # Filters
//
// [LexicalFilter] is the default. It rejects any tag containing "a", "b",
// "c", "rc" or "-", which removes alpha, beta and candidate tags but also
// any final release whose text happens to contain those letters. That
// over-exclusion is kept on purpose so matrices stay identical to the ones
// earlier CI runs produced.
//
// [SemverFilter] parses tags as semantic versions instead and checks them
// against a constraint such as ">= 3.7, < 4". It is opt-in.
//
// # Output
//
// [Builder.Run] lists tags from a [Source], builds the matrix and hands the
// encoded JSON to an [Output] under the name "matrix". Nothing is written if
// listing fails.
package matrix
