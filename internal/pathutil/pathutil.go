// Package pathutil normalizes the virtual folder paths used to address
// content and node-player folders. Paths are case-sensitive, use "/" as the
// separator and the bare root drive is the literal "/" (never stored as a
// folder row).
package pathutil

import "strings"

// RootPath is the root drive sentinel. It has no backing folder row.
const RootPath = "/"

// Separator separates path segments. Folder names may not contain it.
const Separator = "/"

// Normalize returns the canonical form of a folder path. It is total: any
// input yields a best-effort canonical path rather than an error. Missing
// root prefixes are added, redundant separators collapsed and trailing
// separators trimmed. Normalize is idempotent.
func Normalize(path string) string {
	segments := Split(path)
	if len(segments) == 0 {
		return RootPath
	}
	return RootPath + strings.Join(segments, Separator)
}

// IsRootDrive reports whether path addresses the root drive.
func IsRootDrive(path string) bool {
	return Normalize(path) == RootPath
}

// Join computes the canonical path of a child named name under parentPath.
// A root-drive parent collapses to "/" + name.
func Join(parentPath, name string) string {
	parent := Normalize(parentPath)
	if parent == RootPath {
		return RootPath + name
	}
	return parent + Separator + name
}

// Dir returns the canonical parent path of path, or the root sentinel when
// path is a top-level folder (or the root itself).
func Dir(path string) string {
	segments := Split(path)
	if len(segments) <= 1 {
		return RootPath
	}
	return RootPath + strings.Join(segments[:len(segments)-1], Separator)
}

// Base returns the last segment of path, or "" for the root drive.
func Base(path string) string {
	segments := Split(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// Split returns the non-empty segments of path in order.
func Split(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, Separator) {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
