// Package pbxproj normalizes Xcode project-descriptor files so that
// independently edited copies merge deterministically.
//
// The package understands three anchor constructs of the descriptor format:
// "files = (" lists, "children = (" lists, and "buildSettings = {" blocks.
// List sections are deduplicated by exact line text and sorted with
// kind-specific comparators; conflicting CURRENT_PROJECT_VERSION
// declarations collapse to one globally resolved value. Everything else
// passes through verbatim.
//
// Typical usage:
//
//	report, err := pbxproj.FormatFile("project.pbxproj", pbxproj.Options{
//		Policy: pbxproj.PolicyHighest,
//	})
//
// Normalization is fail-fast: a member line that does not match its
// extraction pattern aborts the run before anything is committed to the
// real path. FormatFile writes to a sibling temp file and renames it over
// the original, so a failed run never leaves a half-written descriptor.
package pbxproj
