// Package handtrace records multi-touch finger positions and edits them
// as vector data.
//
// # Overview
//
// handtrace tracks live pointer contacts on a touch surface, captures
// them as five-slot hand poses (a resting "start" pose and a stretched
// "finish" pose per hand), and edits the captured points: dragging
// individual fingers, scaling and rotating a whole hand about its
// centroid, with linear undo/redo. Rendering is kept out of the core;
// the render/ and export/ sub-packages draw sessions as PNG diagrams and
// printable PDF sheets, and integration/ebitentouch/ feeds real input
// devices into a session.
//
// # Quick Start
//
//	import "github.com/handlab/handtrace"
//
//	s := handtrace.NewSession()
//
//	// Feed pointer events from the input layer.
//	s.PointerDown(0, handtrace.Pt(120, 300))
//	s.PointerDown(1, handtrace.Pt(180, 280))
//	s.RecordPose(handtrace.PoseStart)
//
//	// Edit the captured pose.
//	s.SetScale(1.5)
//	s.Undo()
//
// # Architecture
//
// A Session wires three pieces together:
//   - Tracker: ingests pointer-down/move/up events, keeps live contacts
//     with their full paths, archives completed strokes per hand
//   - recorder (BuildPose): turns live contacts into a pose, leftmost
//     finger in slot 0
//   - editor: hit testing, drags, centroid transforms, undo/redo
//
// # Coordinate System
//
// Surface coordinates follow graphics convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Sessions and trackers are single-goroutine objects: drive each one
// from its UI event loop and every command is atomic without locking.
// Only SetLogger/Logger are safe for concurrent use.
package handtrace

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
