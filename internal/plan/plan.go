// Package plan holds the fixed publish plan: the branch to create, the
// paths to stage, and the commit message to use. These are build-time
// constants, not runtime configuration.
package plan

import (
	"fmt"
	"strings"
)

// Plan describes one publish run: a branch, the ordered paths to stage,
// and the commit message.
type Plan struct {
	Branch  string
	Files   []string
	Message string
}

// BranchName is the branch created and checked out by the publish run.
const BranchName = "feature/interactive-map"

// CommitMessage is committed verbatim, embedded list formatting included.
const CommitMessage = `Add interactive map with location detail views

- Add InteractiveMap component with markers, popups and controls
- Add map data hook and locations API client
- Add location detail views linked from map markers
- Add shared map types`

// Files is the ordered list of paths staged before the commit.
var Files = []string{
	"src/components/map/InteractiveMap.tsx",
	"src/components/map/InteractiveMap.css",
	"src/components/map/MapMarker.tsx",
	"src/components/map/MapPopup.tsx",
	"src/components/map/MapControls.tsx",
	"src/components/map/useMapData.ts",
	"src/components/details/LocationDetail.tsx",
	"src/components/details/LocationDetail.css",
	"src/components/details/DetailHeader.tsx",
	"src/components/details/DetailGallery.tsx",
	"src/api/locations.ts",
	"src/types/map.ts",
}

// Default returns the built-in publish plan.
func Default() Plan {
	files := make([]string, len(Files))
	copy(files, Files)
	return Plan{
		Branch:  BranchName,
		Files:   files,
		Message: CommitMessage,
	}
}

// Validate checks that the plan is runnable
func (p Plan) Validate() error {
	if p.Branch == "" {
		return fmt.Errorf("plan has no branch name")
	}
	if strings.ContainsAny(p.Branch, " ~^:?*[\\") || strings.HasSuffix(p.Branch, "/") {
		return fmt.Errorf("invalid branch name: %s", p.Branch)
	}
	if len(p.Files) == 0 {
		return fmt.Errorf("plan has no files to stage")
	}
	for _, file := range p.Files {
		if file == "" {
			return fmt.Errorf("plan contains an empty path")
		}
	}
	if strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("plan has no commit message")
	}
	return nil
}

// Subject returns the first line of the commit message
func (p Plan) Subject() string {
	subject, _, _ := strings.Cut(p.Message, "\n")
	return subject
}

// Summary returns a human-readable description of the plan for the plan command
func (p Plan) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Branch:  %s\n", p.Branch)
	fmt.Fprintf(&b, "Files:   %d\n", len(p.Files))
	for _, file := range p.Files {
		fmt.Fprintf(&b, "  %s\n", file)
	}
	fmt.Fprintf(&b, "Message:\n")
	for _, line := range strings.Split(p.Message, "\n") {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}
