// Command flexdemo is an interactive playground for the flex layout
// container: every structural parameter of the demo subtree can be
// changed live, and the subtree is rebuilt through a ReactiveNode only
// when a structural parameter actually changes.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/snapshot"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "write a PNG of the layout's bounding boxes to this path and exit")
	width := flag.Int("width", 100, "snapshot canvas width in pixels")
	height := flag.Int("height", 40, "snapshot canvas height in pixels")
	flag.Parse()

	if *snapshotPath != "" {
		if err := writeSnapshot(*snapshotPath, *width, *height); err != nil {
			fmt.Fprintf(os.Stderr, "flexdemo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "flexdemo: %v\n", err)
		os.Exit(1)
	}
}

func writeSnapshot(path string, width, height int) error {
	root := makeRoot()
	root.Attach(flex.NewContext(), initialState())
	return snapshot.Capture[AppState](root, width, height).SavePNG(path)
}
