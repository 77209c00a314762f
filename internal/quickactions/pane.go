package quickactions

import (
	"strings"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
)

const (
	pathSplitHorizontal = "Pane/Split Horizontal"
	pathSplitVertical   = "Pane/Split Vertical"
	pathZoom            = "Pane/Zoom"
	pathSynchronize     = "Pane/Synchronize"
	pathKillPane        = "Pane/Kill"
)

// layoutPath maps a tmux layout name such as "even-horizontal" to
// "Pane/Layout/Even Horizontal".
func layoutPath(layout string) string {
	words := strings.Split(layout, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return "Pane/Layout/" + strings.Join(words, " ")
}

// PaneModule declares the pane commands. While the window is zoomed the Zoom
// validator hides every layout command.
func PaneModule(c *Context) action.Module {
	return func(r *action.Registry) {
		register(r, action.Descriptor{
			Path:        pathSplitHorizontal,
			Description: "split the pane side by side",
			Priority:    panePriority,
			Action:      func() error { return c.host.SplitPane(true) },
		})
		register(r, action.Descriptor{
			Path:        pathSplitVertical,
			Description: "split the pane top and bottom",
			Priority:    panePriority,
			Action:      func() error { return c.host.SplitPane(false) },
		})
		register(r, action.Descriptor{
			Path:        pathZoom,
			Description: "toggle pane zoom",
			Priority:    panePriority,
			Action: func() error {
				if err := c.host.ToggleZoom(); err != nil {
					return err
				}
				c.snapshot.WindowZoomed = !c.snapshot.WindowZoomed
				return nil
			},
			Validator: func(s action.StateSink) bool {
				snap := c.Snapshot()
				s.SetChecked(pathZoom, snap.WindowZoomed)
				if snap.WindowZoomed {
					for _, l := range tmux.Layouts {
						s.SetVisible(layoutPath(l), false)
					}
				}
				return len(snap.Panes) > 1
			},
		})
		register(r, action.Descriptor{
			Path:        pathSynchronize,
			Description: "type into every pane of the window at once",
			Priority:    panePriority,
			Action: func() error {
				on := !c.snapshot.Synchronized
				if err := c.host.SetSynchronize(on); err != nil {
					return err
				}
				c.snapshot.Synchronized = on
				return nil
			},
			Validator: func(s action.StateSink) bool {
				snap := c.Snapshot()
				s.SetChecked(pathSynchronize, snap.Synchronized)
				return len(snap.Panes) > 1
			},
		})
		register(r, action.Descriptor{
			Path:        pathKillPane,
			Description: "close the current pane",
			Priority:    panePriority + 5,
			Action:      func() error { return c.host.KillPane() },
			Validator:   func(action.StateSink) bool { return len(c.Snapshot().Panes) > 1 },
		})
		for _, layout := range tmux.Layouts {
			layout := layout
			register(r, action.Descriptor{
				Path:        layoutPath(layout),
				Description: "select-layout " + layout,
				Priority:    panePriority,
				Action:      func() error { return c.host.SelectLayout(layout) },
				Validator:   func(action.StateSink) bool { return len(c.Snapshot().Panes) > 1 },
			})
		}
	}
}
