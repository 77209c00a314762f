package tmux

import (
	"os"
	"strings"
)

// CurrentClientID attempts to detect the client that launched the popup so
// SwitchClient commands can target the visible tmux client instead of the
// control-mode connection.
func CurrentClientID(socketPath string) string {
	client, err := newTmux(socketPath)
	if err != nil {
		return ""
	}
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	name, err := client.DisplayMessage(target, "#{client_name}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// Client runs quick actions against the pane and client that opened the
// popup.
type Client struct {
	Socket string
	// Target is the pane commands apply to; empty means tmux's own default.
	Target string
	// ClientID is the terminal client used by switch-client and detach-client.
	ClientID string
}

// NewClient binds to the invoking pane through $TMUX_PANE.
func NewClient(socketPath string) *Client {
	return &Client{
		Socket:   socketPath,
		Target:   strings.TrimSpace(os.Getenv("TMUX_PANE")),
		ClientID: CurrentClientID(socketPath),
	}
}

// Snapshot fetches the current host state.
func (c *Client) Snapshot() (Snapshot, error) {
	return FetchSnapshot(c.Socket, c.Target)
}

func (c *Client) SplitPane(horizontal bool) error {
	return SplitPane(c.Socket, c.Target, horizontal)
}

func (c *Client) ToggleZoom() error {
	return ToggleZoom(c.Socket, c.Target)
}

func (c *Client) SetSynchronize(on bool) error {
	return SetSynchronize(c.Socket, c.Target, on)
}

func (c *Client) KillPane() error {
	return KillPane(c.Socket, c.Target)
}

func (c *Client) SelectLayout(layout string) error {
	return SelectLayout(c.Socket, c.Target, layout)
}

func (c *Client) NewWindow(session string) error {
	return NewWindow(c.Socket, session)
}

func (c *Client) NextWindow(session string) error {
	return NextWindow(c.Socket, session)
}

func (c *Client) PreviousWindow(session string) error {
	return PreviousWindow(c.Socket, session)
}

func (c *Client) KillWindow(target string) error {
	return KillWindow(c.Socket, target)
}

func (c *Client) SelectWindow(target string) error {
	return SelectWindow(c.Socket, target)
}

func (c *Client) NewSession() error {
	name, err := NewSession(c.Socket, "")
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	return SwitchClient(c.Socket, c.ClientID, name)
}

func (c *Client) Detach() error {
	return DetachClient(c.Socket, c.ClientID)
}

func (c *Client) SwitchSession(name string) error {
	return SwitchClient(c.Socket, c.ClientID, name)
}
