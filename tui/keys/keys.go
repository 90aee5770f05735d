package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Tab    key.Binding
	Quit   key.Binding
	Help   key.Binding

	AddRouter key.Binding
	AddSwitch key.Binding
	AddAP     key.Binding
	AddServer key.Binding
	AddClient key.Binding

	Connect  key.Binding
	Edit     key.Binding
	Services key.Binding
	Settings key.Binding
	Delete   key.Binding

	Ping       key.Binding
	Traceroute key.Binding
	SNMPTest   key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "right")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

	AddRouter: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "add router")),
	AddSwitch: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "add switch")),
	AddAP:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "add access point")),
	AddServer: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "add server")),
	AddClient: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "add client")),

	Connect:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit device")),
	Services: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "services")),
	Settings: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "global settings")),
	Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),

	Ping:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "ping now")),
	Traceroute: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "traceroute")),
	SNMPTest:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "snmp test")),
}
