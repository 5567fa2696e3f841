package panel

import "github.com/osse101/PanelKit_Go/internal/domain"

// Panel is the surface a clicked item lives in
type Panel interface {
	Name() string
	Item(slot int) (*Item, bool)
}

// ClickHandler reacts to a user clicking an item
type ClickHandler interface {
	// OnClick is executed when the icon is clicked.
	// It returns true if the click event should be cancelled.
	OnClick(p Panel, user domain.User, clickType domain.ClickType, slot int) bool
}

// ClickHandlerFunc adapts a function to the ClickHandler interface
type ClickHandlerFunc func(p Panel, user domain.User, clickType domain.ClickType, slot int) bool

// OnClick calls f(p, user, clickType, slot)
func (f ClickHandlerFunc) OnClick(p Panel, user domain.User, clickType domain.ClickType, slot int) bool {
	return f(p, user, clickType, slot)
}
