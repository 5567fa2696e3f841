package panel

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/logger"
	"github.com/osse101/PanelKit_Go/internal/metrics"
)

// Menu is a fixed-size panel that holds items by slot and dispatches clicks to them
type Menu struct {
	name  string
	size  int
	items map[int]*Item
}

// NewMenu creates an empty menu with the given number of slots
func NewMenu(name string, size int) (*Menu, error) {
	if size <= 0 {
		return nil, fmt.Errorf(ErrFmtInvalidSize, domain.ErrInvalidInput, size)
	}
	return &Menu{
		name:  name,
		size:  size,
		items: make(map[int]*Item, size),
	}, nil
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Size() int {
	return m.size
}

// SetItem places item in slot, replacing any previous item. A nil item clears the slot.
func (m *Menu) SetItem(slot int, item *Item) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}
	if item == nil {
		delete(m.items, slot)
		return nil
	}
	m.items[slot] = item
	return nil
}

// Item returns the item in slot
func (m *Menu) Item(slot int) (*Item, bool) {
	item, ok := m.items[slot]
	return item, ok
}

// Click dispatches a click on slot to the item's handler.
// It returns whether the triggering event should be cancelled; inert slots never cancel.
func (m *Menu) Click(ctx context.Context, user domain.User, clickType domain.ClickType, slot int) (bool, error) {
	if err := m.checkSlot(slot); err != nil {
		return false, err
	}

	log := logger.FromContext(ctx).With("panel", m.name, "slot", slot, "click_type", clickType.String())

	item, ok := m.items[slot]
	if !ok {
		log.Debug(LogMsgClickIgnored)
		return false, nil
	}
	handler, ok := item.ClickHandler()
	if !ok {
		log.Debug(LogMsgClickIgnored)
		return false, nil
	}

	cancel := handler.OnClick(m, user, clickType, slot)

	metrics.PanelClicks.WithLabelValues(clickType.String(), strconv.FormatBool(cancel)).Inc()
	log.Debug(LogMsgClickDispatched, "user", user.Username, "cancelled", cancel)

	return cancel, nil
}

func (m *Menu) checkSlot(slot int) error {
	if slot < 0 || slot >= m.size {
		return fmt.Errorf(ErrFmtSlotOutOfRange, domain.ErrSlotOutOfRange, slot, m.size)
	}
	return nil
}
