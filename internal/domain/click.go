package domain

// ClickType classifies how a user interacted with a panel slot
type ClickType int

const (
	ClickUnknown ClickType = iota
	ClickLeft
	ClickShiftLeft
	ClickRight
	ClickShiftRight
	ClickMiddle
	ClickDrop
	ClickControlDrop
	ClickDouble
	ClickNumberKey
)

var clickTypeNames = map[ClickType]string{
	ClickUnknown:     "unknown",
	ClickLeft:        "left",
	ClickShiftLeft:   "shift_left",
	ClickRight:       "right",
	ClickShiftRight:  "shift_right",
	ClickMiddle:      "middle",
	ClickDrop:        "drop",
	ClickControlDrop: "control_drop",
	ClickDouble:      "double_click",
	ClickNumberKey:   "number_key",
}

func (c ClickType) String() string {
	if name, ok := clickTypeNames[c]; ok {
		return name
	}
	return clickTypeNames[ClickUnknown]
}

// IsShiftClick reports whether shift was held
func (c ClickType) IsShiftClick() bool {
	return c == ClickShiftLeft || c == ClickShiftRight
}
