package panel

// ==================== Marker Levels ====================

const (
	// GlowLevel is the lure marker power used for the glow state
	GlowLevel = 0
	// InvisibleLevel is the vanishing curse marker power used for the invisible state
	InvisibleLevel = 1
)

// ==================== Defaults ====================

const (
	DefaultAmount = 1
)

// ==================== Error Messages ====================

const (
	ErrFmtSlotOutOfRange = "%w: slot %d not in [0, %d)"
	ErrFmtInvalidSize    = "%w: panel size must be positive, got %d"
)

// ==================== Log Messages ====================

const (
	LogMsgMetaUnsupported = "Panel item icon has no metadata, display updates disabled"
	LogMsgIconReplaced    = "Panel item icon replaced"
	LogMsgClickDispatched = "Panel click dispatched"
	LogMsgClickIgnored    = "Panel click on inert slot"
)
