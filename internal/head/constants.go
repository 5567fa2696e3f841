package head

// Offline profile id namespace input
const offlinePrefix = "OfflinePlayer:"

// ==================== Error Messages ====================

const (
	ErrFmtResolveFailed = "failed to resolve head for '%s': %w"
	ErrFmtEmptyName     = "%w: empty player name"
)

// ==================== Log Messages ====================

const (
	LogMsgHeadResolved = "Player head resolved"
	LogMsgHeadApplied  = "Player head applied"
)
