package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Panel metric names
const (
	MetricNamePanelClicks    = "panel_clicks_total"
	MetricNameItemMetaSyncs  = "panel_item_meta_syncs_total"
	MetricNameHeadLookups    = "panel_head_lookups_total"
	MetricNameHeadResolveErr = "panel_head_resolve_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextPanelClicks    = "Total number of clicks dispatched to panel items"
	HelpTextItemMetaSyncs  = "Total number of item metadata re-derivations by field"
	HelpTextHeadLookups    = "Total number of player head profile lookups by cache result"
	HelpTextHeadResolveErr = "Total number of failed player head resolutions"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelClickType = "click_type"
	LabelCancelled = "cancelled"
	LabelField     = "field"
	LabelResult    = "result"
)

const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)
