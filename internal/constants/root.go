package constants

const (
	AppName = "vitalog"
	Version = "v0.3.0"

	// ExportAppID and ExportSchemaVersion identify current-view export
	// payloads. They match the identifiers the original browser app wrote,
	// so exported documents stay interchangeable.
	ExportAppID         = "bp-chatlog"
	ExportSchemaVersion = 4

	DefaultDataPath = "~/.config/vitalog"

	// EntriesKey is the storage key the current schema writes the entry
	// collection under. Older keys are listed in EntryKeys.
	EntriesKey     = "bp_chatlog_items_v4"
	CatalogKey     = "bp_chatlog_meds_v1"
	WaterTargetKey = "bp_chatlog_water_target_ml_v1"

	// DefaultWaterTargetMl is used when no target is stored or the stored
	// value is not a positive number.
	DefaultWaterTargetMl = 2000

	// DefaultEntryType is assumed for entries from schema versions that
	// tagged entries with a type but left the tag empty.
	DefaultEntryType = "log"

	// ScaleMin and ScaleMax bound the severity and anxiety scales.
	ScaleMin = 0
	ScaleMax = 10
)

// EntryKeys lists every storage key that has ever held the entry
// collection, newest schema first. Loading probes them in order and stops
// at the first key that yields a readable collection.
var EntryKeys = []string{
	"bp_chatlog_items_v4",
	"bp_chatlog_items_v3",
	"bp_chatlog_items_v2",
	"bp_chatlog_items",
}
