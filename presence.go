package gapi

// Presence is the bit flag recording how a property entered the store.
type Presence uint8

const (
	// PresenceSeen marks a property set through an argument or dynamic set.
	PresenceSeen Presence = 1 << iota
	// PresenceDefaultApplied marks a name registered by the defaults stage,
	// value unset.
	PresenceDefaultApplied
	// PresenceChildBuilt marks a subordinate installed by the hierarchy
	// stage or by Sprout.
	PresenceChildBuilt
)

// PresenceMap maps property names to Presence flags.
type PresenceMap map[string]Presence
