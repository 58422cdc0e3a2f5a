package model

const EntityName = "legacy_booking"

// Stats partitions the booking collection by legacy flag. Unflagged records sit in neither
// the legacy nor the non-legacy bucket until a migration runs.
type Stats struct {
	Total           int64 `bson:"total"`
	Legacy          int64 `bson:"legacy"`
	NonLegacy       int64 `bson:"nonLegacy"`
	Unflagged       int64 `bson:"unflagged"`
	Cancelled       int64 `bson:"cancelled"`
	ActiveNonLegacy int64 `bson:"activeNonLegacy"`
}

// Partitioned is true once every record carries an explicit flag.
func (s Stats) Partitioned() bool {
	return s.Legacy+s.NonLegacy == s.Total
}
