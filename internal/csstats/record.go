package csstats

// FormatVersion is the only ranking file layout revision this package
// understands. The stats mod bumps it whenever the record layout changes.
const FormatVersion = 11

// PlayerRecord is one player's cumulative stats entry from the ranking file.
// Records are never mutated after decode; file order is rank order.
type PlayerRecord struct {
	Name   string
	AuthID string

	Teamkills        uint32
	Damage           uint32
	Deaths           uint32
	Kills            uint32
	ShotsFired       uint32
	ShotsHit         uint32
	Headshots        uint32
	BombsDefused     uint32
	DefuseAttempts   uint32
	BombsPlanted     uint32
	ExplosionsCaused uint32

	// SecondaryHits is the nine-integer tuple the stats mod appends after the
	// named counters. Its meaning is not part of the published layout, so it
	// is carried opaquely and round-trips through encode/decode untouched.
	SecondaryHits [9]uint32
}
