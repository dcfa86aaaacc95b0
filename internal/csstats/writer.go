package csstats

import (
	"encoding/binary"
	"io"
)

// Encode writes records in the ranking file layout. Strings are written with
// a trailing null byte included in their length prefix, matching what the
// stats mod produces. Mainly useful for building fixtures.
func Encode(w io.Writer, records []PlayerRecord) error {
	if err := binary.Write(w, binary.LittleEndian, int16(FormatVersion)); err != nil {
		return err
	}

	for _, rec := range records {
		if err := writeString(w, rec.Name); err != nil {
			return err
		}
		if err := writeString(w, rec.AuthID); err != nil {
			return err
		}

		counters := [11]uint32{
			rec.Teamkills,
			rec.Damage,
			rec.Deaths,
			rec.Kills,
			rec.ShotsFired,
			rec.ShotsHit,
			rec.Headshots,
			rec.BombsDefused,
			rec.DefuseAttempts,
			rec.BombsPlanted,
			rec.ExplosionsCaused,
		}
		if err := binary.Write(w, binary.LittleEndian, counters); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, rec.SecondaryHits); err != nil {
			return err
		}
	}

	// zero name length terminates the stream
	return binary.Write(w, binary.LittleEndian, uint16(0))
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s)+1)); err != nil {
		return err
	}
	if _, err := w.Write(append([]byte(s), 0)); err != nil {
		return err
	}
	return nil
}
