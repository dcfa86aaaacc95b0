// Package csstats reads the binary ranking file written by the game server's
// statistics mod. The file is little-endian: a 2-byte signed format version,
// then a stream of variable-length player records terminated by a record
// whose name-length prefix is zero.
package csstats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTruncated reports that the input ended before a complete header or
// record could be read. Decoding is all or nothing: a truncated file yields
// no records at all.
var ErrTruncated = errors.New("unexpected end of ranking file")

// UnsupportedVersionError reports a ranking file whose header version does
// not match FormatVersion.
type UnsupportedVersionError struct {
	Version int16
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported ranking file version %d (want %d)", e.Version, FormatVersion)
}

// Decode reads a complete ranking file from r and returns its records in
// file order. Any short read aborts the decode with ErrTruncated; a version
// mismatch aborts with *UnsupportedVersionError. A partial record sequence
// is never returned.
func Decode(r io.Reader) ([]PlayerRecord, error) {
	version, err := readInt16(r)
	if err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	nameLen, err := readUint16(r)
	if err != nil {
		return nil, err
	}

	var records []PlayerRecord
	for nameLen != 0 {
		rec, err := readRecord(r, nameLen)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)

		// The trailing length prefix belongs to the next record, or
		// terminates the stream when zero.
		if nameLen, err = readUint16(r); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// DecodeFile opens and decodes the ranking file at path. Errors name the
// failing file.
func DecodeFile(path string) ([]PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ranking file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return records, nil
}

func readRecord(r io.Reader, nameLen uint16) (PlayerRecord, error) {
	name, err := readString(r, nameLen)
	if err != nil {
		return PlayerRecord{}, err
	}

	authLen, err := readUint16(r)
	if err != nil {
		return PlayerRecord{}, err
	}
	authID, err := readString(r, authLen)
	if err != nil {
		return PlayerRecord{}, err
	}

	var counters [11]uint32
	if err = readBlock(r, &counters); err != nil {
		return PlayerRecord{}, err
	}

	var secondary [9]uint32
	if err = readBlock(r, &secondary); err != nil {
		return PlayerRecord{}, err
	}

	return PlayerRecord{
		Name:             name,
		AuthID:           authID,
		Teamkills:        counters[0],
		Damage:           counters[1],
		Deaths:           counters[2],
		Kills:            counters[3],
		ShotsFired:       counters[4],
		ShotsHit:         counters[5],
		Headshots:        counters[6],
		BombsDefused:     counters[7],
		DefuseAttempts:   counters[8],
		BombsPlanted:     counters[9],
		ExplosionsCaused: counters[10],
		SecondaryHits:    secondary,
	}, nil
}

// readString reads exactly n bytes and interprets them as a null-terminated
// string: bytes past the first zero byte within the span are ignored.
func readString(r io.Reader, n uint16) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", truncated(err)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

func readBlock(r io.Reader, v any) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return truncated(err)
	}
	return nil
}

func readInt16(r io.Reader) (int16, error) {
	var v int16
	if err := readBlock(r, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func readUint16(r io.Reader) (uint16, error) {
	var v uint16
	if err := readBlock(r, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// truncated maps end-of-input conditions to ErrTruncated and leaves real
// I/O failures untouched.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
