// Package cidutil derives content identifiers for canonical numeral bytes.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length this is unreachable.
		return ""
	}
	return id.String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Verify reports whether id is the raw sha2-256 CIDv1 of data.
func Verify(id string, data []byte) error {
	want, err := cid.Decode(id)
	if err != nil || !want.Defined() {
		return fmt.Errorf("invalid CID %q", id)
	}
	got, err := CIDv1RawSHA256CID(data)
	if err != nil {
		return err
	}
	if !got.Equals(want) {
		return fmt.Errorf("CID mismatch: got %s want %s", got, want)
	}
	return nil
}
