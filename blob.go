package txmanifest

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/blake2b"
)

// HashBlob returns the blake2b-256 digest that Blob values use to refer to b.
func HashBlob(b []byte) common.Hash {
	return common.Hash(blake2b.Sum256(b))
}

// BlobRef returns a Blob value referring to b.
func BlobRef(b []byte) *BlobValue {
	return &BlobValue{Hash: HashBlob(b)}
}
