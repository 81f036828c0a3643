// Package integrity computes and verifies the content hash and keyed
// signature attached to every transaction, so a stored record can be
// authenticated before its balance effect is applied.
package integrity

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/google/uuid"

	"github.com/finledger/wallet-ledger/internal/models"
)

// Signer hashes and signs transactions with an application-wide secret.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer. The secret is treated as an opaque byte string
// supplied by the application's secret store.
func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret}
}

// ComputeHash returns the hex SHA-512 digest over the transaction fields that
// are immutable after creation: wallet id, user id, amount, type, creation
// timestamp, reference and description.
func (s *Signer) ComputeHash(txn *models.TransactionDB) string {
	h := sha512.New()
	h.Write(txn.WalletID[:])
	h.Write(txn.UserID[:])

	amount := make([]byte, 8)
	binary.BigEndian.PutUint64(amount, math.Float64bits(txn.Amount))
	h.Write(amount)

	h.Write([]byte(txn.Type))

	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(txn.CreatedAt.UTC().UnixNano()))
	h.Write(ts)

	h.Write([]byte(txn.Reference))
	h.Write([]byte(txn.Description))

	return hex.EncodeToString(h.Sum(nil))
}

// Sign produces the hex HMAC-SHA256 signature over the digest. For transfer
// legs the linked transaction's identity is bound into the MAC, so a leg
// cannot be replayed against or relinked to a different counterpart without
// invalidating its signature.
func (s *Signer) Sign(digest string, linkedID *uuid.UUID) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(digest))
	if linkedID != nil {
		mac.Write(linkedID[:])
	}
	return hex.EncodeToString(mac.Sum(nil))
}

// Attach computes and stores the hash and signature on the transaction.
func (s *Signer) Attach(txn *models.TransactionDB) {
	txn.Hash = s.ComputeHash(txn)
	txn.Signature = s.Sign(txn.Hash, txn.LinkedID)
}

// Verify recomputes the digest from the transaction's current stored fields
// and compares the stored signature in constant time. Any mismatch, including
// a tampered hashed field or a relinked transfer leg, returns false.
func (s *Signer) Verify(txn *models.TransactionDB) bool {
	digest := s.ComputeHash(txn)
	if !hmac.Equal([]byte(digest), []byte(txn.Hash)) {
		return false
	}
	expected := s.Sign(digest, txn.LinkedID)
	return hmac.Equal([]byte(expected), []byte(txn.Signature))
}
