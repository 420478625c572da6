// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package tokenizer

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidExpiry indicates an expiry timestamp the program will not accept.
var ErrInvalidExpiry = errors.New("expiry must be a positive unix timestamp")

// Expiry is the unix timestamp at which a tokenizer instance matures.
// Principal redemption and yield claims are gated on it by the program.
type Expiry int64

// NewExpiry validates ts against the program's expiry predicate. Whether a
// given future timestamp is still open for initialization is decided
// on-chain; only well-formedness is checked here.
func NewExpiry(ts int64) (Expiry, error) {
	if ts <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidExpiry, ts)
	}
	return Expiry(ts), nil
}

// Unix returns the expiry as a unix timestamp.
func (e Expiry) Unix() int64 { return int64(e) }

// Time returns the expiry as a UTC time.
func (e Expiry) Time() time.Time { return time.Unix(int64(e), 0).UTC() }

func (e Expiry) String() string { return e.Time().Format(time.RFC3339) }
