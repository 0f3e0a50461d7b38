// Package token implements the sig codec: a deterministic, reversible
// obfuscation of a numeric user id. It is a correlation id, not a
// security boundary; it carries no expiry and no integrity guarantee
// beyond "decodes back to exactly one uid".
package token

import (
	"errors"

	hashids "github.com/speps/go-hashids/v2"
)

const minLength = 8

var ErrInvalidUID = errors.New("token: uid must be a positive integer")

type Codec struct {
	h *hashids.HashID
}

func NewCodec(salt string) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, err
	}

	return &Codec{h: h}, nil
}

// Encode turns a positive uid into its sig.
func (c *Codec) Encode(uid uint) (string, error) {
	if uid == 0 {
		return "", ErrInvalidUID
	}

	return c.h.EncodeInt64([]int64{int64(uid)})
}

// Decode recovers the uid from a sig. It returns (0, false) for any
// malformed or foreign input and never panics.
func (c *Codec) Decode(sig string) (uint, bool) {
	if sig == "" {
		return 0, false
	}

	nums, err := c.h.DecodeInt64WithError(sig)
	if err != nil || len(nums) != 1 || nums[0] <= 0 {
		return 0, false
	}

	return uint(nums[0]), true
}
