package kzg10

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// WriteTo writes the key to w: the G1 powers then the G2 powers, each vector
// length-prefixed, each point in its canonical compressed encoding.
func (ck *CommitKey) WriteTo(w io.Writer) (int64, error) {
	return ck.writeTo(w)
}

// WriteRawTo writes the key to w without point compression. The artifact is
// roughly twice as large but much cheaper to read back.
func (ck *CommitKey) WriteRawTo(w io.Writer) (int64, error) {
	return ck.writeTo(w, bn254.RawEncoding())
}

func (ck *CommitKey) writeTo(w io.Writer, options ...func(*bn254.Encoder)) (int64, error) {
	enc := bn254.NewEncoder(w, options...)

	toEncode := []interface{}{
		ck.G1,
		ck.G2,
	}

	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}

	return enc.BytesWritten(), nil
}

// ReadFrom reads the key from r, checking that every point is on the curve
// and in the right subgroup, then that the key shape holds (power vectors of
// equal length ≥ 2, generators not at infinity). Failures surface as
// ErrMalformedKey.
func (ck *CommitKey) ReadFrom(r io.Reader) (int64, error) {
	return ck.readFrom(r)
}

// UnsafeReadFrom reads the key from r skipping the subgroup checks. To be
// used only on keys from a trusted source; the shape invariants are still
// enforced.
func (ck *CommitKey) UnsafeReadFrom(r io.Reader) (int64, error) {
	return ck.readFrom(r, bn254.NoSubgroupChecks())
}

func (ck *CommitKey) readFrom(r io.Reader, options ...func(*bn254.Decoder)) (int64, error) {
	dec := bn254.NewDecoder(r, options...)

	toDecode := []interface{}{
		&ck.G1,
		&ck.G2,
	}

	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), fmt.Errorf("%w: %v", ErrMalformedKey, err)
		}
	}

	if len(ck.G1) < 2 || len(ck.G1) != len(ck.G2) {
		return dec.BytesRead(), ErrMalformedKey
	}
	if ck.G1[0].IsInfinity() || ck.G2[0].IsInfinity() {
		return dec.BytesRead(), ErrMalformedKey
	}

	return dec.BytesRead(), nil
}

// WriteTo writes the witness to w: evaluation point, claimed-value
// commitment, quotient commitment, each in its canonical encoding.
func (w *Witness) WriteTo(writer io.Writer) (int64, error) {
	enc := bn254.NewEncoder(writer)

	toEncode := []interface{}{
		&w.Point,
		&w.Eval,
		&w.Quotient,
	}

	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}

	return enc.BytesWritten(), nil
}

// ReadFrom reads a witness from r. Commitments at infinity are legal (the
// zero polynomial commits to the identity); truncated data, off-curve or
// out-of-subgroup points surface as ErrMalformedWitness.
func (w *Witness) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)

	toDecode := []interface{}{
		&w.Point,
		&w.Eval,
		&w.Quotient,
	}

	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), fmt.Errorf("%w: %v", ErrMalformedWitness, err)
		}
	}

	return dec.BytesRead(), nil
}
