package kzg10

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCommitKeySerialization(t *testing.T) {
	assert := require.New(t)

	ck, err := Setup(8)
	assert.NoError(err)

	// compressed round trip
	var buf bytes.Buffer
	written, err := ck.WriteTo(&buf)
	assert.NoError(err)

	var read CommitKey
	n, err := read.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, n)
	assert.True(ck.Equal(&read))

	// raw round trip, skipping subgroup checks on the way back
	buf.Reset()
	written, err = ck.WriteRawTo(&buf)
	assert.NoError(err)

	// raw encoding is the advertised key size plus two length prefixes
	assert.Equal(int64(ck.SizeInBits()/8+8), written)

	var rawRead CommitKey
	n, err = rawRead.UnsafeReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, n)
	assert.True(ck.Equal(&rawRead))
}

func TestCommitKeyMalformed(t *testing.T) {
	assert := require.New(t)

	// truncated stream
	var buf bytes.Buffer
	_, err := testKey.WriteTo(&buf)
	assert.NoError(err)
	half := buf.Bytes()[:buf.Len()/2]

	var ck CommitKey
	_, err = ck.ReadFrom(bytes.NewReader(half))
	assert.ErrorIs(err, ErrMalformedKey)

	// G1 and G2 power vectors of different lengths
	buf.Reset()
	enc := bn254.NewEncoder(&buf)
	assert.NoError(enc.Encode(testKey.G1[:3]))
	assert.NoError(enc.Encode(testKey.G2[:2]))
	_, err = ck.ReadFrom(&buf)
	assert.ErrorIs(err, ErrMalformedKey)

	// too short for a single pairing check
	buf.Reset()
	enc = bn254.NewEncoder(&buf)
	assert.NoError(enc.Encode(testKey.G1[:1]))
	assert.NoError(enc.Encode(testKey.G2[:1]))
	_, err = ck.ReadFrom(&buf)
	assert.ErrorIs(err, ErrMalformedKey)

	// generator at infinity
	bad := &CommitKey{
		G1: append([]bn254.G1Affine{{}}, testKey.G1[1:3]...),
		G2: testKey.G2[:3],
	}
	buf.Reset()
	_, err = bad.WriteTo(&buf)
	assert.NoError(err)
	_, err = ck.ReadFrom(&buf)
	assert.ErrorIs(err, ErrMalformedKey)
}

func TestWitnessSerialization(t *testing.T) {
	assert := require.New(t)

	p := randomPolynomial(8)
	var z fr.Element
	z.SetUint64(11)

	w, err := Open(testKey, p, z, 8)
	assert.NoError(err)

	var buf bytes.Buffer
	written, err := w.WriteTo(&buf)
	assert.NoError(err)

	var read Witness
	n, err := read.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, n)
	assert.True(w.Equal(&read))

	// equality is field-wise
	read.Point.SetUint64(12)
	assert.False(w.Equal(&read))

	// truncated and garbage streams both fail
	_, err = read.ReadFrom(bytes.NewReader(nil))
	assert.ErrorIs(err, ErrMalformedWitness)

	_, err = read.ReadFrom(bytes.NewReader(bytes.Repeat([]byte{0xff}, 96)))
	assert.ErrorIs(err, ErrMalformedWitness)
}

func TestWitnessSerializationRoundTrip(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("deserialization(serialization(witness)) == witness", prop.ForAll(
		func(degree int, point fr.Element) bool {
			p := randomPolynomial(degree)
			w, err := Open(testKey, p, point, degree)
			if err != nil {
				return false
			}

			var buf bytes.Buffer
			if _, err := w.WriteTo(&buf); err != nil {
				return false
			}
			var read Witness
			if _, err := read.ReadFrom(&buf); err != nil {
				return false
			}
			return w.Equal(&read)
		},
		gen.IntRange(2, testKeySize),
		genFr(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
