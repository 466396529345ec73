package kzg10

import (
	"crypto/sha256"
	"errors"
	"hash"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/kzg10/debug"
	"github.com/consensys/kzg10/logger"
)

var (
	ErrInvalidDegree         = errors.New("invalid polynomial degree (Setup needs t ≥ 1, Open needs degree ≥ 2)")
	ErrDegreeExceedsSRS      = errors.New("polynomial degree larger than the commitment key supports")
	ErrInvalidPolynomialSize = errors.New("invalid polynomial size (fewer coefficients than the claimed degree)")
	ErrMalformedKey          = errors.New("malformed commitment key")
	ErrMalformedWitness      = errors.New("malformed witness")
)

// Digest commitment of a polynomial.
type Digest = bn254.G1Affine

// CommitKey is the structured reference string of the scheme: consecutive
// powers of a secret scalar behind fresh G1 and G2 generators. The prover
// reads the G1 side, the verifier the first two G2 elements; the full G2
// vector is generated and kept anyway so the key stays symmetric.
//
// A CommitKey is immutable once built and safe for concurrent use.
type CommitKey struct {
	G1 []bn254.G1Affine // [g₁, a·g₁, a²·g₁, …, aᵗ·g₁]
	G2 []bn254.G2Affine // [g₂, a·g₂, a²·g₂, …, aᵗ·g₂]
}

// G1Size returns the number of G1 powers in the key, the largest coefficient
// count Commit accepts.
func (ck *CommitKey) G1Size() int {
	return len(ck.G1)
}

// G2Size returns the number of G2 powers in the key.
func (ck *CommitKey) G2Size() int {
	return len(ck.G2)
}

// SizeInBits returns the size of the key material in bits, uncompressed
// encoding.
func (ck *CommitKey) SizeInBits() int {
	return 8 * (len(ck.G1)*bn254.SizeOfG1AffineUncompressed +
		len(ck.G2)*bn254.SizeOfG2AffineUncompressed)
}

// Equal reports whether ck and other hold the same powers.
func (ck *CommitKey) Equal(other *CommitKey) bool {
	if len(ck.G1) != len(other.G1) || len(ck.G2) != len(other.G2) {
		return false
	}
	for i := range ck.G1 {
		if !ck.G1[i].Equal(&other.G1[i]) {
			return false
		}
	}
	for i := range ck.G2 {
		if !ck.G2[i].Equal(&other.G2[i]) {
			return false
		}
	}
	return true
}

// Witness attests that the polynomial behind a commitment evaluates to a
// claimed value at Point.
type Witness struct {
	Point    fr.Element // evaluation point z
	Eval     Digest     // p(z)·g₁
	Quotient Digest     // commitment to (p(X)-p(z))/(X-z)
}

// Equal reports whether w and other describe the same opening.
func (w *Witness) Equal(other *Witness) bool {
	return w.Point.Equal(&other.Point) &&
		w.Eval.Equal(&other.Eval) &&
		w.Quotient.Equal(&other.Quotient)
}

// Setup builds a commitment key supporting polynomials of up to t+1
// coefficients. It samples fresh generators (random non-zero multiples of
// the canonical ones) and the secret scalar a, then publishes the first t
// powers of a behind each generator.
//
// The trapdoor a and its power table are locals of this function: nothing of
// them survives in the returned key, and recovering a from the published
// powers is the discrete logarithm problem. Anyone holding a could forge
// witnesses for arbitrary evaluations, so a deployment must run Setup once,
// share the key, and let the stack frame die.
func Setup(t int) (*CommitKey, error) {
	if t < 1 {
		return nil, ErrInvalidDegree
	}

	log := logger.Logger()
	start := time.Now()

	var gen1Scalar, gen2Scalar, a fr.Element
	for gen1Scalar.IsZero() {
		if _, err := gen1Scalar.SetRandom(); err != nil {
			return nil, err
		}
	}
	for gen2Scalar.IsZero() {
		if _, err := gen2Scalar.SetRandom(); err != nil {
			return nil, err
		}
	}
	if _, err := a.SetRandom(); err != nil {
		return nil, err
	}

	_, _, g1, g2 := bn254.Generators()
	var bi big.Int
	var gen1 bn254.G1Affine
	var gen2 bn254.G2Affine
	gen1.ScalarMultiplication(&g1, gen1Scalar.BigInt(&bi))
	gen2.ScalarMultiplication(&g2, gen2Scalar.BigInt(&bi))

	// powers a¹ … aᵗ
	powers := make([]fr.Element, t)
	powers[0] = a
	for i := 1; i < len(powers); i++ {
		powers[i].Mul(&powers[i-1], &a)
	}

	ck := &CommitKey{
		G1: make([]bn254.G1Affine, t+1),
		G2: make([]bn254.G2Affine, t+1),
	}
	ck.G1[0] = gen1
	ck.G2[0] = gen2

	var g errgroup.Group
	g.Go(func() error {
		copy(ck.G1[1:], bn254.BatchScalarMultiplicationG1(&gen1, powers))
		return nil
	})
	g.Go(func() error {
		var s big.Int
		for i := range powers {
			ck.G2[i+1].ScalarMultiplication(&gen2, powers[i].BigInt(&s))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Dur("took", time.Since(start)).Int("t", t).Msg("kzg setup done")

	return ck, nil
}

// Commit commits to the degree highest-first coefficients of p:
// C = Σ_{i=1..degree} p[degree-i]·ck.G1[i-1], so the constant term
// multiplies the plain generator. One multi-scalar multiplication; nbTasks
// caps the number of CPUs it uses.
func Commit(ck *CommitKey, p []fr.Element, degree int, nbTasks ...int) (Digest, error) {
	if degree < 1 {
		return Digest{}, ErrInvalidDegree
	}
	if len(p) < degree {
		return Digest{}, ErrInvalidPolynomialSize
	}
	if degree > ck.G1Size() {
		return Digest{}, ErrDegreeExceedsSRS
	}

	var config ecc.MultiExpConfig
	if len(nbTasks) > 0 {
		config.NbTasks = nbTasks[0]
	}

	points, scalars := srsWindow(ck, p, degree, 1)

	var res Digest
	if _, err := res.MultiExp(points, scalars, config); err != nil {
		return Digest{}, err
	}
	return res, nil
}

// DeriveChallenge derives an evaluation point from three commitments through
// a Fiat-Shamir transcript, binding the canonical uncompressed encoding of
// each point. sha256 is used unless a different hash.Hash is supplied; the
// scheme relies only on the digest being a deterministic function of the
// bound data.
func DeriveChallenge(a, b, c Digest, hFunc ...hash.Hash) (fr.Element, error) {
	var buf [bn254.SizeOfG1AffineUncompressed]byte
	var r fr.Element

	h := hash.Hash(sha256.New())
	if len(hFunc) > 0 {
		h = hFunc[0]
	}

	fs := fiatshamir.NewTranscript(h, "zeta")
	for _, p := range []*Digest{&a, &b, &c} {
		buf = p.RawBytes()
		if err := fs.Bind("zeta", buf[:]); err != nil {
			return r, err
		}
	}

	zeta, err := fs.ComputeChallenge("zeta")
	if err != nil {
		return r, err
	}
	r.SetBytes(zeta)
	return r, nil
}

// Evaluate returns p(point) over the degree highest-first coefficients of p,
// by Horner's rule. degree < 1 evaluates to zero.
func Evaluate(p []fr.Element, point fr.Element, degree int) fr.Element {
	var res fr.Element
	if degree < 1 {
		return res
	}
	res.Set(&p[0])
	for i := 1; i < degree; i++ {
		res.Mul(&res, &point).Add(&res, &p[i])
	}
	return res
}

// Open computes an evaluation witness for p at point: the claimed value
// committed as p(point)·g₁ and a commitment to the quotient
// ψ(X) = (p(X)-p(point))/(X-point). The division is synthetic (Ruffini),
// in place on a copy; by the polynomial remainder theorem the remainder is
// exactly zero, which debug builds assert.
func Open(ck *CommitKey, p []fr.Element, point fr.Element, degree int, nbTasks ...int) (Witness, error) {
	if degree < 2 {
		return Witness{}, ErrInvalidDegree
	}
	if len(p) < degree {
		return Witness{}, ErrInvalidPolynomialSize
	}
	if degree > ck.G1Size() {
		return Witness{}, ErrDegreeExceedsSRS
	}

	res := Witness{Point: point}
	y := Evaluate(p, point, degree)

	// ψ = (p - y) / (X - point); highest-first coefficients fold top down,
	// the remainder lands in the constant slot
	pp := make([]fr.Element, degree)
	copy(pp, p)
	pp[degree-1].Sub(&pp[degree-1], &y)

	var t fr.Element
	for i := 1; i < degree; i++ {
		t.Mul(&pp[i-1], &point)
		pp[i].Add(&pp[i], &t)
	}
	quotient := pp[:degree-1]

	if debug.Debug {
		if !pp[degree-1].IsZero() {
			panic("kzg10: non-zero remainder dividing p - p(z) by X - z")
		}
	}

	var config ecc.MultiExpConfig
	if len(nbTasks) > 0 {
		config.NbTasks = nbTasks[0]
	}

	points, scalars := srsWindow(ck, quotient, degree, 2)
	if _, err := res.Quotient.MultiExp(points, scalars, config); err != nil {
		return Witness{}, err
	}

	var bi big.Int
	res.Eval.ScalarMultiplication(&ck.G1[0], y.BigInt(&bi))

	return res, nil
}

// VerifyEval checks an evaluation witness against a commitment:
//
//	e(c, g₂) == e(ψ, a·g₂ - z·g₂) · e(y·g₁, g₂)
//
// Three pairings and one GT product. The boolean is the verification
// outcome; the error reports a malformed key or a pairing failure, never a
// rejected proof.
func VerifyEval(ck *CommitKey, c Digest, w Witness) (bool, error) {
	if ck.G2Size() < 2 {
		return false, ErrMalformedKey
	}

	// a·g₂ - z·g₂
	var bi big.Int
	var zg2, shifted bn254.G2Jac
	zg2.FromAffine(&ck.G2[0])
	zg2.ScalarMultiplication(&zg2, w.Point.BigInt(&bi))
	shifted.FromAffine(&ck.G2[1])
	shifted.SubAssign(&zg2)
	var shiftedAff bn254.G2Affine
	shiftedAff.FromJacobian(&shifted)

	lhs, err := bn254.Pair(
		[]bn254.G1Affine{c},
		[]bn254.G2Affine{ck.G2[0]},
	)
	if err != nil {
		return false, err
	}

	rhs, err := bn254.Pair(
		[]bn254.G1Affine{w.Quotient, w.Eval},
		[]bn254.G2Affine{shiftedAff, ck.G2[0]},
	)
	if err != nil {
		return false, err
	}

	return lhs.Equal(&rhs), nil
}

// srsWindow pairs the highest-first coefficients of a polynomial with the
// matching SRS powers for one multi-scalar multiplication. The constant term
// always multiplies ck.G1[0]; offset 1 covers a full degree-term polynomial,
// offset 2 the quotient of a division by a linear factor, which has one
// coefficient less.
func srsWindow(ck *CommitKey, coeffs []fr.Element, degree, offset int) ([]bn254.G1Affine, []fr.Element) {
	n := degree - offset + 1
	points := ck.G1[:n]
	scalars := make([]fr.Element, n)
	for j := 0; j < n; j++ {
		scalars[j] = coeffs[degree-offset-j]
	}
	return points, scalars
}
