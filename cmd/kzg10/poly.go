package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// loadPolynomial reads a JSON array of decimal coefficient strings, ordered
// from the highest degree term down to the constant term:
//
//	["3", "1", "4", "1"]  is  3x³ + x² + 4x + 1
func loadPolynomial(path string) ([]fr.Element, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("%s: %w", path, errNotFound)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var coeffs []string
	if err := json.Unmarshal(data, &coeffs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("parse %s: empty polynomial", path)
	}

	p := make([]fr.Element, len(coeffs))
	for i, c := range coeffs {
		if _, err := p[i].SetString(c); err != nil {
			return nil, fmt.Errorf("parse %s: coefficient %d: %w", path, i, err)
		}
	}
	return p, nil
}
