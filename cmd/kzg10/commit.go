package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/kzg10"
	"github.com/spf13/cobra"
)

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:     "commit [polynomial.json]",
	Short:   "commits to a polynomial under the commitment key",
	Run:     cmdCommit,
	Version: buildString(),
}

var fCommitPath string

func init() {
	rootCmd.AddCommand(commitCmd)
	commitCmd.PersistentFlags().StringVar(&fCommitPath, "commitment", "", "specifies full path for the commitment -- default is ./[polynomial].commit")
}

func cmdCommit(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing polynomial path -- kzg10 commit -h for help")
		os.Exit(-1)
	}
	polyPath := filepath.Clean(args[0])
	polyName := filepath.Base(polyPath)
	polyExt := filepath.Ext(polyName)
	polyName = polyName[0 : len(polyName)-len(polyExt)]

	var ck kzg10.CommitKey
	loadKey(&ck)

	p, err := loadPolynomial(polyPath)
	if err != nil {
		fmt.Println("can't parse polynomial", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d coefficients\n", "loaded polynomial", polyPath, len(p))

	start := time.Now()
	digest, err := kzg10.Commit(&ck, p, len(p))
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	commitPath := filepath.Join(".", polyName+".commit")
	if fCommitPath != "" {
		commitPath = fCommitPath
	}
	if err := writeCommitment(commitPath, &digest); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	b := digest.Bytes()
	fmt.Printf("%-30s %-30s %-30s\n", "generated commitment", commitPath, time.Since(start))
	fmt.Printf("%-30s 0x%x\n", "commitment", b[:])
}

func writeCommitment(path string, digest *kzg10.Digest) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := bn254.NewEncoder(f)
	if err := enc.Encode(digest); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readCommitment(path string, digest *kzg10.Digest) error {
	if !fileExists(path) {
		return fmt.Errorf("%s: %w", path, errNotFound)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := bn254.NewDecoder(f)
	return dec.Decode(digest)
}
