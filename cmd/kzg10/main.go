// kzg10 is a CLI tool around the KZG polynomial commitment scheme: it
// generates commitment keys, commits to polynomials, opens them at a point
// and verifies evaluation witnesses, moving every artifact through files so
// prover and verifier can run as separate processes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/kzg10"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "kzg10",
	Short:   "kzg10 commits to polynomials and proves their evaluations",
	Version: buildString(),
}

// common to every subcommand: where the commitment key lives
var fKeyPath string

var errNotFound = errors.New("no such file or directory")

func init() {
	rootCmd.PersistentFlags().StringVar(&fKeyPath, "key", "kzg10.srs", "specifies full path for the commitment key")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func buildString() string {
	return fmt.Sprintf("kzg10 v%s (bn254)", kzg10.Version.String())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func writeArtifact(path string, artifact io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := artifact.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readArtifact(path string, artifact io.ReaderFrom) error {
	if !fileExists(path) {
		return fmt.Errorf("%s: %w", path, errNotFound)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = artifact.ReadFrom(f)
	return err
}

func loadKey(ck *kzg10.CommitKey) {
	if err := readArtifact(fKeyPath, ck); err != nil {
		fmt.Println("can't load commitment key")
		fmt.Println(err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d G1 powers\n", "loaded commitment key", fKeyPath, ck.G1Size())
}
