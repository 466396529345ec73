package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/kzg10"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:     "verify [witness]",
	Short:   "verifies an evaluation witness against a commitment",
	Run:     cmdVerify,
	Version: buildString(),
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.PersistentFlags().StringVar(&fCommitPath, "commitment", "", "specifies full path for the commitment")
	_ = verifyCmd.MarkPersistentFlagRequired("commitment")
}

func cmdVerify(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing witness path -- kzg10 verify -h for help")
		os.Exit(-1)
	}
	witnessPath := filepath.Clean(args[0])

	var ck kzg10.CommitKey
	loadKey(&ck)

	var digest kzg10.Digest
	if err := readCommitment(filepath.Clean(fCommitPath), &digest); err != nil {
		fmt.Println("can't load commitment")
		fmt.Println(err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s\n", "loaded commitment", fCommitPath)

	var w kzg10.Witness
	if err := readArtifact(witnessPath, &w); err != nil {
		fmt.Println("can't load witness")
		fmt.Println(err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s point %s\n", "loaded witness", witnessPath, w.Point.String())

	start := time.Now()
	ok, err := kzg10.VerifyEval(&ck, digest, w)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	if !ok {
		fmt.Printf("%-30s %-30s %-30s\n", "witness is invalid", witnessPath, time.Since(start))
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "witness is valid", witnessPath, time.Since(start))
}
