package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/consensys/kzg10"
	"github.com/spf13/cobra"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:     "setup [t]",
	Short:   "generates a commitment key for polynomials of up to t coefficients",
	Run:     cmdSetup,
	Version: buildString(),
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func cmdSetup(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing degree bound -- kzg10 setup -h for help")
		os.Exit(-1)
	}
	t, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("invalid degree bound", args[0])
		os.Exit(-1)
	}

	start := time.Now()
	ck, err := kzg10.Setup(t)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "setup completed", fmt.Sprintf("t=%d", t), time.Since(start))

	if err := writeArtifact(fKeyPath, ck); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d bits\n", "generated commitment key", fKeyPath, ck.SizeInBits())
}
