package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/kzg10"
	"github.com/spf13/cobra"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:     "open [polynomial.json]",
	Short:   "opens a committed polynomial at a point, producing an evaluation witness",
	Run:     cmdOpen,
	Version: buildString(),
}

var (
	fWitnessPath string
	fPoint       string
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.PersistentFlags().StringVar(&fPoint, "point", "", "evaluation point, decimal")
	openCmd.PersistentFlags().StringVar(&fWitnessPath, "witness", "", "specifies full path for the witness -- default is ./[polynomial].wit")
	_ = openCmd.MarkPersistentFlagRequired("point")
}

func cmdOpen(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing polynomial path -- kzg10 open -h for help")
		os.Exit(-1)
	}
	polyPath := filepath.Clean(args[0])
	polyName := filepath.Base(polyPath)
	polyExt := filepath.Ext(polyName)
	polyName = polyName[0 : len(polyName)-len(polyExt)]

	var point fr.Element
	if _, err := point.SetString(fPoint); err != nil {
		fmt.Println("invalid point", fPoint)
		os.Exit(-1)
	}

	var ck kzg10.CommitKey
	loadKey(&ck)

	p, err := loadPolynomial(polyPath)
	if err != nil {
		fmt.Println("can't parse polynomial", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d coefficients\n", "loaded polynomial", polyPath, len(p))

	start := time.Now()
	w, err := kzg10.Open(&ck, p, point, len(p))
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	witnessPath := filepath.Join(".", polyName+".wit")
	if fWitnessPath != "" {
		witnessPath = fWitnessPath
	}
	if err := writeArtifact(witnessPath, &w); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	y := kzg10.Evaluate(p, point, len(p))
	fmt.Printf("%-30s %-30s %-30s\n", "generated witness", witnessPath, time.Since(start))
	fmt.Printf("%-30s p(%s) = %s\n", "evaluation", point.String(), y.String())
}
