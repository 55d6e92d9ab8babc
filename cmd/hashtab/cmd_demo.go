package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/hashtab-go/hashtab"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdDemo = &cobra.Command{
	Use:   "demo [flags]",
	Short: "Seed a table with sample keys and look them up interactively",
	Long: `
The "demo" command fills a string-keyed table with the Hebrew and Greek
letter names mapped to random values, prints the table's contents and
resize statistics, then reads keys from stdin and looks them up until an
empty line or EOF.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(demoOptions)
	},
}

// DemoOptions bundles all options for the demo command.
type DemoOptions struct {
	Size      int
	Threshold float64
	MoveRate  int
	Shrink    bool
	Seed      int64
}

var demoOptions DemoOptions

func init() {
	cmdRoot.AddCommand(cmdDemo)

	f := cmdDemo.Flags()
	f.IntVar(&demoOptions.Size, "size", hashtab.DefaultSize, "initial slot count")
	f.Float64Var(&demoOptions.Threshold, "threshold", hashtab.DefaultThreshold, "load factor above which the table grows")
	f.IntVar(&demoOptions.MoveRate, "move-rate", hashtab.DefaultMoveRate, "size/move-rate buckets migrate per operation (1 rehashes immediately)")
	f.BoolVar(&demoOptions.Shrink, "shrink", false, "shrink the table when the load factor drops below 1-threshold")
	f.Int64Var(&demoOptions.Seed, "seed", 0, "seed for the random sample values")
}

// sampleKeys are the Hebrew and Greek letter names.
var sampleKeys = []string{
	"Alef", "Bet", "Gimel", "Dalet", "He", "Vav",
	"Zayin", "Het", "Tet", "Yod", "Kaf", "Lamed", "Mem", "Nun",
	"Samekh", "Ayin", "Pe", "Tsadi", "Qof", "Resh", "Shin", "Tav",

	"alpha", "beta", "gamma", "delta", "epsilon", "zdeta", "eta",
	"theta", "iota", "kappa", "lambda", "mu", "nu", "xi", "omicron",
	"pi", "rho", "sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
}

func runDemo(opts DemoOptions) error {
	if opts.Size < 1 {
		return errors.Errorf("size %d out of range", opts.Size)
	}
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		return errors.Errorf("threshold %v out of range (0, 1]", opts.Threshold)
	}
	if opts.MoveRate < 1 {
		return errors.Errorf("move rate %d out of range", opts.MoveRate)
	}

	options := []func(*hashtab.Config){
		hashtab.WithSize(opts.Size),
		hashtab.WithThreshold(opts.Threshold),
		hashtab.WithMoveRate(opts.MoveRate),
	}
	if opts.Shrink {
		options = append(options, hashtab.WithShrinkEnabled())
	}

	m := hashtab.NewStringMap[int](options...)
	rng := rand.New(rand.NewSource(opts.Seed))
	for _, key := range sampleKeys {
		m.Add(key, rng.Intn(100))
	}

	logrus.WithFields(logrus.Fields{
		"size":    m.Size(),
		"length":  m.Len(),
		"load":    fmt.Sprintf("%.3f", m.Load()),
		"grows":   m.Grows(),
		"shrinks": m.Shrinks(),
	}).Info("table seeded")

	m.Range(func(key string, value int) bool {
		fmt.Printf("%s = %d\n", key, value)
		return true
	})

	fmt.Print("Find key (empty line to quit): ")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		key := scanner.Text()
		if key == "" {
			break
		}
		if value, ok := m.Find(key); ok {
			fmt.Printf("Found: %s = %d\n", key, value)
		} else {
			fmt.Printf("Not found: %s\n", key)
		}
		fmt.Print("Find key (empty line to quit): ")
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read stdin")
	}
	return nil
}
