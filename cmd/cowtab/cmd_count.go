package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rogpeppe/rwcore/cowstr"
	"github.com/rogpeppe/rwcore/hashtab"
	"github.com/rogpeppe/rwcore/internal/heap"
)

var cmdCount = &cobra.Command{
	Use:   "count [flags] FILE...",
	Short: "Count the words in files",
	Long: `
The "count" command counts the words in the named files and prints
the most frequent ones. Ties are ordered by the collation rules of
the language given with --lang.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCount(cmd.OutOrStdout(), countOptions, args)
	},
}

// CountOptions bundles all options for the count command.
type CountOptions struct {
	Buckets int
	Top     int
	Multi   bool
	Save    string
	MaxFill float64
	Lang    string
}

var countOptions CountOptions

func init() {
	cmdRoot.AddCommand(cmdCount)

	f := cmdCount.Flags()
	f.IntVar(&countOptions.Buckets, "buckets", hashtab.DefaultBuckets, "initial number of hash buckets")
	f.IntVar(&countOptions.Top, "top", 10, "print the `n` most frequent words (0 for all)")
	f.BoolVar(&countOptions.Multi, "multi", false, "also keep every occurrence in a multiset")
	f.StringVar(&countOptions.Save, "save", "", "save the counts to `file`")
	f.Float64Var(&countOptions.MaxFill, "max-fill", 4, "double the buckets when the fill ratio passes this")
	f.StringVar(&countOptions.Lang, "lang", "und", "language used to order ties")
}

// RunCount counts the words in files and writes a report to w.
func RunCount(w io.Writer, opts CountOptions, files []string) error {
	tag, err := language.Parse(opts.Lang)
	if err != nil {
		return errors.Wrapf(err, "bad language %q", opts.Lang)
	}
	interned := hashtab.NewSet[*cowstr.Bytes](opts.Buckets, wordHasher{})
	counts := hashtab.NewMap[*cowstr.Bytes, int](opts.Buckets, wordHasher{})
	var bag *wordBag
	if opts.Multi {
		bag = hashtab.NewMultiSet[*cowstr.Bytes](opts.Buckets, wordHasher{})
	}
	total := 0
	for _, name := range files {
		n, err := countFile(name, interned, counts, bag)
		if err != nil {
			return err
		}
		total += n
		log.WithFields(log.Fields{
			"file":  name,
			"words": n,
		}).Debug("counted file")
		if opts.MaxFill > 0 && counts.FillRatio() > opts.MaxFill {
			grow(counts, bag)
		}
	}
	log.WithFields(log.Fields{
		"words":    total,
		"distinct": counts.Len(),
		"buckets":  counts.Capacity(),
		"fill":     fmt.Sprintf("%.2f", counts.FillRatio()),
	}).Info("counted words")
	if bag != nil && bag.Len() != total {
		return errors.Errorf("multiset holds %d words, want %d", bag.Len(), total)
	}

	for _, c := range topCounts(counts, opts.Top, collate.New(tag)) {
		fmt.Fprintf(w, "%6d %s\n", c.Val, c.Key)
	}
	fmt.Fprintf(w, "%d words, %d distinct, %d buckets\n", total, counts.Len(), counts.Capacity())

	if opts.Save != "" {
		if err := saveCounts(opts.Save, counts); err != nil {
			return err
		}
		log.WithField("file", opts.Save).Debug("saved counts")
	}
	return nil
}

// countFile adds the words of the named file to the tables
// and returns how many words it held.
func countFile(name string, interned *wordSet, counts *countMap, bag *wordBag) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer f.Close()
	n := 0
	err = scanWords(f, func(word string) {
		n++
		s := intern(interned, word)
		if bag != nil {
			bag.Insert(s.Clone())
		}
		it, ok := counts.Insert(wordCount{Key: s})
		if !ok {
			s.Release()
		}
		it.Ptr().Val++
	})
	return n, errors.Wrapf(err, "%s", name)
}

func grow(counts *countMap, bag *wordBag) {
	n := counts.Capacity() * 2
	log.WithFields(log.Fields{
		"fill":    fmt.Sprintf("%.2f", counts.FillRatio()),
		"buckets": n,
	}).Debug("resizing")
	counts.Resize(n)
	if bag != nil {
		bag.Resize(n)
	}
}

// topCounts returns the k most frequent entries of counts, most
// frequent first, or all of them if k is not positive. Words with
// the same count are ordered by c.
func topCounts(counts *countMap, k int, c *collate.Collator) []wordCount {
	return heap.Top(counts.All(), k, func(a, b wordCount) bool {
		if a.Val != b.Val {
			return a.Val < b.Val
		}
		// Earlier in collation order ranks higher.
		if r := a.Key.Collate(b.Key, c); r != 0 {
			return r > 0
		}
		return a.Key.Compare(b.Key) > 0
	})
}

func saveCounts(name string, counts *countMap) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.WithStack(cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := counts.SaveOn(bw); err != nil {
		return err
	}
	return errors.WithStack(bw.Flush())
}
