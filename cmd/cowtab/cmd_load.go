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
)

var cmdLoad = &cobra.Command{
	Use:   "load [flags] FILE",
	Short: "Print counts saved by the count command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLoad(cmd.OutOrStdout(), loadOptions, args[0])
	},
}

// LoadOptions bundles all options for the load command.
type LoadOptions struct {
	Top  int
	Lang string
}

var loadOptions LoadOptions

func init() {
	cmdRoot.AddCommand(cmdLoad)

	f := cmdLoad.Flags()
	f.IntVar(&loadOptions.Top, "top", 0, "print only the `n` most frequent words")
	f.StringVar(&loadOptions.Lang, "lang", "und", "language used to order ties")
}

// RunLoad restores the counts saved in the named file
// and writes them to w.
func RunLoad(w io.Writer, opts LoadOptions, name string) error {
	tag, err := language.Parse(opts.Lang)
	if err != nil {
		return errors.Wrapf(err, "bad language %q", opts.Lang)
	}
	f, err := os.Open(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	counts := hashtab.NewMap[*cowstr.Bytes, int](0, wordHasher{})
	if err := counts.RestoreFrom(bufio.NewReader(f)); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	log.WithFields(log.Fields{
		"file":     name,
		"distinct": counts.Len(),
		"buckets":  counts.Capacity(),
	}).Debug("loaded counts")
	for _, c := range topCounts(counts, opts.Top, collate.New(tag)) {
		fmt.Fprintf(w, "%6d %s\n", c.Val, c.Key)
	}
	return nil
}
