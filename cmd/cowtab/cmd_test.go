package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/rwcore/cowstr"
	"github.com/rogpeppe/rwcore/hashtab"
)

func writeFile(c *qt.C, name, content string) string {
	path := filepath.Join(c.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o666)
	c.Assert(err, qt.IsNil)
	return path
}

func TestScanWords(t *testing.T) {
	c := qt.New(t)
	var got []string
	err := scanWords(strings.NewReader("Hello, world!\n  it's 2024...\n"), func(w string) {
		got = append(got, w)
	})
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, []string{"hello", "world", "it", "s", "2024"})
}

func TestScanWordsLongLine(t *testing.T) {
	c := qt.New(t)
	line := strings.Repeat("ab ", 100000)
	n := 0
	err := scanWords(strings.NewReader(line+"\nend\n"), func(w string) {
		n++
	})
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 100001)
}

func TestScanWordsTokenTooLong(t *testing.T) {
	c := qt.New(t)
	err := scanWords(strings.NewReader(strings.Repeat("x", maxToken+1)), func(string) {})
	c.Assert(err, qt.ErrorMatches, `cannot read words: .*too long`)
}

func TestCountTopTies(t *testing.T) {
	c := qt.New(t)
	in := writeFile(c, "in.txt", "d b c a b c a z ö z ö")
	for _, test := range []struct {
		top  int
		lang string
		want string
	}{{
		top:  2,
		lang: "und",
		want: "     2 a\n     2 b\n",
	}, {
		top:  4,
		lang: "und",
		want: "     2 a\n     2 b\n     2 c\n     2 ö\n",
	}, {
		top:  6,
		lang: "sv",
		want: "     2 a\n     2 b\n     2 c\n     2 z\n     2 ö\n     1 d\n",
	}, {
		top:  1,
		lang: "de",
		want: "     2 a\n",
	}} {
		var out bytes.Buffer
		err := RunCount(&out, CountOptions{Top: test.top, Lang: test.lang}, []string{in})
		c.Assert(err, qt.IsNil)
		c.Assert(strings.TrimSuffix(out.String(), "11 words, 6 distinct, 64 buckets\n"), qt.Equals, test.want, qt.Commentf("top %d lang %s", test.top, test.lang))
	}
}

func TestRootHelp(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	cmdRoot.SetOut(&out)
	cmdRoot.SetArgs([]string{})
	defer cmdRoot.SetOut(nil)
	c.Assert(cmdRoot.Execute(), qt.IsNil)
	c.Assert(out.String(), qt.Contains, "count")
	c.Assert(out.String(), qt.Contains, "load")
}

func TestInternSharesBuffers(t *testing.T) {
	c := qt.New(t)
	set := hashtab.NewSet[*cowstr.Bytes](4, wordHasher{})
	a := intern(set, "word")
	b := intern(set, "word")
	c.Assert(set.Len(), qt.Equals, 1)
	c.Assert(a.Equal(b), qt.IsTrue)
	c.Assert(&a.Data()[0], qt.Equals, &b.Data()[0])
	c.Assert(&a.Data()[0], qt.Equals, &set.Find(a).Value().Data()[0])
}

func TestCountAndLoad(t *testing.T) {
	c := qt.New(t)
	in := writeFile(c, "in.txt", "the cat\nThe dog; the end. cat\n")
	saved := filepath.Join(c.TempDir(), "counts")

	var out bytes.Buffer
	err := RunCount(&out, CountOptions{
		Buckets: 2,
		Multi:   true,
		Save:    saved,
		MaxFill: 1,
		Lang:    "und",
	}, []string{in})
	c.Assert(err, qt.IsNil)
	c.Assert(out.String(), qt.Equals, `
     3 the
     2 cat
     1 dog
     1 end
7 words, 4 distinct, 4 buckets
`[1:])

	out.Reset()
	err = RunLoad(&out, LoadOptions{Lang: "und"}, saved)
	c.Assert(err, qt.IsNil)
	c.Assert(out.String(), qt.Equals, `
     3 the
     2 cat
     1 dog
     1 end
`[1:])

	out.Reset()
	err = RunLoad(&out, LoadOptions{Top: 2, Lang: "und"}, saved)
	c.Assert(err, qt.IsNil)
	c.Assert(out.String(), qt.Equals, "     3 the\n     2 cat\n")
}

func TestCountSeveralFiles(t *testing.T) {
	c := qt.New(t)
	a := writeFile(c, "a.txt", "one two three")
	b := writeFile(c, "b.txt", "three two three")
	var out bytes.Buffer
	err := RunCount(&out, CountOptions{Lang: "und"}, []string{a, b})
	c.Assert(err, qt.IsNil)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	c.Assert(lines[:3], qt.CmpEquals(cmpopts.SortSlices(func(x, y string) bool {
		return x < y
	})), []string{"     1 one", "     2 two", "     3 three"})
	c.Assert(lines[3], qt.Equals, "6 words, 3 distinct, 64 buckets")
}

func TestCountCollation(t *testing.T) {
	c := qt.New(t)
	in := writeFile(c, "in.txt", "z ö")
	for _, test := range []struct {
		lang string
		want string
	}{{
		lang: "de",
		want: "     1 ö\n     1 z\n",
	}, {
		lang: "sv",
		want: "     1 z\n     1 ö\n",
	}} {
		c.Run(test.lang, func(c *qt.C) {
			var out bytes.Buffer
			err := RunCount(&out, CountOptions{Top: 2, Lang: test.lang}, []string{in})
			c.Assert(err, qt.IsNil)
			c.Assert(strings.TrimSuffix(out.String(), "2 words, 2 distinct, 64 buckets\n"), qt.Equals, test.want)
		})
	}
}

func TestCountErrors(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	err := RunCount(&out, CountOptions{Lang: "!!"}, []string{"x"})
	c.Assert(err, qt.ErrorMatches, `bad language "!!": .*`)

	err = RunCount(&out, CountOptions{Lang: "und"}, []string{filepath.Join(c.TempDir(), "missing")})
	c.Assert(err, qt.ErrorMatches, `open .*missing: no such file or directory`)
}

func TestLoadBadFile(t *testing.T) {
	c := qt.New(t)
	in := writeFile(c, "bad", "not msgpack")
	var out bytes.Buffer
	err := RunLoad(&out, LoadOptions{Lang: "und"}, in)
	c.Assert(err, qt.ErrorMatches, `.*bad: hashtab: restore: .*`)
}
