package treefile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"unicode"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// wordFile represents an OS file which will be loaded as a word tree.
type wordFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// Loading is a file load in progress, started by LoadAsync.
type Loading struct {
	tree *bintree.Tree[string]
	cast *caster.Caster // broadcaster for newly discovered words
	done chan struct{}  // closed when the loader goroutine has finished
	err  error          // set before done is closed
}

// Load reads a file, which must be a text file, and builds a search tree
// over its word vocabulary. Word boundaries follow Unicode Annex #29;
// tokens without letters or digits (whitespace, punctuation) are skipped.
// Duplicate words collapse into a single tree value.
func Load(name string) (*bintree.Tree[string], error) {
	loading, err := LoadAsync(name)
	if err != nil {
		return nil, err
	}
	return loading.Await()
}

// LoadAsync starts loading a file in the background and returns
// immediately. Opening of the file is always done synchronously, so a
// non-existing or non-regular file fails fast.
//
// The tree is built by a single background goroutine; clients must not
// touch it before Await has returned.
func LoadAsync(name string) (*Loading, error) {
	wf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	tracer().P("file", name).Infof("loading word tree from file, %d bytes", wf.info.Size())
	loading := &Loading{
		tree: bintree.New[string](),
		cast: caster.New(nil), // we will broadcast words as they are discovered
		done: make(chan struct{}),
	}
	go loadAllWords(loading, wf)
	return loading, nil
}

// Await blocks until loading has finished and returns the completed tree.
// The returned error reflects read failures; the tree holds every word
// segmented before the failure.
func (l *Loading) Await() (*bintree.Tree[string], error) {
	<-l.done
	return l.tree, l.err
}

// Words subscribes to the broadcast of newly inserted words. The channel
// is closed when loading finishes or ctx is done. The second return value
// is false if loading has already finished.
func (l *Loading) Words(ctx context.Context) (<-chan interface{}, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.cast.Sub(ctx, 64)
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*wordFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &wordFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

// loadAllWords is the loader goroutine: it segments the file into word
// tokens, inserts each new word into the tree and publishes it to all
// subscribers.
func loadAllWords(l *Loading, wf *wordFile) {
	defer close(l.done)
	defer l.cast.Close()
	defer wf.file.Close()
	//
	seg := segment.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(bufio.NewReader(wf.file))
	words := 0
	for seg.Next() {
		token := seg.Text()
		if !wordlike(token) {
			continue
		}
		if l.tree.Insert(token) {
			words++
			l.cast.Pub(token)
		}
	}
	if err := seg.Err(); err != nil {
		l.err = fmt.Errorf("error loading words from %q: %w", wf.path, err)
		tracer().Errorf("treefile: %s", l.err.Error())
		return
	}
	tracer().P("file", wf.path).Infof("loaded %d distinct words", words)
}

// wordlike reports whether a segment carries at least one letter or digit.
func wordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
