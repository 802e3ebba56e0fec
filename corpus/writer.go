package corpus

import (
	"bufio"
	"io"
	"path"
	"strings"
)

// WriteTaggedSentence writes "word<TAB>tag" lines followed by a blank line.
// Words and tags are paired up to the shorter of the two.
func WriteTaggedSentence(w *bufio.Writer, words []string, tags []string) error {
	n := len(words)
	if len(tags) < n {
		n = len(tags)
	}
	for i := 0; i < n; i++ {
		if _, err := w.WriteString(words[i] + "\t" + tags[i] + "\n"); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}

type TaggedSentence struct {
	Words []string
	Tags  []string
}

// WriteTagged drains in and writes every sentence to w.
func WriteTagged(w io.Writer, in <-chan TaggedSentence) error {
	bw := bufio.NewWriter(w)
	var writeErr error
	for sent := range in {
		if writeErr != nil {
			continue
		}
		writeErr = WriteTaggedSentence(bw, sent.Words, sent.Tags)
	}
	if writeErr != nil {
		return writeErr
	}
	return bw.Flush()
}

// OutputLocation derives where tagged output goes: for "dir/test.txt" and
// mode "hmm" it is "dir/test.txt.out.hmm.txt". Only the first two
// dot-separated parts of the test location are kept.
func OutputLocation(testLocation string, mode string) string {
	dir, file := path.Split(testLocation)
	parts := strings.Split(file, ".")
	if len(parts) < 2 || len(parts[0]) == 0 {
		return testLocation + ".out." + mode + ".txt"
	}
	return dir + parts[0] + "." + parts[1] + ".out." + mode + ".txt"
}
