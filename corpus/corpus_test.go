package corpus

import (
	"bufio"
	"bytes"
	"text2phenotype.com/postag/types"
	"text2phenotype.com/postag/utils"
	"errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSentences(t *testing.T) {
	t.Run("Tagged", testReadTagged)
	t.Run("Untagged", testReadUntagged)
	t.Run("Empty sentences", testReadEmptySentences)
	t.Run("Malformed line", testReadMalformed)
	t.Run("Interning", testReadInterning)
}

func testReadTagged(t *testing.T) {
	in := "the\tDET\ndog \t NOUN\nbarks\tVERB\n\na\tDET\ncat\tNOUN"
	sents, err := ReadSentences(strings.NewReader(in), true, nil)
	require.NoError(t, err)

	expected := []types.Sentence{
		{Tokens: []types.Token{{Word: "the", Tag: "DET"}, {Word: "dog", Tag: "NOUN"}, {Word: "barks", Tag: "VERB"}}},
		{Tokens: []types.Token{{Word: "a", Tag: "DET"}, {Word: "cat", Tag: "NOUN"}}},
	}
	if diff := cmp.Diff(expected, sents); diff != "" {
		t.Errorf("unexpected sentences (-want +got):\n%s", diff)
	}
}

func testReadUntagged(t *testing.T) {
	in := "the\ndog\tNOUN\n\nbarks\n\n"
	sents, err := ReadSentences(strings.NewReader(in), false, nil)
	require.NoError(t, err)
	require.Len(t, sents, 2)
	require.Equal(t, []string{"the", "dog"}, sents[0].Words())
	require.Equal(t, []string{"", ""}, sents[0].Tags())
	require.Equal(t, []string{"barks"}, sents[1].Words())
}

func testReadEmptySentences(t *testing.T) {
	sents, err := ReadSentences(strings.NewReader("a\n\n\nb\n"), false, nil)
	require.NoError(t, err)
	require.Len(t, sents, 3)
	require.Equal(t, 0, sents[1].Len())

	sents, err = ReadSentences(strings.NewReader(""), false, nil)
	require.NoError(t, err)
	require.Empty(t, sents)
}

func testReadMalformed(t *testing.T) {
	_, err := ReadSentences(strings.NewReader("the\tDET\ndog\n"), true, nil)
	require.True(t, errors.Is(err, ErrMalformedLine))
	require.Contains(t, err.Error(), "line 2")
}

func testReadInterning(t *testing.T) {
	store := utils.NewStringStore()
	_, err := ReadSentences(strings.NewReader("the\tDET\nthe\tDET\n\ndog\tNOUN\n"), true, store)
	require.NoError(t, err)
	require.Equal(t, 4, store.Len())

	store.Lock()
	_, err = ReadSentences(strings.NewReader("cat\n"), false, store)
	require.NoError(t, err)
	require.Equal(t, 4, store.Len())
}

func TestWriteTagged(t *testing.T) {
	in := make(chan TaggedSentence, 3)
	in <- TaggedSentence{Words: []string{"the", "dog"}, Tags: []string{"DET", "NOUN"}}
	in <- TaggedSentence{}
	in <- TaggedSentence{Words: []string{"a", "b"}, Tags: []string{"X"}}
	close(in)

	var out bytes.Buffer
	require.NoError(t, WriteTagged(&out, in))
	require.Equal(t, "the\tDET\ndog\tNOUN\n\n\na\tX\n\n", out.String())
}

func TestWriteTaggedSentence(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	require.NoError(t, WriteTaggedSentence(w, []string{"barks"}, []string{"VERB"}))
	require.NoError(t, w.Flush())
	require.Equal(t, "barks\tVERB\n\n", out.String())
}

func TestOutputLocation(t *testing.T) {
	for _, tc := range []struct {
		test     string
		mode     string
		expected string
	}{
		{"test.txt", "hmm", "test.txt.out.hmm.txt"},
		{"data/dev.tagged.txt", "baseline", "data/dev.tagged.out.baseline.txt"},
		{"../corpora/test.txt", "hmm", "../corpora/test.txt.out.hmm.txt"},
		{"s3://bucket/dir/test.txt", "hmm", "s3://bucket/dir/test.txt.out.hmm.txt"},
		{"test", "hmm", "test.out.hmm.txt"},
	} {
		require.Equal(t, tc.expected, OutputLocation(tc.test, tc.mode), tc.test)
	}
}

type objectStorageMock struct {
	objects   map[string][]byte
	downloads int
	uploads   int
}

func (mock *objectStorageMock) Download(bucket string, key string) ([]byte, error) {
	mock.downloads++
	data, ok := mock.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (mock *objectStorageMock) Upload(bucket string, key string, data []byte) error {
	mock.uploads++
	mock.objects[bucket+"/"+key] = data
	return nil
}

func TestStore(t *testing.T) {
	t.Run("Local files", testStoreLocal)
	t.Run("S3 locations", testStoreS3)
	t.Run("Bad S3 location", testStoreBadLocation)
	t.Run("S3 not configured", testStoreS3NotConfigured)
}

func testStoreLocal(t *testing.T) {
	location := filepath.Join(t.TempDir(), "out.txt")
	store := NewStore(nil)
	require.NoError(t, store.Write(location, []byte("x\tY\n")))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	require.Equal(t, "x\tY\n", string(data))

	data, err = store.Read(location)
	require.NoError(t, err)
	require.Equal(t, "x\tY\n", string(data))
}

func testStoreS3(t *testing.T) {
	mock := &objectStorageMock{objects: map[string][]byte{"corpora/train.txt": []byte("a\tB\n")}}
	created := 0
	store := NewStore(func() (ObjectStorage, error) {
		created++
		return mock, nil
	})

	data, err := store.Read("s3://corpora/train.txt")
	require.NoError(t, err)
	require.Equal(t, "a\tB\n", string(data))

	require.NoError(t, store.Write("s3://corpora/out/test.out.hmm.txt", []byte("done")))
	require.Equal(t, "done", string(mock.objects["corpora/out/test.out.hmm.txt"]))
	require.Equal(t, 1, created)
	require.Equal(t, 1, mock.downloads)
	require.Equal(t, 1, mock.uploads)
}

func testStoreBadLocation(t *testing.T) {
	store := NewStore(nil)
	for _, location := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, err := store.Read(location)
		require.True(t, errors.Is(err, ErrBadLocation), location)
	}
}

func testStoreS3NotConfigured(t *testing.T) {
	err := NewStore(nil).Write("s3://bucket/key", []byte{})
	require.True(t, errors.Is(err, ErrBadLocation))
}
