package utils

import (
	"github.com/twmb/murmur3"
	"strings"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

// HashStrings hashes the sequence as a whole; element boundaries are kept so
// that ["ab", "c"] and ["a", "bc"] differ.
func HashStrings(ss []string) uint64 {
	hash := murmur3.New64()
	for _, s := range ss {
		_, err := hash.Write([]byte(s))
		if err != nil {
			panic(err)
		}
		_, err = hash.Write([]byte{0})
		if err != nil {
			panic(err)
		}
	}
	return hash.Sum64()
}

// SplitColumns splits a tab separated line and trims every column.
func SplitColumns(line string) []string {
	columns := strings.Split(line, "\t")
	for i, c := range columns {
		columns[i] = strings.TrimSpace(c)
	}
	return columns
}
