//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

//
// TOKENIZING AND FILTERING
//

var (
	wordfinder = regexp.MustCompile(`\w+`)
)

// Tokenize - lowercase a document and split it into word tokens; deterministic and pure
func Tokenize(doc string) []string {
	return wordfinder.FindAllString(strings.ToLower(doc), -1)
}

// TokenizeAll - Tokenize() every document; same slot in the corpus sequence
func TokenizeAll(docs []string) [][]string {
	corpus := make([][]string, len(docs))
	for i := 0; i < len(docs); i++ {
		corpus[i] = Tokenize(docs[i])
	}
	return corpus
}

// DropNumeric - corpus-wide pass removing tokens that are nothing but digits
func DropNumeric(corpus [][]string) [][]string {
	for i := 0; i < len(corpus); i++ {
		var kept []string
		for j := 0; j < len(corpus[i]); j++ {
			if !isnumeric(corpus[i][j]) {
				kept = append(kept, corpus[i][j])
			}
		}
		corpus[i] = kept
	}
	return corpus
}

// DropShort - corpus-wide pass removing tokens below the minimum length
func DropShort(corpus [][]string) [][]string {
	for i := 0; i < len(corpus); i++ {
		var kept []string
		for j := 0; j < len(corpus[i]); j++ {
			if len([]rune(corpus[i][j])) >= vv.MINTOKENLENGTH {
				kept = append(kept, corpus[i][j])
			}
		}
		corpus[i] = kept
	}
	return corpus
}

func isnumeric(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(token) > 0
}
