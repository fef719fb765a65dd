//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok_test

import (
	"reflect"
	"testing"

	"github.com/d-robson/CorpusTopicModeler/internal/tok"
)

func TestTokenize(t *testing.T) {
	in := "The CAT sat; the cat (the SAME cat!) sat."
	want := []string{"the", "cat", "sat", "the", "cat", "the", "same", "cat", "sat"}
	got := tok.Tokenize(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, wanted %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := tok.Tokenize("...!?;"); len(got) != 0 {
		t.Errorf("Tokenize() on pure punctuation = %v, wanted nothing", got)
	}
}

func TestDropNumeric(t *testing.T) {
	corpus := [][]string{{"model", "42", "x9", "1999", "topic"}}
	want := []string{"model", "x9", "topic"}
	got := tok.DropNumeric(corpus)[0]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DropNumeric() = %v, wanted %v", got, want)
	}
}

func TestDropShort(t *testing.T) {
	corpus := [][]string{{"a", "of", "x", "topic", "λ"}}
	want := []string{"of", "topic"}
	got := tok.DropShort(corpus)[0]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DropShort() = %v, wanted %v", got, want)
	}
}

func TestFilterOrderPreserved(t *testing.T) {
	// the two filters must keep survivors in their original order
	corpus := tok.TokenizeAll([]string{"9 zz 9 yy 9 xx"})
	corpus = tok.DropNumeric(corpus)
	corpus = tok.DropShort(corpus)
	want := []string{"zz", "yy", "xx"}
	if !reflect.DeepEqual(corpus[0], want) {
		t.Errorf("filtered corpus = %v, wanted %v", corpus[0], want)
	}
}
