//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lem_test

import (
	"reflect"
	"testing"

	"github.com/d-robson/CorpusTopicModeler/internal/lem"
)

func TestLemmatize(t *testing.T) {
	l, e := lem.NewLemmatizer()
	if e != nil {
		t.Fatalf("NewLemmatizer() failed: %v", e)
	}

	checks := map[string]string{
		"mice":    "mouse",
		"geese":   "goose",
		"better":  "good",
		"being":   "be",
		"entropy": "entropy", // not in the lexicon: pass through
	}
	for in, want := range checks {
		if got := l.Lemmatize(in); got != want {
			t.Errorf("Lemmatize(%q) = %q, wanted %q", in, got, want)
		}
	}
}

func TestLemmatizeIdempotent(t *testing.T) {
	// every headword must map to itself, so a second pass changes nothing
	l, e := lem.NewLemmatizer()
	if e != nil {
		t.Fatalf("NewLemmatizer() failed: %v", e)
	}

	doc := []string{"mice", "are", "better", "classifiers", "than", "geese"}
	once := l.Apply(append([]string(nil), doc...))
	twice := l.Apply(append([]string(nil), once...))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second Apply() changed the output: %v vs %v", once, twice)
	}
}

func TestApplyAllKeepsShape(t *testing.T) {
	l, e := lem.NewLemmatizer()
	if e != nil {
		t.Fatalf("NewLemmatizer() failed: %v", e)
	}

	corpus := [][]string{{"mice", "ran"}, {}, {"geese"}}
	out := l.ApplyAll(corpus)
	if len(out) != 3 || len(out[0]) != 2 || len(out[1]) != 0 || len(out[2]) != 1 {
		t.Errorf("ApplyAll() changed the corpus shape: %v", out)
	}
}
