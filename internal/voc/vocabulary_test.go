//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package voc_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/d-robson/CorpusTopicModeler/internal/voc"
)

// spreadcorpus - 100 documents; token t appears in exactly df of them
func spreadcorpus(spread map[string]int) [][]string {
	corpus := make([][]string, 100)
	for i := 0; i < 100; i++ {
		corpus[i] = []string{}
	}
	for t, df := range spread {
		for i := 0; i < df; i++ {
			corpus[i] = append(corpus[i], t)
		}
	}
	return corpus
}

func TestFilterExtremesBounds(t *testing.T) {
	d := voc.NewDictionary(spreadcorpus(map[string]int{
		"rare":   19, // under the floor
		"floor":  20, // exactly on the floor
		"middle": 35,
		"edge":   50, // exactly half the corpus
		"common": 51, // over the ceiling
	}))

	if e := d.FilterExtremes(20, 0.5); e != nil {
		t.Fatalf("FilterExtremes() failed: %v", e)
	}

	for _, keep := range []string{"floor", "middle", "edge"} {
		if _, ok := d.TokenToID[keep]; !ok {
			t.Errorf("%q should have survived filtering", keep)
		}
	}
	for _, drop := range []string{"rare", "common"} {
		if _, ok := d.TokenToID[drop]; ok {
			t.Errorf("%q should have been filtered out", drop)
		}
	}
}

func TestFilterExtremesRenumbers(t *testing.T) {
	corpus := [][]string{
		{"aa", "bb", "cc"},
		{"bb", "cc"},
		{"cc"},
	}
	d := voc.NewDictionary(corpus)

	// aa (df 1) goes; bb and cc must be renumbered to 0 and 1 in first-seen order
	if e := d.FilterExtremes(2, 1.0); e != nil {
		t.Fatalf("FilterExtremes() failed: %v", e)
	}
	if d.Len() != 2 {
		t.Fatalf("filtered vocabulary size = %d, wanted 2", d.Len())
	}
	if d.TokenToID["bb"] != 0 || d.TokenToID["cc"] != 1 {
		t.Errorf("ids not compact and first-seen ordered: %v", d.TokenToID)
	}
	if d.DocFreq[0] != 2 || d.DocFreq[1] != 3 {
		t.Errorf("document frequencies did not follow the renumbering: %v", d.DocFreq)
	}
}

func TestFilterExtremesEmpty(t *testing.T) {
	d := voc.NewDictionary([][]string{{"aa"}, {"aa"}})
	e := d.FilterExtremes(3, 1.0)
	if !errors.Is(e, voc.ErrEmptyVocabulary) {
		t.Errorf("FilterExtremes() = %v, wanted ErrEmptyVocabulary", e)
	}
}

func TestDoc2Bow(t *testing.T) {
	corpus := [][]string{
		{"cat", "dog", "cat"},
		{"dog", "bird"},
		{"cat", "dog", "bird", "fish"},
	}
	d := voc.NewDictionary(corpus)
	if e := d.FilterExtremes(1, 1.0); e != nil {
		t.Fatalf("FilterExtremes() failed: %v", e)
	}

	if d.Len() != 4 {
		t.Fatalf("vocabulary size = %d, wanted exactly {cat, dog, bird, fish}", d.Len())
	}
	for _, w := range []string{"cat", "dog", "bird", "fish"} {
		if _, ok := d.TokenToID[w]; !ok {
			t.Errorf("%q is missing from the vocabulary", w)
		}
	}

	got := d.Doc2Bow(corpus[0])
	want := []voc.BowEntry{
		{ID: d.TokenToID["cat"], Count: 2},
		{ID: d.TokenToID["dog"], Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Doc2Bow() = %v, wanted %v", got, want)
	}
}

func TestDoc2BowDropsUnknown(t *testing.T) {
	d := voc.NewDictionary([][]string{{"cat", "dog"}, {"cat"}})
	if e := d.FilterExtremes(2, 1.0); e != nil {
		t.Fatalf("FilterExtremes() failed: %v", e)
	}

	// dog was filtered; quail was never seen; only cat survives
	got := d.Doc2Bow([]string{"dog", "cat", "quail", "cat"})
	want := []voc.BowEntry{{ID: d.TokenToID["cat"], Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Doc2Bow() = %v, wanted %v", got, want)
	}
}

func TestVectorizeRoundTrip(t *testing.T) {
	// every in-vocabulary occurrence is accounted for once and only once
	corpus := [][]string{
		{"cat", "dog", "cat", "bird"},
		{},
		{"dog", "dog", "dog"},
	}
	d := voc.NewDictionary(corpus)

	bows := d.VectorizeAll(corpus)
	if len(bows) != len(corpus) {
		t.Fatalf("VectorizeAll() returned %d vectors for %d documents", len(bows), len(corpus))
	}

	for i := 0; i < len(corpus); i++ {
		total := 0
		for _, be := range bows[i] {
			total += be.Count
		}
		if total != len(corpus[i]) {
			t.Errorf("document %d: bow counts sum to %d, wanted %d", i, total, len(corpus[i]))
		}
	}

	if len(bows[1]) != 0 {
		t.Errorf("empty document produced a non-empty vector: %v", bows[1])
	}
}

func TestFirstSeenIDs(t *testing.T) {
	d := voc.NewDictionary([][]string{{"zz", "aa"}, {"mm", "aa"}})
	for i, want := range []string{"zz", "aa", "mm"} {
		if d.IDToToken[i] != want {
			t.Errorf("id %d = %q, wanted %q (first-seen order)", i, d.IDToToken[i], want)
		}
	}
}

func TestTermDocMatrixShape(t *testing.T) {
	corpus := [][]string{
		{"cat", "dog", "cat"},
		{"dog", "bird"},
	}
	d := voc.NewDictionary(corpus)
	bows := d.VectorizeAll(corpus)

	tdm := voc.TermDocMatrix(d, bows)
	r, c := tdm.Dims()
	if r != d.Len() || c != len(bows) {
		t.Fatalf("TermDocMatrix() dims = %dx%d, wanted %dx%d", r, c, d.Len(), len(bows))
	}
	if got := tdm.At(d.TokenToID["cat"], 0); got != 2 {
		t.Errorf("matrix[cat][0] = %v, wanted 2", got)
	}
	if got := tdm.At(d.TokenToID["bird"], 0); got != 0 {
		t.Errorf("matrix[bird][0] = %v, wanted 0", got)
	}
}

func ExampleDictionary_Doc2Bow() {
	corpus := [][]string{{"cat", "dog", "cat"}}
	d := voc.NewDictionary(corpus)
	for _, be := range d.Doc2Bow(corpus[0]) {
		fmt.Printf("(%d, %d) ", be.ID, be.Count)
	}
	// Output: (0, 2) (1, 1)
}
