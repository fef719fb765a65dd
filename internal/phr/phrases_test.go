//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package phr_test

import (
	"reflect"
	"testing"

	"github.com/d-robson/CorpusTopicModeler/internal/phr"
)

// repeatpair - a corpus holding the pair (a, b) exactly n times
func repeatpair(a string, b string, n int) [][]string {
	corpus := make([][]string, n)
	for i := 0; i < n; i++ {
		corpus[i] = []string{a, b}
	}
	return corpus
}

func TestThresholdIsExact(t *testing.T) {
	const MIN = 20

	d := phr.NewDetector(MIN)
	d.Train(repeatpair("hidden", "unit", MIN-1))
	if d.Promoted("hidden", "unit") {
		t.Errorf("pair promoted at %d occurrences with threshold %d", MIN-1, MIN)
	}

	d = phr.NewDetector(MIN)
	d.Train(repeatpair("hidden", "unit", MIN))
	if !d.Promoted("hidden", "unit") {
		t.Errorf("pair not promoted at %d occurrences with threshold %d", MIN, MIN)
	}
}

func TestApplyAppends(t *testing.T) {
	d := phr.NewDetector(2)
	d.Train([][]string{
		{"neural", "network", "training"},
		{"neural", "network", "weights"},
	})

	got := d.Apply([]string{"neural", "network", "training"})
	want := []string{"neural", "network", "training", "neural_network"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, wanted %v", got, want)
	}
}

func TestApplyAppendsPerOccurrence(t *testing.T) {
	d := phr.NewDetector(1)
	d.Train([][]string{{"a1", "b1", "a1", "b1"}})

	got := d.Apply([]string{"a1", "b1", "a1", "b1"})
	// two adjacencies of the promoted pair, so two appended phrase tokens
	count := 0
	for _, tk := range got {
		if tk == "a1"+phr.JOINER+"b1" {
			count += 1
		}
	}
	if count != 2 {
		t.Errorf("Apply() appended %d phrase tokens, wanted 2: %v", count, got)
	}
}

func TestAppendedPhrasesDoNotChain(t *testing.T) {
	// phrase tokens appended during Apply() must not themselves form new pairs
	d := phr.NewDetector(1)
	d.Train([][]string{{"a1", "b1", "c1"}})

	got := d.Apply([]string{"a1", "b1", "c1"})
	for _, tk := range got {
		if tk == "c1"+phr.JOINER+"a1"+phr.JOINER+"b1" || tk == "a1"+phr.JOINER+"b1"+phr.JOINER+"c1" {
			t.Errorf("Apply() chained an appended phrase: %v", got)
		}
	}
}

func TestZeroThresholdIsFloored(t *testing.T) {
	// a threshold of zero must not promote pairs the training never saw
	d := phr.NewDetector(0)
	d.Train([][]string{{"cc", "dd"}})

	if d.Promoted("never", "seen") {
		t.Errorf("an unseen pair was promoted at threshold 0")
	}

	got := d.Apply([]string{"cc", "dd", "ee"})
	for _, tk := range got {
		if tk == "dd"+phr.JOINER+"ee" {
			t.Errorf("an unseen pair was promoted during Apply(): %v", got)
		}
	}
	if !d.Promoted("cc", "dd") {
		t.Errorf("a seen pair should clear the floored threshold")
	}
}

func TestUntrainedApplyIsANoop(t *testing.T) {
	d := phr.NewDetector(1)
	doc := []string{"a1", "b1"}
	if got := d.Apply(doc); len(got) != 2 {
		t.Errorf("untrained Apply() altered the document: %v", got)
	}
}
