//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package phr

//
// BIGRAM PHRASE DETECTION
//

// adjacent pairs that recur often enough across the whole corpus get promoted to compound tokens:
// "machine learning" everywhere --> "machine_learning" appended to each document that has the pair;
// the unigrams stay put, so downstream vectorization sees "machine", "learning" AND "machine_learning"

const (
	JOINER = "_"
)

type Detector struct {
	MinCount int
	counts   map[string]int
	trained  bool
}

func NewDetector(mincount int) *Detector {
	// a threshold below 1 would promote pairs never seen in training
	if mincount < 1 {
		mincount = 1
	}
	return &Detector{
		MinCount: mincount,
		counts:   make(map[string]int),
	}
}

// Train - count every adjacent token pair across the whole corpus
func (d *Detector) Train(corpus [][]string) {
	for i := 0; i < len(corpus); i++ {
		doc := corpus[i]
		for j := 0; j < len(doc)-1; j++ {
			d.counts[doc[j]+JOINER+doc[j+1]] += 1
		}
	}
	d.trained = true
}

// Promoted - did this pair make the cut?
func (d *Detector) Promoted(a string, b string) bool {
	return d.counts[a+JOINER+b] >= d.MinCount
}

// Apply - append a phrase token for every promoted adjacency in the document
func (d *Detector) Apply(doc []string) []string {
	if !d.trained {
		return doc
	}

	end := len(doc) - 1
	for j := 0; j < end; j++ {
		if d.Promoted(doc[j], doc[j+1]) {
			doc = append(doc, doc[j]+JOINER+doc[j+1])
		}
	}
	return doc
}

// ApplyAll - Apply() to every document; append-only, same slot in the corpus sequence
func (d *Detector) ApplyAll(corpus [][]string) [][]string {
	for i := 0; i < len(corpus); i++ {
		corpus[i] = d.Apply(corpus[i])
	}
	return corpus
}

// Pairs - how many distinct adjacent pairs were seen while training?
func (d *Detector) Pairs() int {
	return len(d.counts)
}
