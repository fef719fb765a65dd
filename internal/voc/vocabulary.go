//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package voc

import (
	"errors"
	"sort"
)

//
// VOCABULARY BUILDING AND FILTERING
//

// a Dictionary maps tokens to dense integer ids assigned in first-seen order and tracks, per token,
// how many documents contain it; after FilterExtremes() the ids are renumbered compactly and final

var (
	ErrEmptyVocabulary = errors.New("vocabulary filtering removed every token")
)

type BowEntry struct {
	ID    int
	Count int
}

type Dictionary struct {
	TokenToID map[string]int
	IDToToken []string
	DocFreq   []int // indexed by id
	NumDocs   int
	final     bool
}

// NewDictionary - one pass over the finished corpus of token sequences
func NewDictionary(corpus [][]string) *Dictionary {
	d := &Dictionary{
		TokenToID: make(map[string]int),
		NumDocs:   len(corpus),
	}

	for i := 0; i < len(corpus); i++ {
		seen := make(map[int]struct{})
		for j := 0; j < len(corpus[i]); j++ {
			t := corpus[i][j]
			id, ok := d.TokenToID[t]
			if !ok {
				id = len(d.IDToToken)
				d.TokenToID[t] = id
				d.IDToToken = append(d.IDToToken, t)
				d.DocFreq = append(d.DocFreq, 0)
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				d.DocFreq[id] += 1
			}
		}
	}

	return d
}

// FilterExtremes - drop tokens in fewer than noBelow documents or in more than noAbove of all documents;
// removal is permanent and the survivors are renumbered, first-seen order preserved
func (d *Dictionary) FilterExtremes(noBelow int, noAbove float64) error {
	ceiling := noAbove * float64(d.NumDocs)

	newtoid := make(map[string]int)
	var newtokens []string
	var newdf []int

	for id := 0; id < len(d.IDToToken); id++ {
		df := d.DocFreq[id]
		if df < noBelow || float64(df) > ceiling {
			continue
		}
		t := d.IDToToken[id]
		newtoid[t] = len(newtokens)
		newtokens = append(newtokens, t)
		newdf = append(newdf, df)
	}

	if len(newtokens) == 0 {
		return ErrEmptyVocabulary
	}

	d.TokenToID = newtoid
	d.IDToToken = newtokens
	d.DocFreq = newdf
	d.final = true

	return nil
}

// Doc2Bow - sparse (id, count) representation of one document; filtered-out tokens are silently dropped
func (d *Dictionary) Doc2Bow(doc []string) []BowEntry {
	counts := make(map[int]int)
	for i := 0; i < len(doc); i++ {
		if id, ok := d.TokenToID[doc[i]]; ok {
			counts[id] += 1
		}
	}

	bow := make([]BowEntry, 0, len(counts))
	for id, ct := range counts {
		bow = append(bow, BowEntry{ID: id, Count: ct})
	}
	sort.Slice(bow, func(i, j int) bool {
		return bow[i].ID < bow[j].ID
	})

	return bow
}

// VectorizeAll - Doc2Bow() for the whole corpus; empty vectors stay in place to keep document counts honest
func (d *Dictionary) VectorizeAll(corpus [][]string) [][]BowEntry {
	bows := make([][]BowEntry, len(corpus))
	for i := 0; i < len(corpus); i++ {
		bows[i] = d.Doc2Bow(corpus[i])
	}
	return bows
}

// Len - size of the (possibly filtered) vocabulary
func (d *Dictionary) Len() int {
	return len(d.IDToToken)
}
