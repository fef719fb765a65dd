//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/d-robson/CorpusTopicModeler/internal/voc"
)

//
// TOPIC COHERENCE
//

// u_mass coherence: for each topic take the top N words and sum log((D(wi,wj)+1)/D(wj)) over the
// ranked pairs, where D() counts documents; higher (closer to zero) means the top words of the
// topic actually co-occur, i.e. the topic is more than an artifact of the fit

type TopicSummary struct {
	Topic     int
	Words     []string
	Coherence float64
}

type wordweight struct {
	id int
	v  float64
}

// TopTopics - the model's topics with their top words, ranked best-coherence-first
func TopTopics(m *Model, dict *voc.Dictionary, bows [][]voc.BowEntry, topn int) []TopicSummary {
	if topn > dict.Len() {
		topn = dict.Len()
	}

	postings := buildpostings(dict.Len(), bows)

	_, vocabsize := m.TopicsOverWords.Dims()

	summaries := make([]TopicSummary, m.K)
	for topic := 0; topic < m.K; topic++ {
		ww := make([]wordweight, vocabsize)
		for word := 0; word < vocabsize; word++ {
			ww[word] = wordweight{id: word, v: m.TopicsOverWords.At(topic, word)}
		}
		sort.Slice(ww, func(i, j int) bool {
			return ww[i].v > ww[j].v
		})

		top := ww[0:topn]
		words := make([]string, topn)
		for i := 0; i < topn; i++ {
			words[i] = dict.IDToToken[top[i].id]
		}

		summaries[topic] = TopicSummary{
			Topic:     topic,
			Words:     words,
			Coherence: umass(top, dict, postings),
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Coherence > summaries[j].Coherence
	})

	return summaries
}

// MeanCoherence - the arithmetic mean over all topic coherences
func MeanCoherence(summaries []TopicSummary) float64 {
	scores := make([]float64, len(summaries))
	for i := 0; i < len(summaries); i++ {
		scores[i] = summaries[i].Coherence
	}
	return stat.Mean(scores, nil)
}

// buildpostings - per token id, the ascending list of documents containing it
func buildpostings(vocabsize int, bows [][]voc.BowEntry) [][]int {
	postings := make([][]int, vocabsize)
	for doc := 0; doc < len(bows); doc++ {
		for _, be := range bows[doc] {
			postings[be.ID] = append(postings[be.ID], doc)
		}
	}
	return postings
}

// umass - the coherence sum for one topic's ranked top words
func umass(top []wordweight, dict *voc.Dictionary, postings [][]int) float64 {
	score := float64(0)
	for m := 1; m < len(top); m++ {
		for l := 0; l < m; l++ {
			codf := intersectcount(postings[top[m].id], postings[top[l].id])
			df := dict.DocFreq[top[l].id]
			if df == 0 {
				// a filtered dictionary cannot produce this, but log(x/0) must never escape
				continue
			}
			score += math.Log(float64(codf+1) / float64(df))
		}
	}
	return score
}

// intersectcount - |A ∩ B| for two ascending doc lists
func intersectcount(aa []int, bb []int) int {
	count := 0
	i, j := 0, 0
	for i < len(aa) && j < len(bb) {
		switch {
		case aa[i] < bb[j]:
			i += 1
		case aa[i] > bb[j]:
			j += 1
		default:
			count += 1
			i += 1
			j += 1
		}
	}
	return count
}
