//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d-robson/CorpusTopicModeler/internal/corp"
	"github.com/d-robson/CorpusTopicModeler/internal/gen"
	"github.com/d-robson/CorpusTopicModeler/internal/lda"
	"github.com/d-robson/CorpusTopicModeler/internal/lem"
	"github.com/d-robson/CorpusTopicModeler/internal/lnch"
	"github.com/d-robson/CorpusTopicModeler/internal/mdb"
	"github.com/d-robson/CorpusTopicModeler/internal/mm"
	"github.com/d-robson/CorpusTopicModeler/internal/phr"
	"github.com/d-robson/CorpusTopicModeler/internal/tok"
	"github.com/d-robson/CorpusTopicModeler/internal/voc"
)

//
// THE PIPELINE
//

// six stages, strictly in order, each fully materialized before the next starts:
// acquire --> tokenize --> lemmatize --> phrases --> vocabulary --> vectorize + train
// the whole corpus and all of its derivatives sit in memory; this is not for huge datasets

// Run - execute the full pipeline as configured at launch
func Run(ctx context.Context) {
	const (
		ERR1  = "no documents matched '%s' in '%s'"
		MSG1  = "%d documents fetched"
		MSG2  = "corpus tokenized and filtered"
		MSG3  = "corpus lemmatized (%d forms in the lexicon)"
		MSG4  = "phrases detected (%d distinct adjacent pairs seen)"
		MSG5  = "vocabulary built and filtered: %d tokens over %d documents"
		MSG6  = "corpus vectorized"
		MSG7  = "model trained"
		MSG8  = "dominant-topic document counts: %v"
		MSG9  = "%d distinct surface forms before lemmatization"
		MSG10 = "relative topic weights: %s"
	)

	cfg := lnch.Config

	start := time.Now()
	previous := time.Now()

	// [a] acquisition

	docs, e := corp.Fetch(ctx, cfg.CorpusSource, cfg.CorpusPattern)
	lnch.Msg.EC(e)
	if len(docs) == 0 {
		lnch.Msg.EC(fmt.Errorf(ERR1, cfg.CorpusPattern, cfg.CorpusSource))
	}
	lnch.Msg.Timer("A1", fmt.Sprintf(MSG1, len(docs)), start, previous)
	previous = time.Now()

	// [b] tokenization; the numeric and short-token filters are separate corpus-wide passes

	corpus := tok.TokenizeAll(docs)
	corpus = tok.DropNumeric(corpus)
	corpus = tok.DropShort(corpus)
	if cfg.LogLevel >= mm.MSGPEEK {
		lnch.Msg.PEEK(fmt.Sprintf(MSG9, len(gen.Unique(gen.FlattenSlices(corpus)))))
	}
	lnch.Msg.Timer("A2", MSG2, start, previous)
	previous = time.Now()

	// [c] lemmatization

	lemmatizer, e := buildlemmatizer(cfg.LexiconDB)
	lnch.Msg.EC(e)
	corpus = lemmatizer.ApplyAll(corpus)
	lnch.Msg.Timer("B1", fmt.Sprintf(MSG3, lemmatizer.Len()), start, previous)
	previous = time.Now()

	// [d] phrase augmentation

	detector := phr.NewDetector(cfg.PhraseMinCount)
	detector.Train(corpus)
	corpus = detector.ApplyAll(corpus)
	lnch.Msg.Timer("B2", fmt.Sprintf(MSG4, detector.Pairs()), start, previous)
	previous = time.Now()

	// [e] vocabulary; an empty post-filter vocabulary is fatal, not a degenerate model

	dict := voc.NewDictionary(corpus)
	e = dict.FilterExtremes(cfg.NoBelow, cfg.NoAbove)
	lnch.Msg.EC(e)
	lnch.Msg.Timer("C1", fmt.Sprintf(MSG5, dict.Len(), dict.NumDocs), start, previous)
	previous = time.Now()

	// [f] vectorization and training; cached reports short-circuit the expensive part

	bows := dict.VectorizeAll(corpus)
	tdm := voc.TermDocMatrix(dict, bows)
	lnch.Msg.Timer("C2", MSG6, start, previous)
	previous = time.Now()

	tcfg := trainerconfig()
	fp := mdb.Fingerprint(cfg.CorpusSource, tcfg)

	var summaries []lda.TopicSummary
	if mdb.Check(fp) {
		summaries = mdb.Fetch(fp)
	} else {
		model, err := lda.Train(tdm, tcfg)
		lnch.Msg.EC(err)
		lnch.Msg.Timer("C3", MSG7, start, previous)
		lnch.Msg.FYI(fmt.Sprintf(MSG8, lda.DocsPerTopic(model.K, model.DocsOverTopics)))
		ww := make([]string, 0, model.K)
		for _, w := range lda.TopicWeights(model.K, model.DocsOverTopics) {
			ww = append(ww, fmt.Sprintf("%.2f", w))
		}
		lnch.Msg.FYI(fmt.Sprintf(MSG10, strings.Join(ww, ", ")))
		summaries = lda.TopTopics(model, dict, bows, cfg.TopWords)
		mdb.Add(fp, summaries)
	}

	report(summaries)
}

// report - the terminal table and, on request, the html chart
func report(summaries []lda.TopicSummary) {
	const (
		MSG1 = "wrote coherence chart: "
	)

	mean := lda.MeanCoherence(summaries)
	fmt.Println(lda.ReportTopics(summaries, mean))

	if lnch.Config.WriteChart {
		e := lda.CoherenceChart(summaries, mean, lnch.Config.ChartFile)
		lnch.Msg.EC(e)
		lnch.Msg.NOTE(MSG1 + lnch.Config.ChartFile)
	}
}

func buildlemmatizer(lexicondb string) (*lem.Lemmatizer, error) {
	if lexicondb != "" {
		return lem.NewLemmatizerFromDB(lexicondb)
	}
	return lem.NewLemmatizer()
}

func trainerconfig() lda.TrainerConfig {
	cfg := lnch.Config
	if cfg == nil {
		return lda.DefaultTrainerConfig()
	}
	return lda.TrainerConfig{
		Topics:     cfg.LdaTopics,
		ChunkSize:  cfg.LdaChunkSize,
		Passes:     cfg.LdaPasses,
		Iterations: cfg.LdaIterations,
		EvalEvery:  cfg.LdaEvalEvery,
		Workers:    cfg.WorkerCount,
		AutoPriors: true,
	}
}
