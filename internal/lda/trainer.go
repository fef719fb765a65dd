//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"fmt"
	"runtime"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"

	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

//
// MODEL TRAINING
//

// training is wholly delegated to the nlp library; this wrapper only translates the recognized
// configuration options onto the library's knobs and hands back the two distributions we report from

// see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the full list of fields;
// the library's own defaults cover whatever the config bundle does not name

type TrainerConfig struct {
	Topics     int
	ChunkSize  int // documents per training batch
	Passes     int // epochs over the full corpus
	Iterations int // inner refinement loop bound per chunk
	EvalEvery  int // 0 disables periodic perplexity evaluation
	Workers    int
	AutoPriors bool
}

func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Topics:     vv.LDATOPICS,
		ChunkSize:  vv.LDACHUNKSIZE,
		Passes:     vv.LDAPASSES,
		Iterations: vv.LDAITER,
		EvalEvery:  vv.LDAEVALFRQ,
		Workers:    runtime.NumCPU(),
		AutoPriors: true,
	}
}

type Model struct {
	K               int
	DocsOverTopics  mat.Matrix // topics x documents
	TopicsOverWords mat.Matrix // topics x vocabulary
}

// Train - fit the model to a term-document matrix; failures come straight back from the library
func Train(tdm mat.Matrix, cfg TrainerConfig) (*Model, error) {
	const (
		ERR1 = "Train() needs at least one topic; got %d"
		ERR2 = "Train() failed to model topics: %w"
	)

	if cfg.Topics < 1 {
		return nil, fmt.Errorf(ERR1, cfg.Topics)
	}

	l := nlp.NewLatentDirichletAllocation(cfg.Topics)
	l.Processes = cfg.Workers
	l.Iterations = cfg.Iterations
	l.BatchSize = cfg.ChunkSize
	l.BurnInPasses = cfg.Passes
	l.TransformationPasses = cfg.Iterations / 2
	l.PerplexityEvaluationFrequency = cfg.EvalEvery

	if cfg.AutoPriors {
		// the library has no gensim-style prior estimation; symmetric 1/k is its stand-in
		l.Alpha = 1 / float64(cfg.Topics)
		l.Eta = 1 / float64(cfg.Topics)
	}

	docsOverTopics, err := l.FitTransform(tdm)
	if err != nil {
		return nil, fmt.Errorf(ERR2, err)
	}

	return &Model{
		K:               cfg.Topics,
		DocsOverTopics:  docsOverTopics,
		TopicsOverWords: l.Components(),
	}, nil
}
