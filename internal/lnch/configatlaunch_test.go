//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch_test

import (
	"testing"

	"github.com/d-robson/CorpusTopicModeler/internal/lnch"
	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

func TestFillZeroes(t *testing.T) {
	// the shape of a minimal config file: source and pattern set, everything else zeroed
	c := lnch.CurrentConfiguration{
		CorpusSource:  "https://example.com/corpus.tgz",
		CorpusPattern: `.*\.txt$`,
	}
	c.FillZeroes()

	if c.CorpusSource != "https://example.com/corpus.tgz" {
		t.Errorf("FillZeroes() clobbered a set value: %q", c.CorpusSource)
	}

	checks := map[string]bool{
		"PhraseMinCount": c.PhraseMinCount == vv.PHRASEMINCOUNT,
		"NoBelow":        c.NoBelow == vv.VOCABNOBELOW,
		"NoAbove":        c.NoAbove == vv.VOCABNOABOVE,
		"LdaTopics":      c.LdaTopics == vv.LDATOPICS,
		"LdaChunkSize":   c.LdaChunkSize == vv.LDACHUNKSIZE,
		"LdaPasses":      c.LdaPasses == vv.LDAPASSES,
		"LdaIterations":  c.LdaIterations == vv.LDAITER,
		"TopWords":       c.TopWords == vv.LDATOPWORDS,
		"ChartFile":      c.ChartFile == vv.CHARTFILENAME,
		"WorkerCount":    c.WorkerCount > 0,
	}
	for field, ok := range checks {
		if !ok {
			t.Errorf("FillZeroes() left %s without a usable value", field)
		}
	}
}

func TestBuildDefaultConfig(t *testing.T) {
	c := lnch.BuildDefaultConfig()
	if c.CorpusSource != vv.DEFAULTCORPUS || c.PhraseMinCount != vv.PHRASEMINCOUNT {
		t.Errorf("BuildDefaultConfig() strayed from the defaults: %+v", c)
	}
}
