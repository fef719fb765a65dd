//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

//
// REPORTING
//

// ReportTopics - the terminal topic table: rank, coherence, top words
func ReportTopics(summaries []TopicSummary, mean float64) string {
	const (
		HEAD = "rank\tcoherence\ttop words"
		ROW  = "%d\t%.4f\t%s"
		FOOT = "mean topic coherence: %.4f"
	)

	var rows []string
	rows = append(rows, HEAD)
	for i, s := range summaries {
		rows = append(rows, fmt.Sprintf(ROW, i+1, s.Coherence, strings.Join(s.Words, ", ")))
	}
	rows = append(rows, fmt.Sprintf(FOOT, mean))

	return strings.Join(rows, "\n")
}

// DocsPerTopic - N documents have topic X as their dominant topic
func DocsPerTopic(ntopics int, docsOverTopics mat.Matrix) []int {
	counter := make([]int, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		counter[winner] += 1
	}
	return counter
}

// TopicWeights - scaled total accumulated weight of each topic
func TopicWeights(ntopics int, docsOverTopics mat.Matrix) []float64 {
	counter := make([]float64, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += docsOverTopics.At(topic, doc)
		}
	}

	mx := make([]float64, ntopics)
	copy(mx, counter)
	sort.Float64s(mx)
	high := mx[len(mx)-1]

	scaled := make([]float64, ntopics)
	for i := 0; i < ntopics; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// CoherenceChart - write an html bar chart of the per-topic coherences
func CoherenceChart(summaries []TopicSummary, mean float64, fn string) error {
	const (
		TITLE = "Topics ranked by u_mass coherence"
		SUBT  = "mean coherence: %.4f"
		SERIES = "u_mass coherence"
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    TITLE,
			Subtitle: fmt.Sprintf(SUBT, mean),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: vv.MYNAME,
			Width:     vv.CHARTWIDTH,
			Height:    vv.CHARTHEIGHT,
		}),
	)

	var xx []string
	var yy []opts.BarData
	for _, s := range summaries {
		xx = append(xx, fmt.Sprintf("topic %d", s.Topic+1))
		yy = append(yy, opts.BarData{Value: s.Coherence})
	}

	bar.SetXAxis(xx).AddSeries(SERIES, yy)

	f, e := os.Create(fn)
	if e != nil {
		return e
	}
	defer func() {
		_ = f.Close()
	}()

	return bar.Render(f)
}
