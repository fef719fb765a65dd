//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package voc

import (
	"github.com/james-bowman/sparse"
)

//
// TERM-DOCUMENT MATRIX
//

// the modeling library wants its corpus as a matrix with one row per vocabulary term and one
// column per document; this is the same orientation its own CountVectoriser would produce

// TermDocMatrix - assemble the sparse term-document matrix from the vectorized corpus
func TermDocMatrix(d *Dictionary, bows [][]BowEntry) *sparse.CSR {
	dok := sparse.NewDOK(d.Len(), len(bows))

	for doc := 0; doc < len(bows); doc++ {
		for _, be := range bows[doc] {
			dok.Set(be.ID, doc, float64(be.Count))
		}
	}

	return dok.ToCSR()
}
