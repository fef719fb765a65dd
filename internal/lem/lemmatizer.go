//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lem

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

//
// LEMMATIZING
//

// a lemmatizer is a fixed lexical lookup: observed form in, headword out; unknown forms pass through unchanged

//go:embed efs
var efs embed.FS

const (
	LEXICONFILE = "efs/lexicon.json"

	// the sqlite variant wants a table built as:
	// CREATE TABLE lemmata ( observed TEXT PRIMARY KEY, headword TEXT )
	LEXICONQUERY = `SELECT observed, headword FROM lemmata`
)

type Lemmatizer struct {
	lexicon map[string]string
}

// NewLemmatizer - build a Lemmatizer from the embedded lexicon
func NewLemmatizer() (*Lemmatizer, error) {
	const (
		ERR1 = "NewLemmatizer() could not read the embedded lexicon: %w"
		ERR2 = "NewLemmatizer() could not parse the embedded lexicon: %w"
	)

	b, e := efs.ReadFile(LEXICONFILE)
	if e != nil {
		return nil, fmt.Errorf(ERR1, e)
	}

	lx := make(map[string]string)
	if e = json.Unmarshal(b, &lx); e != nil {
		return nil, fmt.Errorf(ERR2, e)
	}

	return &Lemmatizer{lexicon: lx}, nil
}

// NewLemmatizerFromDB - build a Lemmatizer from a sqlite lexicon; for lexica too big to embed
func NewLemmatizerFromDB(path string) (*Lemmatizer, error) {
	const (
		ERR1 = "NewLemmatizerFromDB() could not open '%s': %w"
		ERR2 = "NewLemmatizerFromDB() could not query '%s': %w"
		ERR3 = "NewLemmatizerFromDB() could not scan a row in '%s': %w"
	)

	db, e := sql.Open("sqlite", path)
	if e != nil {
		return nil, fmt.Errorf(ERR1, path, e)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, e := db.Query(LEXICONQUERY)
	if e != nil {
		return nil, fmt.Errorf(ERR2, path, e)
	}
	defer rows.Close()

	lx := make(map[string]string)
	for rows.Next() {
		var o, h string
		if e = rows.Scan(&o, &h); e != nil {
			return nil, fmt.Errorf(ERR3, path, e)
		}
		lx[o] = h
	}

	return &Lemmatizer{lexicon: lx}, rows.Err()
}

// Lemmatize - map one token to its headword; tokens absent from the lexicon are returned unchanged
func (l *Lemmatizer) Lemmatize(token string) string {
	if hw, ok := l.lexicon[token]; ok {
		return hw
	}
	return token
}

// Apply - lemmatize a document token by token; no cross-token context
func (l *Lemmatizer) Apply(doc []string) []string {
	for i := 0; i < len(doc); i++ {
		doc[i] = l.Lemmatize(doc[i])
	}
	return doc
}

// ApplyAll - Apply() to every document; same slot in the corpus sequence
func (l *Lemmatizer) ApplyAll(corpus [][]string) [][]string {
	for i := 0; i < len(corpus); i++ {
		corpus[i] = l.Apply(corpus[i])
	}
	return corpus
}

// Len - how many observed forms does the lexicon know?
func (l *Lemmatizer) Len() int {
	return len(l.lexicon)
}
