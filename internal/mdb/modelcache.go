//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mdb

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/d-robson/CorpusTopicModeler/internal/lda"
	"github.com/d-robson/CorpusTopicModeler/internal/lnch"
	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

//
// MODEL REPORT CACHE
//

// training is the expensive part of a run; reports are cached as gzipped json keyed by a
// fingerprint of (source, configuration) so a repeat run can skip straight to the output

const (
	CREATE = `
		CREATE TABLE IF NOT EXISTS %s
		(
		  fingerprint TEXT PRIMARY KEY,
		  runid       TEXT,
		  reportdata  BLOB
		)`
	CHECKQ = `SELECT fingerprint FROM %s WHERE fingerprint = ? LIMIT 1`
	INSERT = `INSERT OR REPLACE INTO %s (fingerprint, runid, reportdata) VALUES (?, ?, ?)`
	FETCHQ = `SELECT reportdata FROM %s WHERE fingerprint = ? LIMIT 1`
	DROP   = `DROP TABLE IF EXISTS %s`
)

// Fingerprint - md5 of the source plus every training option; any change retrains
func Fingerprint(source string, cfg lda.TrainerConfig) string {
	j, e := json.Marshal(struct {
		Source string
		Cfg    lda.TrainerConfig
	}{source, cfg})
	lnch.Msg.EC(e)
	return fmt.Sprintf("%x", md5.Sum(j))
}

// Check - is there a cached report for this fingerprint?
func Check(fp string) bool {
	db := opencache()
	defer func() {
		_ = db.Close()
	}()

	row := db.QueryRow(fmt.Sprintf(CHECKQ, vv.MODELTABLENAME), fp)
	var found string
	return row.Scan(&found) == nil
}

// Add - cache a report; gzip gets the blob down to c. 25% of the original
func Add(fp string, summaries []lda.TopicSummary) {
	const (
		MSG1 = "Add(): cached model report "
	)

	eb, e := json.Marshal(summaries)
	lnch.Msg.EC(e)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, e = zw.Write(eb)
	lnch.Msg.EC(e)
	e = zw.Close()
	lnch.Msg.EC(e)

	db := opencache()
	defer func() {
		_ = db.Close()
	}()

	_, e = db.Exec(fmt.Sprintf(INSERT, vv.MODELTABLENAME), fp, uuid.New().String(), buf.Bytes())
	lnch.Msg.EC(e)
	lnch.Msg.FYI(MSG1 + fp)
}

// Fetch - pull a cached report back out
func Fetch(fp string) []lda.TopicSummary {
	const (
		MSG1 = "Fetch(): reusing cached model report "
	)

	db := opencache()
	defer func() {
		_ = db.Close()
	}()

	var blob []byte
	row := db.QueryRow(fmt.Sprintf(FETCHQ, vv.MODELTABLENAME), fp)
	e := row.Scan(&blob)
	lnch.Msg.EC(e)

	zr, e := gzip.NewReader(bytes.NewReader(blob))
	lnch.Msg.EC(e)
	decompr, e := io.ReadAll(zr)
	lnch.Msg.EC(e)
	e = zr.Close()
	lnch.Msg.EC(e)

	var summaries []lda.TopicSummary
	e = json.Unmarshal(decompr, &summaries)
	lnch.Msg.EC(e)

	lnch.Msg.FYI(MSG1 + fp)

	return summaries
}

// Reset - drop the cache table
func Reset() {
	const (
		MSG1 = "Reset(): model cache dropped"
	)

	db := opencache()
	defer func() {
		_ = db.Close()
	}()

	_, e := db.Exec(fmt.Sprintf(DROP, vv.MODELTABLENAME))
	lnch.Msg.EC(e)
	lnch.Msg.NOTE(MSG1)
}

func opencache() *sql.DB {
	uh, e := os.UserHomeDir()
	lnch.Msg.EC(e)

	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	_ = os.MkdirAll(h, 0755)

	db, e := sql.Open("sqlite", h+vv.MODELCACHEDB)
	lnch.Msg.EC(e)

	_, e = db.Exec(fmt.Sprintf(CREATE, vv.MODELTABLENAME))
	lnch.Msg.EC(e)

	return db
}
