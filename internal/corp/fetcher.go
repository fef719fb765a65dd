//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corp

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

//
// CORPUS ACQUISITION
//

// a corpus arrives as a tar.gz archive; each member whose path matches the pattern is one document

// Fetch - stream a tar.gz archive from a url or the local filesystem and return the decoded documents
func Fetch(ctx context.Context, source string, pattern string) ([]string, error) {
	const (
		ERR1 = "Fetch() could not compile member pattern '%s': %w"
		ERR2 = "Fetch() could not read the archive at '%s': %w"
		ERR3 = "Fetch() could not gunzip '%s': %w"
		ERR4 = "Fetch() hit a malformed tar entry in '%s': %w"
		ERR5 = "Fetch() could not extract '%s' from '%s': %w"
	)

	re, e := regexp.Compile(pattern)
	if e != nil {
		return nil, fmt.Errorf(ERR1, pattern, e)
	}

	rdr, e := opensource(ctx, source)
	if e != nil {
		return nil, fmt.Errorf(ERR2, source, e)
	}
	defer func() {
		_ = rdr.Close()
	}()

	gz, e := gzip.NewReader(rdr)
	if e != nil {
		return nil, fmt.Errorf(ERR3, source, e)
	}
	defer func() {
		_ = gz.Close()
	}()

	// invalid bytes in a member are swapped for U+FFFD rather than sinking the whole corpus
	dec := unicode.UTF8.NewDecoder()

	var docs []string

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf(ERR4, source, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if !re.MatchString(hdr.Name) {
			continue
		}

		b, err := io.ReadAll(transform.NewReader(tr, dec))
		if err != nil {
			return nil, fmt.Errorf(ERR5, hdr.Name, source, err)
		}
		docs = append(docs, string(b))
	}

	return docs, nil
}

// opensource - a url gets you an http body; anything else is treated as a path
func opensource(ctx context.Context, source string) (io.ReadCloser, error) {
	const (
		ERR1 = "bad response status: %s"
	)

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.Open(source)
	}

	req, e := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if e != nil {
		return nil, e
	}

	resp, e := http.DefaultClient.Do(req)
	if e != nil {
		return nil, e
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf(ERR1, resp.Status)
	}

	return resp.Body, nil
}
