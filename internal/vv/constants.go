//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Corpus Topic Modeler"
	SHORTNAME = "CTM"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/d-robson/CorpusTopicModeler"

	// the corpus that gets modeled if you say nothing on the launch line: the NIPS papers, 1987-1999
	DEFAULTCORPUS  = "https://cs.nyu.edu/~roweis/data/nips12raw_str602.tgz"
	DEFAULTPATTERN = `nipstxt/nips.*\.txt$`

	// LDA model defaults
	LDATOPICS    = 10
	LDAMAXTOPICS = 30
	LDACHUNKSIZE = 2000
	LDAPASSES    = 20
	LDAITER      = 400
	LDAEVALFRQ   = 0 // 0 disables the periodic perplexity evaluation; it is expensive
	LDATOPWORDS  = 20

	// preprocessing defaults
	PHRASEMINCOUNT = 20
	VOCABNOBELOW   = 20
	VOCABNOABOVE   = 0.5
	MINTOKENLENGTH = 2

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/ctm/"
	CONFIGNAME     = "ctm-conf.json"
	CONFIGLEXICON  = "ctm-lexicon.db"
	MODELCACHEDB   = "ctm-models.db"
	MODELTABLENAME = "topic_model_reports"
	CHARTFILENAME  = "ctm-topics.html"
	CHARTWIDTH     = "1200px"
	CHARTHEIGHT    = "600px"

	JSONINDENT = "  "
	WRITEPERMS = 0644

	DEFAULTLOGLEVEL = 2

	MINCONFIG = `
{"CorpusSource": "https://example.com/corpus.tgz","CorpusPattern": ".*\\.txt$"}
`

	HELPTEXTTEMPLATE = `S1Launch options for C5{{.myname}}C0 v.{{.version}}:S0
   C1-bwC0     disable color in the terminal output
   C1-chC0     write an html coherence chart to '{{.chart}}' when done
   C1-cfC0 {f} read a non-default configuration file ('{{.conffile}}' is the default)
   C1-dbrC0    reset the model cache database and exit
   C1-glC0 {n} log level (current: C3{{.loglevel}}C0)
   C1-itC0 {n} model training iterations per chunk (current: C3{{.iterations}}C0)
   C1-lxC0 {f} load a lemma lexicon from a sqlite db instead of the embedded one
   C1-mcC0 {n} minimum corpus-wide count for bigram phrase promotion (current: C3{{.mincount}}C0)
   C1-naC0 {f} drop vocabulary present in more than this fraction of documents (current: C3{{.noabove}}C0)
   C1-nbC0 {n} drop vocabulary present in fewer than this many documents (current: C3{{.nobelow}}C0)
   C1-pC0  {s} archive member pattern (current: C3{{.pattern}}C0)
   C1-pcC0     write a cpu profile to the current working directory
   C1-pmC0     write a memory profile to the current working directory
   C1-psC0 {n} passes over the corpus while training (current: C3{{.passes}}C0)
   C1-qC0      quiet start
   C1-tpC0 {n} number of topics to model (current: C3{{.topics}}C0)
   C1-uC0  {s} corpus url or local archive path (current: C3{{.source}}C0)
   C1-vC0      print version and exit
   C1-wcC0 {n} workers for the modeler (current: C3{{.workers}}C0)
   C1-hC0      this message
`
)
