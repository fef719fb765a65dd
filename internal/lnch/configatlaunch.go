//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"

	"github.com/d-robson/CorpusTopicModeler/internal/mm"
	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

var (
	Config *CurrentConfiguration
	Msg    = mm.NewMessageMaker()
)

type CurrentConfiguration struct {
	BlackAndWhite  bool
	ChartFile      string
	CorpusPattern  string
	CorpusSource   string
	LdaChunkSize   int
	LdaEvalEvery   int
	LdaIterations  int
	LdaPasses      int
	LdaTopics      int
	LexiconDB      string
	LogLevel       int
	NoAbove        float64
	NoBelow        int
	PhraseMinCount int
	ProfileCPU     bool
	ProfileMEM     bool
	QuietStart     bool
	ResetCache     bool
	TopWords       int
	WorkerCount    int
	WriteChart     bool
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *CurrentConfiguration {
	var c CurrentConfiguration
	c.BlackAndWhite = false
	c.ChartFile = vv.CHARTFILENAME
	c.CorpusPattern = vv.DEFAULTPATTERN
	c.CorpusSource = vv.DEFAULTCORPUS
	c.LdaChunkSize = vv.LDACHUNKSIZE
	c.LdaEvalEvery = vv.LDAEVALFRQ
	c.LdaIterations = vv.LDAITER
	c.LdaPasses = vv.LDAPASSES
	c.LdaTopics = vv.LDATOPICS
	c.LexiconDB = ""
	c.LogLevel = vv.DEFAULTLOGLEVEL
	c.NoAbove = vv.VOCABNOABOVE
	c.NoBelow = vv.VOCABNOBELOW
	c.PhraseMinCount = vv.PHRASEMINCOUNT
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.ResetCache = false
	c.TopWords = vv.LDATOPWORDS
	c.WorkerCount = runtime.NumCPU()
	c.WriteChart = false
	return &c
}

// FillZeroes - a minimal or old config file zeroes items that must not be zero
func (c *CurrentConfiguration) FillZeroes() {
	if c.ChartFile == "" {
		c.ChartFile = vv.CHARTFILENAME
	}
	if c.CorpusPattern == "" {
		c.CorpusPattern = vv.DEFAULTPATTERN
	}
	if c.CorpusSource == "" {
		c.CorpusSource = vv.DEFAULTCORPUS
	}
	if c.LdaChunkSize == 0 {
		c.LdaChunkSize = vv.LDACHUNKSIZE
	}
	if c.LdaIterations == 0 {
		c.LdaIterations = vv.LDAITER
	}
	if c.LdaPasses == 0 {
		c.LdaPasses = vv.LDAPASSES
	}
	if c.LdaTopics == 0 {
		c.LdaTopics = vv.LDATOPICS
	}
	if c.NoAbove == 0 {
		c.NoAbove = vv.VOCABNOABOVE
	}
	if c.NoBelow == 0 {
		c.NoBelow = vv.VOCABNOBELOW
	}
	if c.PhraseMinCount == 0 {
		c.PhraseMinCount = vv.PHRASEMINCOUNT
	}
	if c.TopWords == 0 {
		c.TopWords = vv.LDATOPWORDS
	}
	if c.WorkerCount == 0 {
		c.WorkerCount = runtime.NumCPU()
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = `A minimal acceptable configuration file looks like:`
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL3 = "Refusing to model more than %d topics: %d requested ---> setting topics to %d"
		FAIL4 = "ConfigAtLaunch() failed to execute help text template"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	cf := h + vv.CONFIGNAME

	args := os.Args[1:len(os.Args)]

	// "-cf" has to win before the file is read
	for i, a := range args {
		if a == "-cf" {
			cf = args[i+1]
		}
	}

	loadedcfg, e := os.Open(cf)
	if e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
			Msg.CRIT(FAIL5)
			fmt.Println(Msg.Color("C2" + vv.MINCONFIG + "C0"))
		}
	}

	Config.FillZeroes()

	help := func() {
		m := map[string]interface{}{
			"myname":     vv.MYNAME,
			"version":    vv.VERSION,
			"chart":      Config.ChartFile,
			"conffile":   cf,
			"loglevel":   Config.LogLevel,
			"iterations": Config.LdaIterations,
			"mincount":   Config.PhraseMinCount,
			"noabove":    Config.NoAbove,
			"nobelow":    Config.NoBelow,
			"pattern":    Config.CorpusPattern,
			"passes":     Config.LdaPasses,
			"topics":     Config.LdaTopics,
			"source":     Config.CorpusSource,
			"workers":    Config.WorkerCount,
		}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL4)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-bw":
			Config.BlackAndWhite = true
		case "-ch":
			Config.WriteChart = true
		case "-dbr":
			Config.ResetCache = true
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			help()
		case "-it":
			it, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaIterations = it
		case "-lx":
			Config.LexiconDB = args[i+1]
		case "-mc":
			mc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.PhraseMinCount = mc
		case "-na":
			na, err := strconv.ParseFloat(args[i+1], 64)
			Msg.EC(err)
			Config.NoAbove = na
		case "-nb":
			nb, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.NoBelow = nb
		case "-p":
			Config.CorpusPattern = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pm":
			Config.ProfileMEM = true
		case "-ps":
			ps, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaPasses = ps
		case "-q":
			Config.QuietStart = true
		case "-tp":
			tp, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaTopics = tp
		case "-u":
			Config.CorpusSource = args[i+1]
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		default:
			// do nothing
		}
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	if Config.LdaTopics > vv.LDAMAXTOPICS {
		Msg.CRIT(fmt.Sprintf(FAIL3, vv.LDAMAXTOPICS, Config.LdaTopics, vv.LDAMAXTOPICS))
		Config.LdaTopics = vv.LDAMAXTOPICS
	}

	Msg.LogLevel = Config.LogLevel
	Msg.BlackAndWhite = Config.BlackAndWhite
}

// WriteDefaultConfig - save the active configuration so the next launch can find it
func WriteDefaultConfig() {
	const (
		MSG1 = "wrote configuration file: "
		FYI1 = "could not write configuration file; launch values will not persist"
	)

	uh, e := os.UserHomeDir()
	if e != nil {
		Msg.FYI(FYI1)
		return
	}

	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	_ = os.MkdirAll(h, 0755)

	_, yes := os.Stat(h + vv.CONFIGNAME)
	if yes == nil {
		// already have one; do not clobber it
		return
	}

	content, err := json.MarshalIndent(Config, vv.JSONINDENT, vv.JSONINDENT)
	Msg.EC(err)

	err = os.WriteFile(h+vv.CONFIGNAME, content, vv.WRITEPERMS)
	if err != nil {
		Msg.FYI(FYI1)
		return
	}
	Msg.PEEK(MSG1 + h + vv.CONFIGNAME)
}
