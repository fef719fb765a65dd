//    CorpusTopicModeler
//    Copyright: D Robson 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"

	"github.com/pkg/profile"

	"github.com/d-robson/CorpusTopicModeler/internal/lnch"
	"github.com/d-robson/CorpusTopicModeler/internal/mdb"
	"github.com/d-robson/CorpusTopicModeler/internal/pipe"
	"github.com/d-robson/CorpusTopicModeler/internal/vv"
)

// a one-shot command line program: configure, run the pipeline, print the topic report, exit

// go tool pprof --pdf ./CorpusTopicModeler ./cpu.pprof > profile.pdf

func main() {
	lnch.ConfigAtLaunch()

	if lnch.Config.ProfileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	} else if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if !lnch.Config.QuietStart {
		versioninfo := fmt.Sprintf("%s (v.%s)", vv.MYNAME, vv.VERSION)
		versioninfo = versioninfo + fmt.Sprintf(" [loglevel=%d]", lnch.Config.LogLevel)
		lnch.Msg.MAND(versioninfo)
	}

	lnch.WriteDefaultConfig()

	if lnch.Config.ResetCache {
		mdb.Reset()
		return
	}

	pipe.Run(context.Background())
}
