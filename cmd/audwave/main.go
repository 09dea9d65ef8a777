// SPDX-License-Identifier: EPL-2.0

// Command audwave renders waveform pictures and display peaks of audio
// files.
//
//	audwave [glog flags] image  [-width 512] [-height 256] [-color #3232c8] [-out file.png] input
//	audwave [glog flags] peaks  [-target 4000] [-out file.json] input
//	audwave [glog flags] ffmpeg [-width 640] [-height 240] [-bg #c0c0c0] ... [-out file.png] input
//	audwave [glog flags] nodes  [-out file.json]
//
// Output goes to stdout unless -out is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/golang/glog"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <image|peaks|ffmpeg|nodes> [command flags] [input]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, flag.Args(), os.Stdout)
	stop()

	if err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
