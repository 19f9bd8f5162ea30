// 29 April 2020
// Remove the query's gap columns from an a2m alignment.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/charmbracelet/log"

	. "github.com/andrew-torda/plmcprep/pkg/seq/common"
	"github.com/andrew-torda/plmcprep/pkg/squash"
)

// usage
func usage() {
	name := path.Base(os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "usage:", name, "[options] [inputfile [outputfile]]")
	flag.PrintDefaults()
}

func main() {
	var opts squash.Options
	var verbose bool
	flag.StringVar(&opts.PlotFile, "p", "", "write a png plot of column occupancy to this file")
	flag.StringVar(&opts.StatsFile, "s", "", "write column occupancy as csv to this file")
	flag.BoolVar(&verbose, "v", false, "say what was done")
	flag.Usage = usage
	flag.Parse()

	var infile, outfile string
	switch flag.NArg() {
	case 2:
		outfile = flag.Arg(1)
		fallthrough
	case 1:
		infile = flag.Arg(0)
	case 0:
	default:
		fmt.Fprintln(os.Stderr, "too many command line arguments")
		usage()
		os.Exit(ExitUsageError)
	}

	opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: path.Base(os.Args[0])})
	opts.Logger.SetLevel(log.WarnLevel)
	if verbose {
		opts.Logger.SetLevel(log.DebugLevel)
	}
	os.Exit(squash.MyMain(infile, outfile, &opts))
}
