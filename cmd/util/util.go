// Package util provides the logging and flag plumbing shared by the
// command line tools in this repository.
package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
)

func init() {
	log.SetFlags(0)
}

func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Warning logs err (with optional printf-style context) and reports
// whether there was anything to log.
func Warning(err error, v ...interface{}) bool {
	if err != nil {
		if len(v) == 0 {
			Warnf("WARNING: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Warnf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
		return true
	}
	return false
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Assert exits with an error message if err is non-nil. Extra arguments
// are a printf-style prefix for the message.
func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

func AssertLeastNArg(n int) {
	if flag.NArg() < n {
		flag.Usage()
	}
}

// Usage installs a standard usage function printing the given argument
// synopsis plus the flag defaults, and parses the flags.
func Usage(args string) {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] %s\n",
			path.Base(os.Args[0]), args)
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
}
