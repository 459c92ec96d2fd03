package cmd

import (
	"fmt"
	"io"

	"github.com/gobwas/glob"
)

type statusFunc func(format string, args ...interface{})

type options struct {
	dryRun  bool
	quiet   bool
	watch   bool
	include string
	filter  glob.Glob
	status  statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}
