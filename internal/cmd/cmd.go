// Package cmd wires the converter to the filesystem: it discovers markdown
// files in a directory, rewrites them in place and reports what happened.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gobwas/glob"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

// Execute runs the CLI with the given arguments and output streams. It exits
// the process with a non-zero status on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	cmd := rootCmd()

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "mdfence [flags] [directory]",
		Short: "Convert indented markdown code blocks to fenced blocks",
		Long: "mdfence rewrites 4-space/tab indented code blocks as triple-backtick\n" +
			"fenced blocks across the markdown files of a directory. Frontmatter and\n" +
			"pre-existing fenced blocks are left untouched.",
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			if opts.watch && opts.dryRun {
				return errWatchDryRun
			}

			var err error

			opts.filter, err = glob.Compile(opts.include)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			if err := checkDirectory(dir); err != nil {
				return err
			}

			fsys := dirFS(dir)

			st := run(fsys, opts)
			printSummary(cmd.OutOrStdout(), st)

			if opts.watch {
				return watchRun(fsys, dir, opts)
			}

			if st.errors > 0 {
				return fmt.Errorf("%d file(s) failed", st.errors)
			}

			return nil
		},

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "preview changes without modifying files")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-file status output")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep running and convert files as they change")
	cmd.Flags().StringVar(&opts.include, "include", "*", "glob filter on file names")

	return cmd
}

func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory %s does not exist", dir)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	return nil
}

func printSummary(w io.Writer, st *stats) {
	tbl := table.New("", "Count").WithWriter(w)

	tbl.AddRow("Total files", st.total)
	tbl.AddRow("Modified", st.modified)
	tbl.AddRow("Unchanged", st.unchanged)
	tbl.AddRow("Errors", st.errors)

	tbl.Print()
}

var errWatchDryRun = fmt.Errorf("--watch cannot be combined with --dry-run")
