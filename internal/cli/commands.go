package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nutek/nutekcode/internal/diff"
	"github.com/nutek/nutekcode/internal/fileinfo"
	qcli "github.com/nutek/nutekcode/internal/q/cli"
	"github.com/nutek/nutekcode/internal/simplelogger"
	"github.com/nutek/nutekcode/internal/walk"
)

var logger = simplelogger.Logger{Prefix: "cli"}

// errReported exits 1 without a message; the failures were already printed per path.
var errReported = qcli.ExitError{Code: 1}

// configState loads configuration once per Run, on first use.
type configState struct {
	loaded bool
	cfg    Config
	err    error
}

func (s *configState) get() (Config, error) {
	if !s.loaded {
		s.cfg, s.err = loadConfig()
		s.loaded = true
	}
	return s.cfg, s.err
}

func newRootCommand(stdoutIsTerminal bool) *qcli.Command {
	cfgState := &configState{}

	runWithConfig := func(name string, next func(c *qcli.Context, cfg Config) error) qcli.RunFunc {
		return func(c *qcli.Context) error {
			cfg, err := cfgState.get()
			if err != nil {
				return qcli.ExitError{Code: 1, Err: err}
			}
			if simplelogger.Enabled() {
				logger.Logf("%s %q", name, c.Args)
			}
			return next(c, cfg)
		}
	}

	root := &qcli.Command{
		Name:  "nutekcode",
		Short: "Line diffs and file inspection.",
	}

	diffCmd := &qcli.Command{
		Name:    "diff",
		Short:   "Compare two text files line by line.",
		Long:    "Prints every line of both files, numbered and marked with \" \" (unchanged), \"-\" (removed), or \"+\" (added).",
		Example: "nutekcode diff old.txt new.txt\nnutekcode diff --summary --json old.txt new.txt",
		Args:    qcli.ExactArgs(2),
	}
	diffFlags := diffCmd.Flags()
	diffSummary := diffFlags.Bool("summary", 's', false, "Print the summary instead of the lines.")
	diffJSON := diffFlags.Bool("json", 0, false, "Print the summary as a JSON object (implies --summary).")
	diffColor := diffFlags.Bool("color", 0, false, "Colorize output; --color=false disables it (default: config color).")
	diffWidth := diffFlags.Int("width", 'w', 0, "Truncate lines to this many columns; 0 disables truncation (default: config max_width).")
	diffForce := diffFlags.Bool("force", 'f', false, "Diff files even if they do not look like text.")
	diffCmd.Run = runWithConfig("diff", func(c *qcli.Context, cfg Config) error {
		if *diffWidth < 0 {
			return qcli.UsageError{Message: fmt.Sprintf("invalid --width: must be >= 0 (got %d)", *diffWidth)}
		}
		left, right := c.Args[0], c.Args[1]
		leftText, err := readTextFile(left, *diffForce)
		if err != nil {
			return err
		}
		rightText, err := readTextFile(right, *diffForce)
		if err != nil {
			return err
		}

		ops := diff.Compute(leftText, rightText)
		if simplelogger.Enabled() {
			logger.Logf("diff %s %s: %d ops, changed=%v", left, right, len(ops), ops.HasChanges())
		}

		if *diffSummary || *diffJSON {
			return writeSummary(c.Out, diff.Summarize(ops), *diffJSON)
		}

		// Flags given on the command line win over config, even when set to false or 0.
		opts := diff.RenderOptions{
			Color:    cfg.useColor(stdoutIsTerminal),
			MaxWidth: cfg.MaxWidth,
		}
		if diffFlags.Changed("color") {
			opts.Color = *diffColor
		}
		if diffFlags.Changed("width") {
			opts.MaxWidth = *diffWidth
		}
		_, err = io.WriteString(c.Out, diff.Render(ops, opts))
		return err
	})

	walkCmd := &qcli.Command{
		Name:  "walk",
		Short: "List files under DIR (default \".\"), honoring .gitignore and .ignore files.",
		Args:  qcli.RangeArgs(0, 1),
	}
	walkFlags := walkCmd.Flags()
	walkHidden := walkFlags.Bool("hidden", 'H', false, "Include hidden files and directories; --hidden=false excludes them (default: config include_hidden).")
	walkCmd.Run = runWithConfig("walk", func(c *qcli.Context, cfg Config) error {
		dir := ""
		if len(c.Args) == 1 {
			dir = c.Args[0]
		}
		opts := walk.Options{IncludeHidden: cfg.IncludeHidden}
		if walkFlags.Changed("hidden") {
			opts.IncludeHidden = *walkHidden
		}

		failed := false
		for p, err := range walk.Walk(dir, opts) {
			if err != nil {
				failed = true
				fmt.Fprintf(c.Err, "nutekcode: %v\n", err)
				continue
			}
			if _, err := fmt.Fprintln(c.Out, p); err != nil {
				return err
			}
		}
		if failed {
			return errReported
		}
		return nil
	})

	infoCmd := &qcli.Command{
		Name:  "info",
		Short: "Print media type, text classification, size, and SHA-256 of files.",
		Args:  qcli.MinimumArgs(1),
	}
	infoCmd.Run = runWithConfig("info", func(c *qcli.Context, _ Config) error {
		failed := false
		for i, p := range c.Args {
			info, err := describeFile(p)
			if err != nil {
				failed = true
				fmt.Fprintf(c.Err, "nutekcode: %v\n", err)
				continue
			}
			if i > 0 {
				fmt.Fprintln(c.Out)
			}
			if err := info.write(c.Out); err != nil {
				return err
			}
		}
		if failed {
			return errReported
		}
		return nil
	})

	hashCmd := &qcli.Command{
		Name:  "hash",
		Short: "Print the SHA-256 of files, like sha256sum.",
		Args:  qcli.MinimumArgs(1),
	}
	hashCmd.Run = runWithConfig("hash", func(c *qcli.Context, _ Config) error {
		failed := false
		for _, p := range c.Args {
			sum, err := fileinfo.SHA256(p)
			if err != nil {
				failed = true
				fmt.Fprintf(c.Err, "nutekcode: %v\n", err)
				continue
			}
			if _, err := fmt.Fprintf(c.Out, "%s  %s\n", sum, p); err != nil {
				return err
			}
		}
		if failed {
			return errReported
		}
		return nil
	})

	configCmd := &qcli.Command{
		Name:  "config",
		Short: "Print the effective configuration.",
		Args:  qcli.NoArgs,
		Run: runWithConfig("config", func(c *qcli.Context, cfg Config) error {
			return writeConfig(c.Out, cfg)
		}),
	}

	versionCmd := &qcli.Command{
		Name:  "version",
		Short: "Print nutekcode version.",
		Args:  qcli.NoArgs,
		Run: func(c *qcli.Context) error {
			_, err := fmt.Fprintln(c.Out, Version)
			return err
		},
	}

	root.AddCommand(diffCmd, walkCmd, infoCmd, hashCmd, configCmd, versionCmd)
	return root
}

// readTextFile reads path, refusing files that IsText rejects unless force is set.
func readTextFile(path string, force bool) (string, error) {
	if !force {
		isText, err := fileinfo.IsText(path)
		if err != nil {
			return "", err
		}
		if !isText {
			return "", fmt.Errorf("%s: not a text file (%s); use --force to diff anyway", path, fileinfo.MimeType(path))
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fileinfo.NewIoError("read", path, err)
	}
	return string(data), nil
}

func writeSummary(w io.Writer, s diff.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(s)
	}
	_, err := fmt.Fprintf(w, "%s: %d\n%s: %d\n%s: %d\n%s: %d\n",
		diff.KeyRemoved, s.Removed,
		diff.KeyNotChanged, s.NotChanged,
		diff.KeyAdded, s.Added,
		diff.KeyLines, s.Lines,
	)
	return err
}

type fileDescription struct {
	path   string
	mime   string
	isText bool
	size   int64
	sha256 string
}

func describeFile(path string) (fileDescription, error) {
	d := fileDescription{path: path, mime: fileinfo.MimeType(path)}
	var err error
	if d.size, err = fileinfo.Size(path); err != nil {
		return d, err
	}
	if d.isText, err = fileinfo.IsText(path); err != nil {
		return d, err
	}
	if d.sha256, err = fileinfo.SHA256(path); err != nil {
		return d, err
	}
	return d, nil
}

func (d fileDescription) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "path: %s\nmime: %s\ntext: %t\nsize: %s (%d bytes)\nsha256: %s\n",
		d.path, d.mime, d.isText, fileinfo.FormatSize(d.size), d.size, d.sha256)
	return err
}
