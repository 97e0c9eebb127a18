package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/afero"

	"github.com/josephlewis42/posh/core/interpreter"
	"github.com/josephlewis42/posh/core/paths"
)

// lsFilter decides which directory entries are listed.
type lsFilter struct {
	all      bool
	names    map[string]bool
	patterns []paths.Pattern
}

func (f *lsFilter) skip(r *paths.Resolver, p paths.Path) bool {
	if !f.all && r.IsHidden(p) {
		return true
	}
	return paths.IsIgnored(p, f.names, f.patterns)
}

// Ls lists directory contents.
func Ls(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "ls [OPTION]... [PATH]...",
		Short: "List information about the PATHs (the current directory by default).",
	}

	opts := cmd.Flags()
	listAll := opts.Bool('a', "don't ignore hidden entries")
	longListing := opts.Bool('l', "use a long listing format")
	humanSize := opts.BoolLong("human-readable", 'H', "print human readable sizes")
	ignoreNames := opts.ListLong("ignore", 'I', "don't list entries with a path segment named NAME", "NAME[,NAME]")
	ignorePattern := opts.StringLong("ignore-pattern", 'P', "", "don't list entries whose full path matches REGEX", "REGEX")

	var color ColorPrinter
	color.Init(opts)

	return cmd.Run(in, args, func(targets []string) error {
		filter := &lsFilter{all: *listAll, names: make(map[string]bool)}
		for _, name := range *ignoreNames {
			filter.names[name] = true
		}
		if *ignorePattern != "" {
			pattern, err := paths.CompilePattern(*ignorePattern)
			if err != nil {
				return interpreter.Usagef(cmd.Name(), "invalid pattern: %v", err)
			}
			filter.patterns = append(filter.patterns, pattern)
		}

		if len(targets) == 0 {
			targets = []string{"."}
		}

		l := &lister{
			in:     in,
			color:  &color,
			filter: filter,
			long:   *longListing,
			size: func(bytes int64) string {
				return fmt.Sprintf("%d", bytes)
			},
		}
		if *humanSize {
			l.size = BytesToHuman
		}

		for i, target := range targets {
			if len(targets) > 1 {
				if i > 0 {
					fmt.Fprintln(in.Stdout)
				}
				fmt.Fprintf(in.Stdout, "%s:\n", target)
			}

			if err := l.list(target); err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
		}
		return nil
	})
}

type lister struct {
	in     *interpreter.Interpreter
	color  *ColorPrinter
	filter *lsFilter
	long   bool
	size   func(int64) string
}

func (l *lister) list(target string) error {
	p, err := l.in.Lookup(target)
	if err != nil {
		return err
	}

	fsys := l.in.Fs()
	info, err := fsys.Stat(p.OSPath())
	if err != nil {
		return err
	}

	if !info.IsDir() {
		l.print(l.in.Stdout, []os.FileInfo{info})
		return nil
	}

	// ReadDir sorts by name.
	entries, err := afero.ReadDir(fsys, p.OSPath())
	if err != nil {
		return err
	}

	var shown []os.FileInfo
	for _, entry := range entries {
		if l.filter.skip(l.in.Resolver(), p.Child(entry.Name())) {
			continue
		}
		shown = append(shown, entry)
	}

	l.print(l.in.Stdout, shown)
	return nil
}

func (l *lister) name(info os.FileInfo) string {
	cfg := l.in.Config.Colours
	if info.IsDir() {
		return l.color.Sprint(cfg.DirectoryPath, info.Name())
	}
	return l.color.Sprint(cfg.FilePath, info.Name())
}

func (l *lister) print(w io.Writer, infos []os.FileInfo) {
	if !l.long {
		for _, info := range infos {
			fmt.Fprintln(w, l.name(info))
		}
		return
	}

	var totalSize int64
	for _, info := range infos {
		totalSize += info.Size()
	}
	fmt.Fprintf(w, "total %s\n", l.size(totalSize))

	currentYear := time.Now().Year()
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	for _, info := range infos {
		// Include time if current year.
		modTime := info.ModTime().Format("Jan _2  2006")
		if info.ModTime().Year() >= currentYear {
			modTime = info.ModTime().Format("Jan _2 15:04")
		}

		fmt.Fprintf(tw, "%s\t%s\t %s\t %s\n",
			info.Mode().String(),
			l.size(info.Size()),
			modTime,
			l.name(info),
		)
	}
	tw.Flush()
}

// BytesToHuman formats a byte count with an SI suffix.
func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

func init() {
	addBuiltin("ls", "List directory contents.", Ls)
}
