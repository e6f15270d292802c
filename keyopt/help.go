package keyopt

import (
	"fmt"
	"sort"
	"strings"
)

// showHelp renders the auto-generated help screen to the configured output
// writer. Hidden options are skipped; everything else is listed in sorted
// order with aligned usage strings.
func (r *Registry) showHelp() {
	out := r.ioManager.Out()
	p := r.ioManager.Palette()

	header := p.Bold(r.name)
	if r.version != "" {
		header += " " + p.Dim("v"+r.version)
	}
	fmt.Fprintln(out, header)
	if r.description != "" {
		fmt.Fprintln(out, r.description)
	}
	fmt.Fprintln(out)

	if r.defaultOpt != nil {
		fmt.Fprintf(out, "%s %s %s\n\n", p.Bold("Usage:"), r.name, r.defaultOpt.Usage())
		fmt.Fprintf(out, "  %s\n", r.defaultOpt.Description)
		fmt.Fprintf(out, "\nType %s or %s for this screen.\n", p.Cyan("?"), p.Cyan("help"))
		return
	}

	fmt.Fprintf(out, "%s %s [option [params]]...\n\n", p.Bold("Usage:"), r.name)
	fmt.Fprintln(out, p.Bold("Options:"))

	names := make([]string, 0, len(r.options))
	for name, opt := range r.options {
		if !opt.Hidden {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	// Align descriptions past the widest "name usage" column.
	width := 0
	for _, name := range names {
		if n := len(headline(r.options[name])); n > width {
			width = n
		}
	}

	for _, name := range names {
		opt := r.options[name]
		fmt.Fprintf(out, "  %-*s  %s\n", width, headline(opt), opt.Description)
		for _, note := range optionNotes(opt) {
			fmt.Fprintf(out, "  %-*s  %s\n", width, "", p.Dim(note))
		}
	}

	fmt.Fprintf(out, "\nType %s or %s for this screen.\n", p.Cyan("?"), p.Cyan("help"))
}

func headline(opt *Option) string {
	usage := opt.Usage()
	if usage == "" {
		return opt.Name
	}
	return opt.Name + " " + usage
}

// optionNotes lists the constraints attached to an option, one line each.
func optionNotes(opt *Option) []string {
	var notes []string
	if len(opt.Aliases) > 0 {
		notes = append(notes, "aliases: "+strings.Join(opt.Aliases, ", "))
	}
	if opt.Required {
		notes = append(notes, "required")
	}
	if opt.Standalone {
		notes = append(notes, "must be used alone")
	}
	if len(opt.Requires) > 0 {
		notes = append(notes, "requires: "+strings.Join(opt.Requires, ", "))
	}
	if len(opt.Conflicts) > 0 {
		notes = append(notes, "conflicts with: "+strings.Join(opt.Conflicts, ", "))
	}
	return notes
}
