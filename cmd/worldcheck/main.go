// Command worldcheck validates world files and prints a summary of each.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/crystal-mush/gozif/pkg/worldfile"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: worldcheck file.yaml [file.yaml ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		def, err := worldfile.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		name := def.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s: %s — %d objects, %d verbs, %d globals", path, name,
			len(def.Objects), len(def.Verbs), len(def.Globals))
		if def.Start != "" {
			fmt.Printf(", start %s", def.Start)
		}
		fmt.Println()
	}
	if failed {
		os.Exit(1)
	}
}
