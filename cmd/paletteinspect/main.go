// Command paletteinspect decodes a single raw paletted container dump
// from disk and prints its palette and storage statistics. It uses no
// flag package, just positional os.Args, since the tool takes exactly
// two required inputs.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-mclib/paletted/chunk"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	if len(os.Args) < 3 {
		fmt.Println("Usage: paletteinspect <section.dump> <blockstates|biomes>")
		os.Exit(1)
	}

	path := os.Args[1]
	kind, err := parseKind(os.Args[2])
	if err != nil {
		logger.Fatalf("invalid container kind: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatalf("read %s: %v", path, err)
	}

	c, err := chunk.ReadPalettedContainer(bytes.NewReader(data), kind)
	if err != nil {
		logger.Fatalf("decode %s: %v", path, err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("paletted container (%s)", kind)))
	fmt.Printf("%s %d\n", labelStyle.Render("bits_per_entry:"), c.BitsPerEntry())
	fmt.Printf("%s %s\n", labelStyle.Render("palette kind:  "), c.Palette().Kind())
	fmt.Printf("%s %d\n", labelStyle.Render("palette size:  "), c.Palette().Len())
	fmt.Printf("%s %d\n", labelStyle.Render("cells:         "), kind.Size())
	fmt.Printf("%s %#x\n", labelStyle.Render("fingerprint:   "), c.Fingerprint())
}

func parseKind(s string) (chunk.ContainerKind, error) {
	switch s {
	case "blockstates":
		return chunk.BlockStates, nil
	case "biomes":
		return chunk.Biomes, nil
	default:
		return 0, fmt.Errorf("unknown kind %q, want \"blockstates\" or \"biomes\"", s)
	}
}
