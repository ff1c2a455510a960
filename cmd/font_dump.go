package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/font"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolFontDump(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	data, _, err := utils.ReadFileMaybeCompressed(args[0])
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", args[0], err)
	}

	fnt, err := font.Parse(data)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %s", args[0], err)
	}

	fmt.Printf("%s: version %d, %dx%d, %d glyphs\n", args[0], fnt.Version, fnt.Width, fnt.Height, len(fnt.Glyphs))

	codeSpec := cmd.Flag.Lookup("code").Value.String()
	if codeSpec != "" {
		code, err2 := strconv.ParseUint(strings.TrimPrefix(codeSpec, "0x"), 16, 16)
		if err2 != nil {
			return fmt.Errorf("unable to parse code %s: %s", codeSpec, err2)
		}

		glyph, ok := fnt.Glyph(uint16(code))
		if !ok {
			return fmt.Errorf("glyph %#04x not in font", code)
		}

		dumpGlyph(fnt, glyph)
		return nil
	}

	for _, glyph := range fnt.Glyphs {
		dumpGlyph(fnt, glyph)
	}

	return nil
}

func dumpGlyph(fnt *font.Font, glyph font.Glyph) {
	fmt.Printf("\nglyph %#04x:\n", glyph.Code)

	raster := fnt.Render(glyph)
	width := int(fnt.Width)

	var line strings.Builder
	for row := 0; row < int(fnt.Height); row++ {
		line.Reset()
		line.WriteString("  ")
		for col := 0; col < width; col++ {
			if raster[row*width+col] != 0 {
				line.WriteByte('#')
			} else {
				line.WriteByte('.')
			}
		}
		fmt.Println(line.String())
	}
}

func makeCmdFontDump() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolFontDump,
		UsageLine: "dump <file.fnt>",
		Short:     "render font glyphs as text",
		Long: `
Command dump prints font metadata and renders glyph bitmaps as ASCII
art, '#' for set pixels and '.' for clear ones. By default every glyph
is rendered; -code limits the dump to a single code point.

ex:
  $ kgtool font dump -code=0x3042 SYSTEM.FNT
`,
	}

	cmd.Flag.String("code", "", "dump a single glyph by hex code point")

	return cmd
}
