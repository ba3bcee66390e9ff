// Package text provides the font side of videotext.
//
// The pipeline separates heavyweight and lightweight font objects:
//
//   - FontSource: a parsed TTF/OTF file, shared across the application
//   - Face: a FontSource instantiated at one pixel size
//   - Font: a value descriptor (source + point size) carried by rich text
//   - Shaper: measures runs, either with golang.org/x/image (BuiltinShaper)
//     or with go-text/typesetting HarfBuzz shaping (GoTextShaper)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Bold.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face, err := source.Face(34)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	width := text.DefaultShaper().Advance("Hello", face)
//
// When no font is configured, DefaultFont returns the bundled Go Bold face
// at LargeTitleSize points.
package text
