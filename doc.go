// Package neatjson renders JSON value trees as human-friendly, diff-stable
// text: containers holding only scalars collapse to a single line while large
// or nested containers expand one child per line. It targets tooling that
// saves JSON meant to be read and diffed by humans, where deterministic
// compact-but-readable output matters more than raw encoding speed.
//
// Building and saving a document:
//
//	v := neatjson.Object(
//		neatjson.Field("name", neatjson.String("scene-1")),
//		neatjson.Field("size", neatjson.Array(neatjson.Number(640), neatjson.Number(480))),
//	)
//	if err := neatjson.Dump(v, "scene.json"); err != nil {
//		log.Fatal(err)
//	}
//
// Dump and Dumps use the canonical on-disk configuration (sorted keys,
// non-finite numbers rejected). Format accepts caller-chosen Options:
//
//	opts := &neatjson.Options{Width: 100, SortKeys: false, MaxDepth: 64}
//	out, err := neatjson.Format(v, opts)
//
// Colorize wraps already-formatted output in lipgloss styles for terminal
// previews; Compact produces the minified single-line form.
package neatjson
