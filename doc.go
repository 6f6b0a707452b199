/*
Package grafigo renders ASCII-art diagrams into SVG path-data.

grafigo interprets a 2D character grid as a collection of polylines,
closed polygons and text annotations, then emits drawing instructions
per character along each discovered path using a user-extensible rule
table. Package structure is as follows:

■ compass: direction algebra over the eight compass points.

■ grid: parses text into a rectangular grid of cells plus footnote
attributes.

■ ruleset: the Entry/Table matching model that both constrains path
discovery and drives template selection; ruleset/dsl is its textual
grammar and parser.

■ pathfind: the path-discovery engine — a backtracking walk of the
grid, tie-broken deterministically, closing loops and canonicalizing
rectangles.

■ textscan: text-span and identifier extraction, and footnote-attribute
binding.

■ render: turns a discovered path into a sequence of template-expanded
drawing commands; render/builtin ships two ready-made rule tables.

■ diag, fingerprint, svgdoc: ambient diagnostics, deterministic output
hashing, and a thin SVG document writer.

■ cmd/grafigo: the command-line driver.

This module grew out of the gorgo parsing toolbox; the root package
carries no code of its own, only this overview.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grafigo
