// Package render turns scene trees into visual outputs.
//
// # Overview
//
// This package contains the export surface of the tool. It provides:
//
//   - SVG rendering of any scene subtree ([RenderSVG])
//   - PNG rasterization of rendered SVG ([ToPNG], [Thumbnail])
//   - Structural DOT diagrams of scene trees ([ToDOT], [RenderDOTSVG])
//   - SVG import into scene documents ([ImportSVG])
//
// # SVG Rendering
//
// [RenderSVG] walks a subtree and emits one filled <path> per drawable,
// using each node's outline geometry. Stroked shapes are therefore exported
// as fills, matching how flattened variants are stored. Frames contribute
// background rects, clip paths, and dashed borders.
//
//	svg := render.RenderSVG(set)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Structural Diagrams
//
// [ToDOT] emits the tree structure (not the artwork) as a Graphviz digraph,
// which is useful for inspecting what a generation run produced.
//
//	dot := render.ToDOT(doc.Children()[0], render.DOTOptions{Detailed: true})
//	svg, err := render.RenderDOTSVG(dot)
package render
