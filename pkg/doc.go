// Package pkg provides the core libraries for iconset variant generation.
//
// # Overview
//
// Iconset clones selected icons at multiple pixel sizes and assembles the
// results into component sets. The pkg directory is organized into four
// main areas:
//
//  1. [scene], [geom] - Domain model (scene graph, vector geometry)
//  2. [cache], [observability], [errors] - Infrastructure
//  3. [render] - Output (SVG, PNG, DOT) and SVG import
//  4. [pipeline], [bridge], [iconset], [variant] - Orchestration
//
// # Architecture
//
// The typical data flow through iconset:
//
//	Icon Document (JSON)
//	         ↓
//	    [iconset] package (filter eligible icons)
//	         ↓
//	    [variant] package (sanitize size rows)
//	         ↓
//	    [iconset] package (build, assemble, place)
//	         ↓
//	    [render] package (SVG/PNG previews)
//
// The [pipeline] package orchestrates the flow and the [bridge] package
// exposes it over HTTP for editor plugins.
//
// # Quick Start
//
//	doc, _ := scene.ReadDocument(f)
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{})
package pkg
