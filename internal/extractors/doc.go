// Package extractors turns resource files into plain text.
//
// Each extractor handles specific file formats (pdf, txt). The Registry
// implements the driven.TextExtractor port by dispatching on a
// document's format; formats with no extractor (videos) are reported as
// unsupported and skipped by the index builder.
package extractors
