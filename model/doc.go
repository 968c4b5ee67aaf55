// Package model provides the data types shared by every stage of the
// extraction pipeline.
//
// Word sources produce [Page] values holding positioned [Word] tokens. The
// layout stage turns them into [Line] values, the segmenter groups lines into
// [QuestionBlock] and [Area] spans, and [Metadata] carries the best-effort
// document fields shown in the rendered header.
//
// # Geometry
//
// [BBox] uses page points with the origin at the top-left corner of the page,
// the same convention as pdfplumber and hOCR: Top grows downwards.
package model
