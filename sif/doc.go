// Package sif parses the Standard Input Format (SIF) used to describe
// linear and quadratic optimization problems.
//
// SIF is the fixed-section text format of the CUTEst benchmark
// collection and a close relative of MPS. A file is a sequence of
// sections, each opened by an indicator card (an all-caps keyword in
// column 1) and followed by indented data rows:
//
//	NAME QPTEST
//	ROWS
//	 N  obj
//	 G  r1
//	COLUMNS
//	    c1  obj  1.5  r1  2.0
//	RHS
//	    rhs  r1  2.0
//	BOUNDS
//	 UP bnd c1 20.0
//	QUADOBJ
//	    c1  c1  8.0
//	ENDATA
//
// Lines starting with '*' are comments. The official grammar places
// fields at fixed byte offsets, but real-world files drift, so data
// rows are tokenized by whitespace instead.
//
// # Parsing
//
// Parse consumes a complete text buffer in a single forward pass and
// returns either a fully built *Problem or a *ParseError describing
// the first fatal condition; there is no partial result. ParseFile
// and ParseReader are thin I/O wrappers, with transparent gzip
// decompression for the .SIF.gz files CUTEst distributes.
//
// # Limitations
//
// Input must be row-major: every row name used by COLUMNS, RHS or a
// quadratic section must already be defined. Column-major files are
// rejected with an unknown-reference error rather than mishandled.
// The nonlinear LANCELOT sections (START POINT, ELEMENT TYPE/USES,
// GROUP TYPE/USES, OBJECT BOUNDS) and RANGES are recognized and
// discarded.
package sif
