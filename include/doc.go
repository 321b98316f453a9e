// Package include assembles the #include block of a generated C++ file.
//
// A Set accumulates two things while the rest of the generator runs:
// verbatim user includes, kept in insertion order, and "facility needed"
// flags for standard library headers. Write emits them in a fixed order:
//
//	#pragma once                 (headers only)
//	#include "user.h"            (custom, insertion order)
//	#include <cstdint>           (flagged facilities, canonical order)
//	#if defined(_WIN32)          (flagged platform rows, table order)
//	#include <basetsd.h>
//	#endif
//
// The output depends only on the set contents, never on the order in which
// facilities were flagged.
package include
