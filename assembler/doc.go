// Package assembler translates symbolic redstone source into plain program
// text.
//
// Source lines hold one instruction each, optionally prefixed by "label:".
// Comments run from ';' to the end of the line; lines starting with '#' are
// comments too. Symbols are expanded before the line is checked:
//
//	$name       cache slot, numbered densely in order of first use
//	@screenpos  output register 7 (39)
//	@screenop   output register 6 (38)
//	@inN        input register N (32+N)
//	@outN       output register N (32+N)
//	!refresh    screen operations: !refresh !reset !on !toggle !off
//	->label     instruction index of a label
//	$(expr)     compile-time Starlark expression over the integer equates
//
// The directives ".equ NAME VALUE" and ".macro NAME ARGS... / .endm" define
// equates and macros. Inside a macro body, "@@" expands to a prefix unique to
// each expansion, for macro-local labels.
package assembler
