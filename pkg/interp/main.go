// Package interp evaluates the main function of a parsed program and
// collects the values its printf calls would print.
//
// Values are tagged integer or floating and follow C-like promotion:
// integer division truncates, float and double variables always hold
// floating values, and other variables narrow whole-valued floats.
package interp
