// Package eligibility decides, for a set of crew members and an optional aircraft,
// who may crew that aircraft, what paperwork is missing, and which status badge to show.
//
// Everything here is pure: no I/O, no clock reads, no mutation of inputs. Callers
// sample "now" once per pass and thread it through so one evaluation is internally
// consistent.
package eligibility
