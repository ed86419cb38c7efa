// Package bracket models the 64-team tournament: field selection and
// seeding from scraped standings, single games decided by a logistic ELO
// win probability, and full Monte-Carlo tournament playouts.
//
// A bracket's upset factor blends every game probability toward a coin
// flip, which is how pool entries with different upset appetites are
// generated: a factor of 0 leaves the ELO odds untouched, a factor of 1
// flips coins.
package bracket
