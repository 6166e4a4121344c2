// Package iniconfig reads the simple key=value configuration format this
// module's CLI accepts: one assignment per line, blank lines and lines
// whose first non-whitespace character is '#' ignored, quotes around a
// value stripped. A key may repeat; every value it was given is kept, in
// the order seen.
package iniconfig
