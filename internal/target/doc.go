// Package target declares the compilation targets of a release run and the
// paths and names derived from them.
package target
