//go:build nocovmark

package covmark

// Marks and checks compile to no-ops in this build.
const enabled = false
