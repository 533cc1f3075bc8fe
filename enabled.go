//go:build !nocovmark

package covmark

const enabled = true
